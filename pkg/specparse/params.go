package specparse

// parseParams converts a raw `parameters` sequence into ParameterRecords.
// isV3 selects whether a declared type lives at the top level (v2) or
// nested under `schema` (v3) — see spec.md §4.2.
func parseParams(doc map[string]interface{}, raw interface{}, isV3 bool) []ParameterRecord {
	seq, _ := raw.([]interface{})
	out := make([]ParameterRecord, 0, len(seq))
	for _, rawParam := range seq {
		m, ok := rawParam.(map[string]interface{})
		if !ok {
			continue
		}
		out = append(out, paramFromRaw(doc, m, isV3))
	}
	return out
}

func paramFromRaw(doc map[string]interface{}, raw map[string]interface{}, isV3 bool) ParameterRecord {
	name, _ := raw["name"].(string)
	in, _ := raw["in"].(string)
	required, _ := raw["required"].(bool)
	description, _ := raw["description"].(string)

	var schema map[string]interface{}
	var ptype string

	if isV3 {
		if s, ok := raw["schema"].(map[string]interface{}); ok {
			schema = resolveSchema(doc, s)
			if schema != nil {
				ptype, _ = schema["type"].(string)
			}
		}
	} else if in == "body" {
		if s, ok := raw["schema"].(map[string]interface{}); ok {
			schema = resolveSchema(doc, s)
			if schema != nil {
				ptype, _ = schema["type"].(string)
			}
		}
	} else {
		ptype, _ = raw["type"].(string)
		schema = synthesizeV2Schema(raw, ptype)
	}

	return ParameterRecord{
		Name:        name,
		In:          in,
		Type:        ptype,
		Required:    required,
		Description: description,
		Schema:      schema,
	}
}

// synthesizeV2Schema gives v2's top-level type/items/properties the
// same nested shape v3 parameters declare natively under `schema`, so
// the fuzzer can read array/object parameters uniformly regardless of
// dialect.
func synthesizeV2Schema(raw map[string]interface{}, ptype string) map[string]interface{} {
	switch ptype {
	case "array":
		items, _ := raw["items"].(map[string]interface{})
		return map[string]interface{}{"type": "array", "items": items}
	case "object":
		props, _ := raw["properties"].(map[string]interface{})
		return map[string]interface{}{"type": "object", "properties": props}
	default:
		return nil
	}
}

func filterByIn(params []ParameterRecord, in string) []ParameterRecord {
	var out []ParameterRecord
	for _, p := range params {
		if p.In == in {
			out = append(out, p)
		}
	}
	return out
}

func extractSecurity(raw interface{}) []map[string]interface{} {
	seq, _ := raw.([]interface{})
	out := make([]map[string]interface{}, 0, len(seq))
	for _, r := range seq {
		if m, ok := r.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
