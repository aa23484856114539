package specparse

import "strings"

// resolveRef resolves a "#/a/b/c" reference by descending into doc
// along [a, b, c]. Depth greater than 3 (excluding the leading "#") is
// refused: an empty schema is returned and the condition is logged.
// Resolution is non-recursive — the resolved schema is used as-is and
// is never re-scanned for nested $ref.
func resolveRef(doc map[string]interface{}, ref string) map[string]interface{} {
	segments := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	if len(segments) > 3 {
		logger.Printf("schema $ref path exceeds depth 3 (excluding #): %s", ref)
		return map[string]interface{}{}
	}

	var cur interface{} = doc
	for _, seg := range segments {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return map[string]interface{}{}
		}
		cur = m[seg]
	}

	resolved, ok := cur.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return resolved
}

// resolveSchema returns a parameter/media-type schema, following a
// single $ref indirection if present.
func resolveSchema(doc map[string]interface{}, schema map[string]interface{}) map[string]interface{} {
	if schema == nil {
		return nil
	}
	if ref, ok := schema["$ref"].(string); ok && ref != "" {
		return resolveRef(doc, ref)
	}
	return schema
}
