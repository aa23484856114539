package specparse

func extractEndpointsV3(doc map[string]interface{}) []EndpointRecord {
	paths, _ := doc["paths"].(map[string]interface{})

	var endpoints []EndpointRecord
	for path, pathItemRaw := range paths {
		pathItem, ok := pathItemRaw.(map[string]interface{})
		if !ok {
			continue
		}
		pathLevelParams := parseParams(doc, pathItem["parameters"], true)

		for method, opRaw := range pathItem {
			if !recognizedMethods[method] {
				continue
			}
			op, ok := opRaw.(map[string]interface{})
			if !ok {
				continue
			}

			requestParams := parseParams(doc, op["parameters"], true)
			security := extractSecurity(op["security"])

			bodyParams := synthesizeBodyParamsV3(doc, op["requestBody"])
			requestParams = append(requestParams, bodyParams...)

			responseParams := extractResponseParamsV3(doc, op["responses"])

			endpoints = append(endpoints, EndpointRecord{
				Path:           path,
				HTTPMethod:     method,
				RequestParams:  requestParams,
				PathParams:     pathLevelParams,
				BodyParams:     bodyParams,
				ResponseParams: responseParams,
				Security:       security,
			})
		}
	}
	return endpoints
}

// synthesizeBodyParamsV3 turns each requestBody.content media-type entry
// into a Parameter Record with in=body, per spec.md §4.1.
func synthesizeBodyParamsV3(doc map[string]interface{}, requestBodyRaw interface{}) []ParameterRecord {
	requestBody, ok := requestBodyRaw.(map[string]interface{})
	if !ok {
		return nil
	}
	content, _ := requestBody["content"].(map[string]interface{})
	required, _ := requestBody["required"].(bool)
	description, _ := requestBody["description"].(string)

	var out []ParameterRecord
	for mediaType, entryRaw := range content {
		entry, _ := entryRaw.(map[string]interface{})
		var schema map[string]interface{}
		if s, ok := entry["schema"].(map[string]interface{}); ok {
			schema = resolveSchema(doc, s)
		}
		var ptype string
		if schema != nil {
			ptype, _ = schema["type"].(string)
		}
		out = append(out, ParameterRecord{
			Name:        mediaType,
			In:          "body",
			Type:        ptype,
			Required:    required,
			Description: description,
			Schema:      schema,
		})
	}
	return out
}

// extractResponseParamsV3 resolves, for each status code, a schema
// attribute per spec.md §4.1's response-schema rules.
func extractResponseParamsV3(doc map[string]interface{}, responsesRaw interface{}) map[string]ResponseEntry {
	responses, _ := responsesRaw.(map[string]interface{})
	out := make(map[string]ResponseEntry, len(responses))

	for status, respRaw := range responses {
		resp, ok := respRaw.(map[string]interface{})
		if !ok {
			out[status] = ResponseEntry{}
			continue
		}

		var schema map[string]interface{}
		if content, ok := resp["content"].(map[string]interface{}); ok && len(content) > 0 {
			for _, entryRaw := range content {
				entry, ok := entryRaw.(map[string]interface{})
				if !ok {
					continue
				}
				if params, ok := entry["parameters"].(map[string]interface{}); ok {
					schema = params
				} else if s, ok := entry["schema"].(map[string]interface{}); ok {
					schema = resolveSchema(doc, s)
				}
			}
		} else if ref, ok := resp["$ref"].(string); ok && ref != "" {
			schema = resolveRef(doc, ref)
		}

		out[status] = ResponseEntry{Schema: schema}
	}
	return out
}

func extractSecuritySchemesV3(doc map[string]interface{}) map[string]interface{} {
	components, _ := doc["components"].(map[string]interface{})
	schemes, _ := components["securitySchemes"].(map[string]interface{})
	if len(schemes) == 0 {
		logger.Printf("warning: security schemes not found in the OpenAPI specification")
		return map[string]interface{}{}
	}
	return schemes
}
