package specparse

func extractEndpointsV2(doc map[string]interface{}) []EndpointRecord {
	paths, _ := doc["paths"].(map[string]interface{})

	var endpoints []EndpointRecord
	for path, pathItemRaw := range paths {
		pathItem, ok := pathItemRaw.(map[string]interface{})
		if !ok {
			continue
		}
		pathLevelParams := parseParams(doc, pathItem["parameters"], false)

		for method, opRaw := range pathItem {
			if !recognizedMethods[method] {
				continue
			}
			op, ok := opRaw.(map[string]interface{})
			if !ok {
				continue
			}

			requestParams := parseParams(doc, op["parameters"], false)
			security := extractSecurity(op["security"])
			bodyParams := filterByIn(requestParams, "body")
			responseParams := extractResponseParamsV2(doc, op["responses"])

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

func extractResponseParamsV2(doc map[string]interface{}, responsesRaw interface{}) map[string]ResponseEntry {
	responses, _ := responsesRaw.(map[string]interface{})
	out := make(map[string]ResponseEntry, len(responses))

	for status, respRaw := range responses {
		resp, ok := respRaw.(map[string]interface{})
		if !ok {
			out[status] = ResponseEntry{}
			continue
		}
		var schema map[string]interface{}
		if s, ok := resp["schema"].(map[string]interface{}); ok {
			schema = resolveSchema(doc, s)
		}
		out[status] = ResponseEntry{Schema: schema}
	}
	return out
}

func extractSecuritySchemesV2(doc map[string]interface{}) map[string]interface{} {
	schemes, _ := doc["securityDefinitions"].(map[string]interface{})
	if len(schemes) == 0 {
		logger.Printf("warning: security schemes not found in the Swagger specification")
		return map[string]interface{}{}
	}
	return schemes
}
