// Package fuzz assigns type-appropriate synthetic values to
// Parameter Records. It is a pure function package: every call
// returns a fresh slice, and inputs are never mutated in place.
package fuzz

import (
	"math/rand"

	"github.com/ffuf/apiprobe/pkg/specparse"
	"github.com/google/uuid"
)

// FillParams returns a copy of params where every record's Value
// holds a type-appropriate synthetic datum, per spec.md §4.2. isV3
// is accepted for signature fidelity with the source algorithm and is
// passed down to the array/object helpers, but no value depends on it:
// the normalizer already unifies v2/v3 schema shape.
func FillParams(params []specparse.ParameterRecord, isV3 bool) []specparse.ParameterRecord {
	out := make([]specparse.ParameterRecord, len(params))
	for i, p := range params {
		out[i] = p
		out[i].Value = fillValue(p, isV3)
	}
	return out
}

func fillValue(p specparse.ParameterRecord, isV3 bool) interface{} {
	switch p.Type {
	case "string":
		return randString()
	case "integer":
		return randInt()
	case "number":
		return randNumber()
	case "boolean":
		return rand.Intn(2) == 0
	case "array":
		return fillArray(p.Schema, isV3)
	case "object":
		return fillObject(p.Schema, isV3)
	default:
		return randString()
	}
}

func fillArray(schema map[string]interface{}, isV3 bool) []interface{} {
	itemType := ""
	var itemSchema map[string]interface{}
	if schema != nil {
		if items, ok := schema["items"].(map[string]interface{}); ok {
			itemSchema = items
			itemType, _ = items["type"].(string)
		}
	}
	element := fillValue(specparse.ParameterRecord{Type: itemType, Schema: itemSchema}, isV3)
	return []interface{}{element}
}

func fillObject(schema map[string]interface{}, isV3 bool) map[string]interface{} {
	out := map[string]interface{}{}
	if schema == nil {
		return out
	}
	props, _ := schema["properties"].(map[string]interface{})
	for name, propRaw := range props {
		prop, _ := propRaw.(map[string]interface{})
		ptype, _ := prop["type"].(string)
		out[name] = fillValue(specparse.ParameterRecord{Type: ptype, Schema: prop}, isV3)
	}
	return out
}

// randString returns a short printable ASCII string. Grounded in
// google/uuid (already part of the ecosystem stack) rather than
// hand-rolled character-set sampling.
func randString() string {
	id := uuid.New().String()
	return "ffz" + id[:8]
}

func randInt() int {
	return rand.Intn(1000) + 1
}

func randNumber() float64 {
	return float64(rand.Intn(10000)+1) / 100.0
}

// GenerateRandomInt produces the random integer BOLA trailing-slash
// appends to a materialized URL.
func GenerateRandomInt() int {
	return rand.Intn(100000) + 1
}
