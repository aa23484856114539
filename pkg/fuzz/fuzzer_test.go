package fuzz

import (
	"testing"

	"github.com/ffuf/apiprobe/pkg/specparse"
)

func TestFillParamsTypeAppropriate(t *testing.T) {
	params := []specparse.ParameterRecord{
		{Name: "id", Type: "integer"},
		{Name: "name", Type: "string"},
		{Name: "price", Type: "number"},
		{Name: "active", Type: "boolean"},
	}

	filled := FillParams(params, true)
	if len(filled) != len(params) {
		t.Fatalf("got %d params, want %d", len(filled), len(params))
	}

	if _, ok := filled[0].Value.(int); !ok {
		t.Errorf("id: got %T, want int", filled[0].Value)
	}
	if _, ok := filled[1].Value.(string); !ok {
		t.Errorf("name: got %T, want string", filled[1].Value)
	}
	if _, ok := filled[2].Value.(float64); !ok {
		t.Errorf("price: got %T, want float64", filled[2].Value)
	}
	if _, ok := filled[3].Value.(bool); !ok {
		t.Errorf("active: got %T, want bool", filled[3].Value)
	}
}

func TestFillParamsDoesNotMutateInput(t *testing.T) {
	params := []specparse.ParameterRecord{{Name: "id", Type: "string"}}
	_ = FillParams(params, true)
	if params[0].Value != nil {
		t.Errorf("input param was mutated: %v", params[0].Value)
	}
}

func TestFillArrayUsesItemSchema(t *testing.T) {
	p := specparse.ParameterRecord{
		Type: "array",
		Schema: map[string]interface{}{
			"items": map[string]interface{}{"type": "integer"},
		},
	}
	v := fillValue(p, true)
	arr, ok := v.([]interface{})
	if !ok || len(arr) != 1 {
		t.Fatalf("got %#v, want one-element slice", v)
	}
	if _, ok := arr[0].(int); !ok {
		t.Errorf("element type = %T, want int", arr[0])
	}
}

func TestFillObjectUsesProperties(t *testing.T) {
	p := specparse.ParameterRecord{
		Type: "object",
		Schema: map[string]interface{}{
			"properties": map[string]interface{}{
				"id": map[string]interface{}{"type": "integer"},
			},
		},
	}
	v := fillValue(p, true)
	obj, ok := v.(map[string]interface{})
	if !ok {
		t.Fatalf("got %#v, want map", v)
	}
	if _, ok := obj["id"].(int); !ok {
		t.Errorf("id field type = %T, want int", obj["id"])
	}
}

func TestGenerateRandomIntPositive(t *testing.T) {
	for i := 0; i < 20; i++ {
		if n := GenerateRandomInt(); n <= 0 {
			t.Fatalf("GenerateRandomInt() = %d, want > 0", n)
		}
	}
}
