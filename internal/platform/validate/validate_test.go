package validate

import (
	"encoding/json"
	"reflect"
	"testing"
)

type sample struct {
	Code  int     `json:"code" validate:"required,gt=0"`
	Name  string  `json:"name" validate:"required,max=5"`
	Total float64 `json:"total" validate:"gte=0"`
	Part  float64 `json:"part" validate:"gte=0,ltefield=Total"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	errs := Struct(&sample{Code: 0, Name: "toolong", Total: 1, Part: 2})
	if errs == nil {
		t.Fatalf("expected errors")
	}
	want := []string{"code", "name", "part"}
	if got := errs.Fields(); !reflect.DeepEqual(got, want) {
		t.Fatalf("fields: want=%v got=%v", want, got)
	}
	if got := errs["code"][0]; got != "is required" {
		t.Fatalf("code message: got=%q", got)
	}
	if got := errs["name"][0]; got != "must be at most 5 characters" {
		t.Fatalf("name message: got=%q", got)
	}
}

func TestStructValid(t *testing.T) {
	if errs := Struct(&sample{Code: 3, Name: "ok", Total: 2, Part: 1}); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Run("type mismatch", func(t *testing.T) {
		var s sample
		errs := DecodeStrict(json.RawMessage(`{"code":"abc"}`), &s)
		if got := errs["code"]; len(got) != 1 || got[0] != "must be an integer" {
			t.Fatalf("code errors: %v", errs)
		}
	})
	t.Run("unknown field", func(t *testing.T) {
		var s sample
		errs := DecodeStrict(json.RawMessage(`{"code":1,"colour":"red"}`), &s)
		if _, ok := errs["colour"]; !ok {
			t.Fatalf("expected unknown field error, got %v", errs)
		}
	})
	t.Run("empty", func(t *testing.T) {
		var s sample
		errs := DecodeStrict(nil, &s)
		if _, ok := errs[FormField]; !ok {
			t.Fatalf("expected form error, got %v", errs)
		}
	})
	t.Run("malformed", func(t *testing.T) {
		var s sample
		errs := DecodeStrict(json.RawMessage(`{"code":`), &s)
		if _, ok := errs[FormField]; !ok {
			t.Fatalf("expected form error, got %v", errs)
		}
	})
	t.Run("trailing content", func(t *testing.T) {
		for _, raw := range []string{`{"code":1} {"x":1}`, `{"code":1}}`, `{"code":1} 7`} {
			var s sample
			errs := DecodeStrict(json.RawMessage(raw), &s)
			if got := errs[FormField]; len(got) != 1 || got[0] != "unexpected data after JSON object" {
				t.Fatalf("%s: want trailing data error, got %v", raw, errs)
			}
		}
	})
	t.Run("ok", func(t *testing.T) {
		var s sample
		if errs := DecodeStrict(json.RawMessage(`{"code":4,"name":"x"}`), &s); errs != nil {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if s.Code != 4 || s.Name != "x" {
			t.Fatalf("decoded: %+v", s)
		}
	})
}
