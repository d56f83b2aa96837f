package catalog

import (
	"encoding/json"
	"testing"
)

func TestIDJSON(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    ID
		wantOut string
	}{
		"numeric id":        {in: `5`, want: ID("5"), wantOut: `5`},
		"large numeric id":  {in: `9007199254741001`, want: ID("9007199254741001"), wantOut: `9007199254741001`},
		"string id":         {in: `"abc-123"`, want: ID("abc-123"), wantOut: `"abc-123"`},
		"numeric string id": {in: `"42"`, want: ID("42"), wantOut: `42`},
		"null id":           {in: `null`, want: ID(""), wantOut: `""`},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tc.in), &id); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if id != tc.want {
				t.Fatalf("got %q, want %q", id, tc.want)
			}

			out, err := json.Marshal(id)
			if err != nil {
				t.Fatalf("marshal %q: %v", id, err)
			}
			if string(out) != tc.wantOut {
				t.Fatalf("marshal got %s, want %s", out, tc.wantOut)
			}
		})
	}
}

func TestProductDecodesBackendShape(t *testing.T) {
	body := `{
		"id": 3,
		"name": "Ibuprofen 200mg",
		"price": 6.5,
		"image": "https://example.test/ibuprofen.jpg",
		"category": "Pain Relief",
		"description": "Anti-inflammatory tablets",
		"prescription": false,
		"stock": 80,
		"rating": 4.2,
		"reviews": 31,
		"featured": true
	}`

	var p Product
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.ID != "3" || p.Name != "Ibuprofen 200mg" || p.Price != 6.5 {
		t.Fatalf("unexpected product %+v", p)
	}
	if !p.Featured || p.Prescription {
		t.Fatalf("unexpected flags %+v", p)
	}
}

func TestPatchOmitsUnsetFields(t *testing.T) {
	price := 9.99
	out, err := json.Marshal(Patch{Price: &price})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"price":9.99}` {
		t.Fatalf("unexpected body %s", out)
	}
}
