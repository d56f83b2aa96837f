package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a product identifier. The backend issues numeric ids today, but the
// storefront treats them as opaque: JSON numbers and strings both decode, and
// numeric ids are re-emitted as numbers so they round-trip unchanged.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Product is a catalog entry as served by the pharmacy backend.
type Product struct {
	ID           ID      `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Prescription bool    `json:"prescription"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Featured     bool    `json:"featured"`
}

// NewProduct is the create payload. The backend assigns the id; rating and
// reviews are overwritten with client defaults before the request goes out.
type NewProduct struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Prescription bool    `json:"prescription"`
	Stock        int     `json:"stock"`
	Rating       float64 `json:"rating"`
	Reviews      int     `json:"reviews"`
	Featured     bool    `json:"featured"`
}

// Patch is a partial product update: one optional slot per mutable attribute.
// Nil fields are omitted from the request body entirely.
type Patch struct {
	Name         *string  `json:"name,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Prescription *bool    `json:"prescription,omitempty"`
	Stock        *int     `json:"stock,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Reviews      *int     `json:"reviews,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
}
