package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductPayload is the body sent on create and update. ID is null on create; on update
// the backend finds the product by this ID since the URL carries none.
type ProductPayload struct {
	ID    *int64          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"-"`
}

// MarshalJSON writes price as a bare JSON number rather than decimal's default string.
func (p ProductPayload) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    *int64      `json:"id"`
		Name  string      `json:"name"`
		Price json.Number `json:"price"`
	}{
		ID:    p.ID,
		Name:  p.Name,
		Price: json.Number(p.Price.String()),
	})
}
