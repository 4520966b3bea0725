package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormState is the create/edit form. Price is kept as typed.
type FormState struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Editing bool   `json:"editing"`
}

// ProductInput is what the form must satisfy before anything is sent.
type ProductInput struct {
	Name  string `validate:"required"`
	Price string `validate:"positive_decimal"`
}

// Input returns the validation view of the form.
func (f FormState) Input() ProductInput {
	return ProductInput{Name: f.Name, Price: f.Price}
}

// Payload converts a validated form into the request body.
func (f FormState) Payload() (ProductPayload, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil {
		return ProductPayload{}, err
	}
	return ProductPayload{ID: f.ID, Name: f.Name, Price: price}, nil
}

// FormFromProduct fills the form for editing an existing product.
func FormFromProduct(p Product) FormState {
	id := p.ID
	return FormState{
		ID:      &id,
		Name:    p.Name,
		Price:   p.Price.String(),
		Editing: true,
	}
}

// ViewState is a copy of everything the page renders.
type ViewState struct {
	Products []Product `json:"products"`
	Form     FormState `json:"form"`
	Error    string    `json:"error,omitempty"`
}
