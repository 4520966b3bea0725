package apirequests

// ProductFormRequest is the body posted by the console's product form.
// Both fields arrive as raw text; validation happens in the controller.
type ProductFormRequest struct {
	Name  string `form:"name" json:"name"`
	Price string `form:"price" json:"price"`
}

// DeleteConfirmationRequest is posted by the delete confirmation page.
type DeleteConfirmationRequest struct {
	Confirm string `form:"confirm" json:"confirm"`
}

// Confirmed reports whether the user answered yes.
func (r DeleteConfirmationRequest) Confirmed() bool {
	return r.Confirm == "yes"
}
