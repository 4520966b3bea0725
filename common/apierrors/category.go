package apierrors

// ErrorCategory distinguishes between different types of errors
type ErrorCategory string

const (
	// CategoryBusiness represents errors related to business rules violations
	CategoryBusiness ErrorCategory = "business"

	// CategoryApplication represents technical and infrastructure errors
	CategoryApplication ErrorCategory = "application"
)

var businessCodes = map[string]struct{}{
	ErrCodeProductNotFound:    {},
	ErrCodeInvalidProductData: {},
	ErrCodeDeleteDeclined:     {},
	ErrCodeRequestValidation:  {},
}

// CategoryOf returns the category an error code belongs to.
func CategoryOf(code string) ErrorCategory {
	if _, ok := businessCodes[code]; ok {
		return CategoryBusiness
	}
	return CategoryApplication
}
