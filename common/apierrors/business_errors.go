package apierrors

// Business error codes
const (
	// Product Domain Errors
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"    // When product doesn't exist
	ErrCodeInvalidProductData = "INVALID_PRODUCT_DATA" // When the product form fails validation
	ErrCodeDeleteDeclined     = "DELETE_DECLINED"      // When the user did not confirm a delete
)
