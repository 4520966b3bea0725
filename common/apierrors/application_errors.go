package apierrors

// Application error codes
const (
	// System Errors
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"       // When the product API cannot be reached at all
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"  // Input validation failures
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR" // Request building, marshalling
	ErrCodeUpstreamStatus     = "UPSTREAM_STATUS_ERROR"     // Product API answered with a non-2xx status

	// Unexpected Errors
	ErrCodeSystemPanic    = "SYSTEM_PANIC"    // Recovered panics
	ErrCodeNetworkError   = "NETWORK_ERROR"   // Transport failures
	ErrCodeMalformedData  = "MALFORMED_DATA"  // Response bodies that don't decode
	ErrCodeRequestTimeout = "REQUEST_TIMEOUT" // Operation timeouts
	ErrCodeUnknown        = "UNKNOWN_ERROR"   // Fallback for unclassified errors
)
