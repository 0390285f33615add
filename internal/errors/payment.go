package errors

const (
	CodeInvalidMetadata   = "INVALID_METADATA"
	CodeUnsupportedMethod = "UNSUPPORTED_METHOD"
)

var (
	// ErrInvalidMetadata matches every metadata error regardless of method.
	ErrInvalidMetadata = &DomainError{
		Code:    CodeInvalidMetadata,
		Message: "invalid metadata",
	}
	ErrInvalidCardMetadata = &DomainError{
		Code:    CodeInvalidMetadata,
		Message: "Invalid card metadata",
	}
	ErrInvalidPayPalMetadata = &DomainError{
		Code:    CodeInvalidMetadata,
		Message: "Invalid PayPal metadata",
	}
	ErrUnsupportedMethod = &DomainError{
		Code:    CodeUnsupportedMethod,
		Message: "Unsupported payment method",
	}
)
