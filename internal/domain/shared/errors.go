package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientPoints = NewDomainError("INSUFFICIENT_POINTS", "Not enough points for this purchase")
	ErrAlreadyProcessed   = NewDomainError("ALREADY_PROCESSED", "Post has already been reviewed")
	ErrAlreadyOwned       = NewDomainError("ALREADY_OWNED", "Item is already in the inventory")
	ErrItemInactive       = NewDomainError("ITEM_INACTIVE", "Item is not available for purchase")
	ErrDuplicateCode      = NewDomainError("DUPLICATE_CODE", "Class code is already in use")
	ErrDuplicateLogin     = NewDomainError("DUPLICATE_LOGIN", "Login ID is already in use")
	ErrCodeExhausted      = NewDomainError("CODE_EXHAUSTED", "Could not allocate a unique class code")
)
