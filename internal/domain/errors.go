package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInsufficientRole   = errors.New("insufficient role")

	ErrMissingCustomer     = errors.New("invoice requires a customer")
	ErrInvalidCustomerType = errors.New("unknown customer type")
	ErrMissingSupplier     = errors.New("purchase requires a supplier")
	ErrNoLineItems         = errors.New("document requires at least one line item")
	ErrGSTINRequired       = errors.New("B2B customers must carry a GSTIN")
	ErrInvalidStateCode    = errors.New("state code must be a 2-digit GST state code")
	ErrInvalidQuantity     = errors.New("line item quantity must be positive")

	ErrInsufficientStock       = errors.New("insufficient stock for product")
	ErrDuplicateDocumentNumber = errors.New("document number already exists")
)
