package domain

// CustomerType is the statutory GSTR-1 classification of a customer.
type CustomerType string

const (
	CustomerB2B  CustomerType = "B2B"
	CustomerB2C  CustomerType = "B2C"
	CustomerB2CL CustomerType = "B2CL"
)

// ValidCustomerTypes maps accepted classification values.
var ValidCustomerTypes = map[CustomerType]bool{
	CustomerB2B:  true,
	CustomerB2C:  true,
	CustomerB2CL: true,
}

// PaymentMode is how an invoice was settled.
type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeCard   PaymentMode = "card"
	PaymentModeUPI    PaymentMode = "upi"
	PaymentModeCredit PaymentMode = "credit"
)

// PaymentStatus tracks settlement of a document against its grand total.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
)

// DerivePaymentStatus computes the payment status from the amount paid
// against the grand total. The status field is never trusted from the caller.
func DerivePaymentStatus(amountPaid, grandTotal float64) PaymentStatus {
	switch {
	case amountPaid <= 0:
		return PaymentStatusUnpaid
	case amountPaid < grandTotal:
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementPurchase   MovementType = "purchase"
	MovementSale       MovementType = "sale"
	MovementAdjustment MovementType = "adjustment"
)

// UserRole defines the staff role hierarchy.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)

// ValidUserRoles maps accepted role values.
var ValidUserRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleStaff:   true,
}
