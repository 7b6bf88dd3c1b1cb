package constants

// Account types
const (
	AccountTypeAdmin    = "admin"
	AccountTypeMerchant = "merchant"
	AccountTypeCustomer = "customer"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusFailed    = "failed"
)

// Payment status
const (
	PaymentStatusPending       = "pending"
	PaymentStatusPaid          = "paid"
	PaymentStatusPartiallyPaid = "partially_paid"
	PaymentStatusRefunded      = "refunded"
	PaymentStatusFailed        = "failed"
)

// Availability status of a bookable entity
const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
	AvailabilityBooked      = "booked"
	AvailabilityMaintenance = "maintenance"
	AvailabilityArchived    = "archived"
)

// Approval status of a listing
const (
	ApprovalPending          = "pending"
	ApprovalApproved         = "approved"
	ApprovalRejected         = "rejected"
	ApprovalChangesRequested = "changes_requested"
)

// Merchant profile status
const (
	MerchantStatusPending   = "pending"
	MerchantStatusActive    = "active"
	MerchantStatusInactive  = "inactive"
	MerchantStatusSuspended = "suspended"
	MerchantStatusRejected  = "rejected"
)

// ExcludedBookingStatuses never block a date range; everything else does.
var ExcludedBookingStatuses = []string{
	BookingStatusCancelled,
	BookingStatusFailed,
}
