package models

import "time"

// ApprovalInfo là trạng thái kiểm duyệt gắn vào các listing.
// Được embed vào Property, Room, HomeStay, Unit, TransportService, ArtistService.
type ApprovalInfo struct {
	ApprovalStatus   string     `gorm:"type:varchar(24);default:pending" json:"approvalStatus"`
	RejectionReason  *string    `json:"rejectionReason,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	LastStatusChange *time.Time `json:"lastStatusChange,omitempty"`
}
