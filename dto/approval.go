package dto

// ChangeApprovalStatusInput là body của các endpoint /approval-status.
// Lý do bắt buộc khi từ chối hoặc yêu cầu chỉnh sửa.
type ChangeApprovalStatusInput struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected changes_requested"`
	Reason string `json:"reason"`
}
