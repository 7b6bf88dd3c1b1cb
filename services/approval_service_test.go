package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/constants"
	"vista/errors"
	"vista/models"
)

func TestApplyApprovalTransitionApprove(t *testing.T) {
	now := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	reason := "thiếu giấy phép"
	info := &models.ApprovalInfo{
		ApprovalStatus:  constants.ApprovalRejected,
		RejectionReason: &reason,
	}

	err := ApplyApprovalTransition(info, constants.ApprovalApproved, "", now)
	require.NoError(t, err)

	assert.Equal(t, constants.ApprovalApproved, info.ApprovalStatus)
	assert.Nil(t, info.RejectionReason)
	require.NotNil(t, info.ApprovedAt)
	assert.Equal(t, now, *info.ApprovedAt)
	require.NotNil(t, info.LastStatusChange)
	assert.Equal(t, now, *info.LastStatusChange)
}

func TestApplyApprovalTransitionApproveKeepsFirstApprovedAt(t *testing.T) {
	first := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	info := &models.ApprovalInfo{
		ApprovalStatus: constants.ApprovalApproved,
		ApprovedAt:     &first,
	}

	err := ApplyApprovalTransition(info, constants.ApprovalApproved, "", later)
	require.NoError(t, err)

	// ApprovedAt chỉ đóng dấu lần đầu
	assert.Equal(t, first, *info.ApprovedAt)
	assert.Equal(t, later, *info.LastStatusChange)
}

func TestApplyApprovalTransitionRejectRequiresReason(t *testing.T) {
	for _, target := range []string{constants.ApprovalRejected, constants.ApprovalChangesRequested} {
		t.Run(target, func(t *testing.T) {
			info := &models.ApprovalInfo{ApprovalStatus: constants.ApprovalPending}

			err := ApplyApprovalTransition(info, target, "   ", time.Now())
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeReasonRequired))
			assert.Equal(t, constants.ApprovalPending, info.ApprovalStatus)

			err = ApplyApprovalTransition(info, target, "ảnh không đúng thực tế", time.Now())
			require.NoError(t, err)
			assert.Equal(t, target, info.ApprovalStatus)
			require.NotNil(t, info.RejectionReason)
			assert.Equal(t, "ảnh không đúng thực tế", *info.RejectionReason)
		})
	}
}

func TestApplyApprovalTransitionBackToPendingClearsReason(t *testing.T) {
	reason := "mô tả sai"
	info := &models.ApprovalInfo{
		ApprovalStatus:  constants.ApprovalRejected,
		RejectionReason: &reason,
	}

	err := ApplyApprovalTransition(info, constants.ApprovalPending, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, constants.ApprovalPending, info.ApprovalStatus)
	assert.Nil(t, info.RejectionReason)
}

func TestRoomApprovalColumnsAsymmetry(t *testing.T) {
	now := time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		target           string
		reason           string
		wantVistaColumn  bool
		wantVistaFlagSet bool
	}{
		{"duyệt phòng bật VistaVerified", constants.ApprovalApproved, "", true, true},
		{"từ chối phòng không đụng VistaVerified", constants.ApprovalRejected, "ảnh mờ", false, false},
		{"yêu cầu sửa không đụng VistaVerified", constants.ApprovalChangesRequested, "thiếu tiện nghi", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := models.Room{}
			room.ApprovalStatus = constants.ApprovalPending

			err := ApplyApprovalTransition(&room.ApprovalInfo, tt.target, tt.reason, now)
			require.NoError(t, err)

			columns := roomApprovalColumns(&room, tt.target)
			assert.Equal(t, tt.target, columns["approval_status"])

			verified, ok := columns["vista_verified"]
			assert.Equal(t, tt.wantVistaColumn, ok)
			if tt.wantVistaColumn {
				assert.Equal(t, true, verified)
			}
			assert.Equal(t, tt.wantVistaFlagSet, room.VistaVerified)
		})
	}
}

func TestHomeStayApprovalKeepsVerifyFlagSeparate(t *testing.T) {
	now := time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC)

	homestay := models.HomeStay{}
	homestay.ApprovalStatus = constants.ApprovalPending

	err := ApplyApprovalTransition(&homestay.ApprovalInfo, constants.ApprovalApproved, "", now)
	require.NoError(t, err)

	// duyệt homestay chỉ ghi các cột kiểm duyệt, IsVerified giữ nguyên
	columns := approvalColumns(&homestay.ApprovalInfo)
	_, hasVerified := columns["is_verified"]
	assert.False(t, hasVerified)
	_, hasVistaVerified := columns["vista_verified"]
	assert.False(t, hasVistaVerified)

	assert.False(t, homestay.IsVerified)
	require.NotNil(t, homestay.ApprovedAt)
	assert.Equal(t, now, *homestay.ApprovedAt)
	assert.Nil(t, homestay.RejectionReason)
}

func TestApplyApprovalTransitionInvalidStatus(t *testing.T) {
	info := &models.ApprovalInfo{ApprovalStatus: constants.ApprovalPending}

	err := ApplyApprovalTransition(info, "blessed", "", time.Now())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInvalidStatus))
}
