package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"vista/constants"
	"vista/errors"
	"vista/models"
)

// ApprovalService xử lý luồng kiểm duyệt listing của admin.
// Merchant sửa listing bị từ chối sẽ tự quay về pending qua update thường.
type ApprovalService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewApprovalService(db *gorm.DB, notifier *Notifier) *ApprovalService {
	return &ApprovalService{db: db, notifier: notifier}
}

// ApplyApprovalTransition áp transition kiểm duyệt lên ApprovalInfo.
// - rejected/changes_requested bắt buộc có lý do
// - approved xóa lý do và chỉ đóng dấu ApprovedAt lần đầu
// - mọi transition đều cập nhật LastStatusChange
func ApplyApprovalTransition(info *models.ApprovalInfo, target string, reason string, now time.Time) error {
	reason = strings.TrimSpace(reason)

	switch target {
	case constants.ApprovalApproved:
		if info.ApprovalStatus != constants.ApprovalApproved {
			stamped := now
			info.ApprovedAt = &stamped
		}
		info.RejectionReason = nil
	case constants.ApprovalRejected, constants.ApprovalChangesRequested:
		if reason == "" {
			return errors.NewAppError(errors.ErrCodeReasonRequired, "Cần nhập lý do từ chối", nil)
		}
		info.RejectionReason = &reason
	case constants.ApprovalPending:
		// merchant gửi duyệt lại
		info.RejectionReason = nil
	default:
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái kiểm duyệt không hợp lệ: "+target, nil)
	}

	info.ApprovalStatus = target
	stamped := now
	info.LastStatusChange = &stamped
	return nil
}

func approvalColumns(info *models.ApprovalInfo) map[string]interface{} {
	return map[string]interface{}{
		"approval_status":    info.ApprovalStatus,
		"rejection_reason":   info.RejectionReason,
		"approved_at":        info.ApprovedAt,
		"last_status_change": info.LastStatusChange,
	}
}

// roomApprovalColumns là approvalColumns kèm side effect riêng của Room:
// duyệt phòng đồng thời bật VistaVerified. HomeStay/Property không có
// side effect này, cờ xác minh của chúng do admin thao tác riêng.
func roomApprovalColumns(room *models.Room, target string) map[string]interface{} {
	columns := approvalColumns(&room.ApprovalInfo)
	if target == constants.ApprovalApproved {
		room.VistaVerified = true
		columns["vista_verified"] = true
	}
	return columns
}

// TransitionProperty đổi trạng thái kiểm duyệt của Property
func (s *ApprovalService) TransitionProperty(propertyID uint, target, reason string) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, propertyID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy chỗ nghỉ", err)
	}

	if err := ApplyApprovalTransition(&property.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&property).Updates(approvalColumns(&property.ApprovalInfo)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("property", property.ID, property.ApprovalStatus)
	return &property, nil
}

// TransitionRoom đổi trạng thái kiểm duyệt của Room.
// Duyệt phòng đồng thời bật VistaVerified, riêng cho Room.
func (s *ApprovalService) TransitionRoom(roomID uint, target, reason string) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy phòng", err)
	}

	if err := ApplyApprovalTransition(&room.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&room).Updates(roomApprovalColumns(&room, target)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("room", room.ID, room.ApprovalStatus)
	return &room, nil
}

// TransitionHomeStay đổi trạng thái kiểm duyệt của HomeStay.
// Không đụng tới IsVerified, cờ đó do admin thao tác riêng.
func (s *ApprovalService) TransitionHomeStay(homestayID uint, target, reason string) (*models.HomeStay, error) {
	var homestay models.HomeStay
	if err := s.db.First(&homestay, homestayID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy homestay", err)
	}

	if err := ApplyApprovalTransition(&homestay.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&homestay).Updates(approvalColumns(&homestay.ApprovalInfo)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("homestay", homestay.ID, homestay.ApprovalStatus)
	return &homestay, nil
}

// TransitionUnit đổi trạng thái kiểm duyệt của Unit
func (s *ApprovalService) TransitionUnit(unitID uint, target, reason string) (*models.Unit, error) {
	var unit models.Unit
	if err := s.db.First(&unit, unitID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy unit", err)
	}

	if err := ApplyApprovalTransition(&unit.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&unit).Updates(approvalColumns(&unit.ApprovalInfo)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("unit", unit.ID, unit.ApprovalStatus)
	return &unit, nil
}

// TransitionTransport đổi trạng thái kiểm duyệt của TransportService
func (s *ApprovalService) TransitionTransport(transportID uint, target, reason string) (*models.TransportService, error) {
	var transport models.TransportService
	if err := s.db.First(&transport, transportID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dịch vụ di chuyển", err)
	}

	if err := ApplyApprovalTransition(&transport.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&transport).Updates(approvalColumns(&transport.ApprovalInfo)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("transport", transport.ID, transport.ApprovalStatus)
	return &transport, nil
}

// TransitionArtist đổi trạng thái kiểm duyệt của ArtistService
func (s *ApprovalService) TransitionArtist(artistID uint, target, reason string) (*models.ArtistService, error) {
	var artist models.ArtistService
	if err := s.db.First(&artist, artistID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy dịch vụ nghệ sĩ", err)
	}

	if err := ApplyApprovalTransition(&artist.ApprovalInfo, target, reason, time.Now()); err != nil {
		return nil, err
	}

	if err := s.db.Model(&artist).Updates(approvalColumns(&artist.ApprovalInfo)).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái kiểm duyệt", err)
	}

	s.notifier.ApprovalEvent("artist", artist.ID, artist.ApprovalStatus)
	return &artist, nil
}
