package services

import (
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"

	"vista/models"
)

// Notifier đẩy sự kiện booking/kiểm duyệt qua websocket cho dashboard
type Notifier struct {
	m *melody.Melody
}

func NewNotifier(m *melody.Melody) *Notifier {
	return &Notifier{m: m}
}

type wsEvent struct {
	Event     string      `json:"event"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

func (n *Notifier) broadcast(event string, payload interface{}) {
	if n == nil || n.m == nil {
		return
	}

	data, err := json.Marshal(wsEvent{
		Event:     event,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		log.Printf("Lỗi khi marshal sự kiện websocket: %v", err)
		return
	}

	if err := n.m.Broadcast(data); err != nil {
		log.Printf("Lỗi khi broadcast sự kiện websocket: %v", err)
	}
}

// BookingEvent thông báo booking mới hoặc đổi trạng thái
func (n *Notifier) BookingEvent(event string, booking *models.Booking) {
	n.broadcast(event, map[string]interface{}{
		"bookingId":     booking.ID,
		"referenceCode": booking.ReferenceCode,
		"bookingStatus": booking.BookingStatus,
		"checkInDate":   booking.CheckInDate,
		"checkOutDate":  booking.CheckOutDate,
	})
}

// ApprovalEvent thông báo kết quả kiểm duyệt listing
func (n *Notifier) ApprovalEvent(entity string, entityID uint, status string) {
	n.broadcast("approval.changed", map[string]interface{}{
		"entity":         entity,
		"entityId":       entityID,
		"approvalStatus": status,
	})
}
