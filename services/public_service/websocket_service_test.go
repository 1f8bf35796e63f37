package public_service

import (
	"testing"

	"resto-admin/services"
)

func TestOrderMessageFromEvent(t *testing.T) {
	event := services.OrderEvent{
		Type:         "order_status_changed",
		OrderId:      15,
		OrderNo:      "20240501120000-3-abcd1234",
		RestaurantId: 3,
		Status:       "paid",
		Amount:       "58.00",
		OccurredAt:   "2024-05-01T12:00:00Z",
	}

	msg := orderMessageFromEvent(event)

	if msg.Type != event.Type {
		t.Errorf("Type = %s, want %s", msg.Type, event.Type)
	}
	if msg.OrderId != event.OrderId {
		t.Errorf("OrderId = %d, want %d", msg.OrderId, event.OrderId)
	}
	if msg.OrderNo != event.OrderNo {
		t.Errorf("OrderNo = %s, want %s", msg.OrderNo, event.OrderNo)
	}
	if msg.Status != event.Status {
		t.Errorf("Status = %s, want %s", msg.Status, event.Status)
	}
	if msg.Amount != event.Amount {
		t.Errorf("Amount = %s, want %s", msg.Amount, event.Amount)
	}
	if msg.Time != event.OccurredAt {
		t.Errorf("Time = %s, want %s", msg.Time, event.OccurredAt)
	}
}
