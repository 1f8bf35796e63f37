package websocket

import (
	"encoding/json"
	"testing"
)

func TestOrderMessageEncode(t *testing.T) {
	msg := OrderMessage{
		Type:    "order_created",
		OrderId: 5,
		OrderNo: "20240510120000712345",
		Status:  "pending",
		Amount:  "88.00",
		Time:    "2024-05-10 12:00:00",
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(msg.Encode(), &decoded); err != nil {
		t.Fatalf("消息应能解析为JSON: %v", err)
	}

	if decoded["type"] != "order_created" {
		t.Errorf("type = %v, want order_created", decoded["type"])
	}
	if decoded["order_id"] != float64(5) {
		t.Errorf("order_id = %v, want 5", decoded["order_id"])
	}
	if decoded["amount"] != "88.00" {
		t.Errorf("amount = %v, want 88.00", decoded["amount"])
	}
}
