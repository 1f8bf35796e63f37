package websocket

import "encoding/json"

// OrderMessage 推送给仪表盘的订单动态
type OrderMessage struct {
	Type    string `json:"type"` // order_created / order_status_changed
	OrderId int    `json:"order_id"`
	OrderNo string `json:"order_no"`
	Status  string `json:"status"`
	Amount  string `json:"amount"`
	Time    string `json:"time"`
}

// Encode 序列化消息，失败时返回空对象
func (m OrderMessage) Encode() []byte {
	data, err := json.Marshal(m)
	if err != nil {
		return []byte("{}")
	}
	return data
}
