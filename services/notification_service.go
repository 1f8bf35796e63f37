package services

import (
	"encoding/json"
	"log"
	"time"

	"resto-admin/pkg/config"

	"github.com/streadway/amqp"
)

// OrderEvent 订单事件消息
type OrderEvent struct {
	Type         string `json:"type"`
	OrderId      int    `json:"order_id"`
	OrderNo      string `json:"order_no"`
	RestaurantId int    `json:"restaurant_id"`
	Status       string `json:"status"`
	Amount       string `json:"amount"`
	OccurredAt   string `json:"occurred_at"`
}

type NotificationService struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Queue   amqp.Queue
}

var notificationService *NotificationService

// InitNotificationService 初始化消息队列连接，失败时降级为空实现
func InitNotificationService() error {
	cfg := config.GetConfig()

	conn, err := amqp.Dial(cfg.AMQP.URL)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	q, err := ch.QueueDeclare(
		cfg.AMQP.Queue, // name
		true,           // durable
		false,          // delete when unused
		false,          // exclusive
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return err
	}

	notificationService = &NotificationService{
		Conn:    conn,
		Channel: ch,
		Queue:   q,
	}
	return nil
}

// GetNotificationService 未初始化时返回 nil，调用方需自行判空
func GetNotificationService() *NotificationService {
	return notificationService
}

// CloseNotificationService 关闭消息队列连接
func CloseNotificationService() {
	if notificationService == nil {
		return
	}
	if notificationService.Channel != nil {
		notificationService.Channel.Close()
	}
	if notificationService.Conn != nil {
		notificationService.Conn.Close()
	}
	notificationService = nil
}

// PublishOrderEvent 发布订单事件，发送失败只记录日志
func (s *NotificationService) PublishOrderEvent(event OrderEvent) error {
	if event.OccurredAt == "" {
		event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.Channel.Publish(
		"",           // exchange
		s.Queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

// ConsumeOrderEvents 消费订单事件，handler 按条处理
func (s *NotificationService) ConsumeOrderEvents(handler func(OrderEvent)) error {
	msgs, err := s.Channel.Consume(
		s.Queue.Name, // queue
		"",           // consumer
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return err
	}

	go func() {
		for d := range msgs {
			var event OrderEvent
			if err := json.Unmarshal(d.Body, &event); err != nil {
				log.Printf("订单事件解析失败: %v", err)
				continue
			}
			handler(event)
		}
	}()
	return nil
}
