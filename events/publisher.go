package events

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/mustfaashraf/ecommerce-api/config"
	"github.com/mustfaashraf/ecommerce-api/models"
)

// Publisher pushes order lifecycle events onto a fanout exchange so
// downstream consumers (notifications, fulfillment) can react. Publishing
// is best-effort: a broker outage never fails a checkout.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

type OrderEvent struct {
	Type       string    `json:"type"`
	OrderID    uint      `json:"order_id"`
	OrderRef   string    `json:"order_ref"`
	UserID     string    `json:"user_id"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewPublisher connects to RabbitMQ and declares the order exchange.
// An empty URL disables publishing and returns a nil Publisher, which all
// methods tolerate.
func NewPublisher(cfg *config.Config) (*Publisher, error) {
	if cfg.RabbitMQURL == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(
		cfg.OrderExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: ch, exchange: cfg.OrderExchange}, nil
}

// OrderPlaced announces a freshly committed order.
func (p *Publisher) OrderPlaced(order *models.Order) {
	p.publish(OrderEvent{
		Type:       "order.placed",
		OrderID:    order.ID,
		OrderRef:   order.OrderRef,
		UserID:     order.UserID,
		TotalPrice: order.TotalPrice,
		Status:     string(order.Status),
		OccurredAt: time.Now(),
	})
}

// OrderStatusChanged announces an admin status transition.
func (p *Publisher) OrderStatusChanged(orderID uint, status models.OrderStatus) {
	p.publish(OrderEvent{
		Type:       "order.status_changed",
		OrderID:    orderID,
		Status:     string(status),
		OccurredAt: time.Now(),
	})
}

func (p *Publisher) publish(event OrderEvent) {
	if p == nil {
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		return
	}
	err = p.channel.Publish(
		p.exchange,
		"",
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			ContentType:  "application/json",
			Body:         body,
		},
	)
	if err != nil {
		logrus.WithError(err).WithField("type", event.Type).Warn("order event publish failed")
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
