// Package notify fans indexed contract events out to RabbitMQ so other
// services can follow a single address without polling the chain.
package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"vitaverse/internal/models"

	"github.com/streadway/amqp"
)

const DefaultExchange = "vitaverse.events"

type Publisher interface {
	Publish(ev models.ContractEvent) error
	Close() error
}

// RoutingKey is "<event>.<address>", both lower case, so consumers can bind
// with patterns such as "badgepurchased.*" or "*.0xabc...".
func RoutingKey(ev models.ContractEvent) string {
	return fmt.Sprintf("%s.%s", strings.ToLower(ev.Name), strings.ToLower(ev.UserAddress))
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *RabbitPublisher) Publish(ev models.ContractEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish(
		p.exchange,     // exchange
		RoutingKey(ev), // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    fmt.Sprintf("%s:%d", ev.TxHash, ev.LogIndex),
			Type:         ev.Name,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *RabbitPublisher) Connected() bool {
	return p.conn != nil && !p.conn.IsClosed()
}

func (p *RabbitPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(models.ContractEvent) error { return nil }
func (NoopPublisher) Close() error                       { return nil }
