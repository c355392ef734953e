package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"abstract-main/pkg/config"
	"abstract-main/pkg/logger"
	"abstract-main/pkg/reactive"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ChangeExchange = "store_changes"

	publishTimeout = 5 * time.Second
)

// Message is one store change as published on the exchange.
type Message struct {
	SessionID string        `json:"session_id"`
	Kind      reactive.Kind `json:"kind,omitempty"`
	Op        reactive.Op   `json:"op"`
	ID        string        `json:"id,omitempty"`
	EntityID  string        `json:"entity_id,omitempty"`
	At        time.Time     `json:"at"`
}

// RoutingKey is "<kind>.<op>", e.g. "post.like".
func (m Message) RoutingKey() string {
	kind := string(m.Kind)
	if kind == "" {
		kind = "session"
	}
	return kind + "." + string(m.Op)
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Client mirrors store changes to a topic exchange. Publish never blocks;
// messages that do not fit in the buffer are dropped and counted.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	pub     publisher
	logger  *logger.Logger

	messages  chan Message
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	dropped   atomic.Int64
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

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
		ChangeExchange, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	c := newClient(channel, cfg.EventBuffer, log)
	c.conn = conn
	c.channel = channel
	return c, nil
}

func newClient(pub publisher, buffer int, log *logger.Logger) *Client {
	if buffer <= 0 {
		buffer = 64
	}
	c := &Client{
		pub:      pub,
		logger:   log,
		messages: make(chan Message, buffer),
		done:     make(chan struct{}),
	}
	c.wg.Add(1)
	go c.run()
	return c
}

// Publish queues a change of the given session for delivery.
func (c *Client) Publish(sessionID string, change reactive.Change, entityID string) {
	msg := Message{
		SessionID: sessionID,
		Kind:      change.Kind,
		Op:        change.Op,
		ID:        change.ID,
		EntityID:  entityID,
		At:        change.At,
	}
	select {
	case <-c.done:
		return
	default:
	}
	select {
	case c.messages <- msg:
	default:
		c.dropped.Add(1)
	}
}

// Dropped returns the number of changes discarded on a full buffer.
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

func (c *Client) run() {
	defer c.wg.Done()
	for {
		select {
		case msg := <-c.messages:
			c.send(msg)
		case <-c.done:
			// Flush what is already queued.
			for {
				select {
				case msg := <-c.messages:
					c.send(msg)
				default:
					return
				}
			}
		}
	}
}

func (c *Client) send(msg Message) {
	body, err := json.Marshal(msg)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to marshal change: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = c.pub.PublishWithContext(ctx,
		ChangeExchange,   // exchange
		msg.RoutingKey(), // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   msg.At,
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish to exchange=%s, routing_key=%s: %v", ChangeExchange, msg.RoutingKey(), err)
	}
}

// Close flushes queued changes and closes the connection.
func (c *Client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	c.wg.Wait()

	if n := c.dropped.Load(); n > 0 {
		c.logger.Warn("[RABBITMQ] Dropped %d changes on a full buffer", n)
	}
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
