package rabbitmq

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/streadway/amqp"
)

// DefaultExchange is the topic exchange activity events are published to.
const DefaultExchange = "todo.events"

// ErrConnectionBlocked is returned by Publish while the broker has blocked
// the connection (connection.blocked), since publishing would stall.
var ErrConnectionBlocked = errors.New("RabbitMQ connection is blocked by the broker")

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	mu       sync.Mutex // amqp.Channel is not safe for concurrent publishing
	blocked  atomic.Bool
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL      string
	Exchange string // defaults to DefaultExchange
}

// NewClient creates a new RabbitMQ client.
// It connects to RabbitMQ, opens a channel and declares the events exchange.
func NewClient(cfg Config) (*Client, error) {
	exchange := cfg.Exchange
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	log.Printf("RabbitMQ client connected and exchange %s declared.", exchange)

	c := &Client{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}
	go c.watchBlocked(conn.NotifyBlocked(make(chan amqp.Blocking, 1)))
	return c, nil
}

// watchBlocked tracks connection.blocked/unblocked notifications until the
// connection closes the channel.
func (c *Client) watchBlocked(notifications <-chan amqp.Blocking) {
	for b := range notifications {
		c.blocked.Store(b.Active)
		if b.Active {
			log.Printf("RabbitMQ connection blocked: %s", b.Reason)
		} else {
			log.Printf("RabbitMQ connection unblocked")
		}
	}
	c.blocked.Store(false)
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// Publish sends a persistent JSON message to the events exchange. While the
// broker blocks the connection it fails fast with ErrConnectionBlocked.
func (c *Client) Publish(routingKey string, body []byte) error {
	if c.blocked.Load() {
		return fmt.Errorf("failed to publish %s: %w", routingKey, ErrConnectionBlocked)
	}
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := c.channel.Publish(
		c.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}
	return nil
}
