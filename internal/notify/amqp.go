package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const defaultExchange = "notifications"

// Connector opens a channel on the broker behind url. The closer releases
// the underlying connection.
type Connector func(url string) (Channel, io.Closer, error)

func dialAMQP(uri string) (Channel, io.Closer, error) {
	conn, err := amqp.Dial(uri)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return ch, conn, nil
}

// AMQPNotifier publishes payloads to a topic exchange. The exchange comes
// from the "exchange" query parameter of the endpoint; the path stays the
// vhost.
type AMQPNotifier struct {
	logs    *zap.SugaredLogger
	connect Connector

	mu       sync.Mutex
	uri      string
	ch       Channel
	conn     io.Closer
	declared map[string]bool
}

func NewAMQPNotifier(logger *zap.SugaredLogger, connect Connector) *AMQPNotifier {
	if connect == nil {
		connect = dialAMQP
	}
	return &AMQPNotifier{
		logs:     logger,
		connect:  connect,
		declared: map[string]bool{},
	}
}

func (n *AMQPNotifier) Post(_ context.Context, endpoint string, payload Payload) error {
	uri, exchange, err := splitEndpoint(endpoint)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ch, err := n.channel(uri)
	if err != nil {
		return fmt.Errorf("connect broker: %w", err)
	}

	if !n.declared[exchange] {
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			n.reset()
			return fmt.Errorf("declare exchange %s: %w", exchange, err)
		}
		n.declared[exchange] = true
	}

	msg := amqp.Publishing{
		Headers:      amqp.Table{"x-transaction-hash": payload.TransactionHash},
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    payload.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.Publish(exchange, "transactions."+payload.TransactionHash, false, false, msg); err != nil {
		n.reset()
		return fmt.Errorf("publish to %s: %w", exchange, err)
	}

	n.logs.Debugw("notification published",
		"exchange", exchange,
		"transaction", payload.ID,
		"hash", payload.TransactionHash)
	return nil
}

// Close releases the cached broker connection.
func (n *AMQPNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reset()
}

func (n *AMQPNotifier) channel(uri string) (Channel, error) {
	if n.ch != nil && n.uri == uri {
		return n.ch, nil
	}
	n.reset()

	ch, conn, err := n.connect(uri)
	if err != nil {
		return nil, err
	}
	n.uri, n.ch, n.conn = uri, ch, conn
	n.logs.Infow("connected to broker", "host", hostOf(uri))
	return ch, nil
}

func (n *AMQPNotifier) reset() error {
	var err error
	if n.ch != nil {
		if cerr := n.ch.Close(); cerr != nil {
			n.logs.Warnw("close amqp channel", "error", cerr)
		}
	}
	if n.conn != nil {
		err = n.conn.Close()
	}
	n.uri, n.ch, n.conn = "", nil, nil
	n.declared = map[string]bool{}
	return err
}

func splitEndpoint(endpoint string) (string, string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", "", fmt.Errorf("parse endpoint: %w", err)
	}
	exchange := u.Query().Get("exchange")
	if exchange == "" {
		exchange = defaultExchange
	}
	u.RawQuery = ""
	return u.String(), exchange, nil
}

func hostOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Host
}
