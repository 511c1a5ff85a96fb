package notify

import (
	"context"

	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Post(ctx context.Context, endpoint string, payload Payload) error
}

//counterfeiter:generate -o fake -fake-name Channel . Channel
type Channel interface {
	ExchangeDeclare(name string, kind string, durable bool, autoDelete bool, internal bool, noWait bool, args amqp.Table) error
	Publish(exchange string, key string, mandatory bool, immediate bool, msg amqp.Publishing) error
	Close() error
}
