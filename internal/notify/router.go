// Package notify delivers transaction notifications to owner endpoints over
// HTTP or an AMQP broker.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var ErrUnsupportedScheme error = errors.New("unsupported notification endpoint scheme")

// Router picks the notifier by the endpoint's URL scheme.
type Router struct {
	web    Notifier
	broker Notifier
}

func NewRouter(web, broker Notifier) *Router {
	return &Router{
		web:    web,
		broker: broker,
	}
}

// New wires the HTTP and AMQP notifiers behind a Router.
func New(logger *zap.SugaredLogger, timeout time.Duration) *Router {
	return NewRouter(
		NewHTTPNotifier(logger, timeout),
		NewAMQPNotifier(logger, nil),
	)
}

func (r *Router) Post(ctx context.Context, endpoint string, payload Payload) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint: %w", err)
	}

	switch u.Scheme {
	case "http", "https":
		return r.web.Post(ctx, endpoint, payload)
	case "amqp", "amqps":
		return r.broker.Post(ctx, endpoint, payload)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (r *Router) Close() error {
	if c, ok := r.broker.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
