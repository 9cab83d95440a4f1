// Package eventbus provides in-process publish/subscribe for domain
// events. The ledger engine publishes after an operation commits or is
// rejected; observers (logging, metrics) subscribe without ever altering
// control flow.
package eventbus

import (
	"context"

	"github.com/minibank/ledger/pkg/domain"
)

// EventBus defines the contract for publishing and subscribing to domain
// events.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler func(context.Context, domain.Event))
}
