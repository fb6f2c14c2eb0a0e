package services

import (
	"context"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

const defaultResponseTimeout = 10 * time.Second

type IDGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type NotificationPublisher interface {
	Publish(ctx context.Context, n notification.Notification) error
}

func responseTimeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultResponseTimeout
	}
	return timeout
}
