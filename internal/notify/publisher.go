package notify

import (
	"context"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
)

// Publisher delivers one NotificationMessage to a topic. Implementations must
// be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, topicArn string, message domain.NotificationMessage) (string, error)
}
