package service

import (
	"context"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
	"github.com/ATenderholt/rainbow-notify/internal/notify"
)

const successBody = "Notification sent successfully!"

// EventNotifier translates upload events into outbound notifications. It is
// stateless; one instance serves any number of concurrent invocations.
type EventNotifier struct {
	cfg       Config
	publisher notify.Publisher
}

func NewEventNotifier(cfg Config, publisher notify.Publisher) *EventNotifier {
	return &EventNotifier{
		cfg:       cfg,
		publisher: publisher,
	}
}

// Handle processes one event: every record becomes exactly one publish to the
// configured topic. Publish failures propagate without retry; an event with no
// records is an error, never a silent success.
func (n EventNotifier) Handle(ctx context.Context, event domain.Event) (domain.Response, error) {
	if len(event.Records) == 0 {
		err := NoRecordsError{}
		logger.Error(err)
		return domain.Response{}, err
	}

	topic := n.cfg.TopicArn()

	for _, record := range event.Records {
		upload := record.Upload()

		if upload.Bucket == "" {
			err := MissingFieldError{Field: "bucket name"}
			logger.Error(err)
			return domain.Response{}, err
		}

		if upload.Key == "" {
			err := MissingFieldError{Field: "object key"}
			logger.Error(err)
			return domain.Response{}, err
		}

		msg := domain.NewUploadMessage(upload)
		_, err := n.publisher.Publish(ctx, topic, msg)
		if err != nil {
			err := PublishError{
				topic: topic,
				key:   upload.Key,
				base:  err,
			}
			logger.Error(err)
			return domain.Response{}, err
		}

		logger.Infof("Notified %s about %s in bucket %s", topic, upload.Key, upload.Bucket)
	}

	return domain.Response{StatusCode: 200, Body: successBody}, nil
}
