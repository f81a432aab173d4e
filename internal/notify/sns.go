package notify

import (
	"context"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SnsPublisher sends notifications to an SNS topic.
type SnsPublisher struct {
	client *sns.Client
}

func NewSnsPublisher(client *sns.Client) *SnsPublisher {
	return &SnsPublisher{
		client: client,
	}
}

func (p SnsPublisher) Publish(ctx context.Context, topicArn string, message domain.NotificationMessage) (string, error) {
	output, err := p.client.Publish(ctx, &sns.PublishInput{
		Message:  aws.String(message.Body),
		Subject:  aws.String(message.Subject),
		TopicArn: aws.String(topicArn),
	})
	if err != nil {
		return "", err
	}

	id := aws.ToString(output.MessageId)
	logger.Infof("Published message %s to %s", id, topicArn)

	return id, nil
}
