package main

import (
	"context"
	"os"

	"github.com/ATenderholt/rainbow-notify/internal/logging"
	"github.com/ATenderholt/rainbow-notify/internal/notify"
	"github.com/ATenderholt/rainbow-notify/internal/service"
	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func init() {
	logger = logging.NewLogger().Named("lambda")
}

// The Lambda runtime injects credentials through the environment.
var envCredentials aws.CredentialsProviderFunc = func(ctx context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		CanExpire:       false,
	}, nil
}

func main() {
	cfg, err := settings.FromEnv()
	if err != nil {
		logger.Fatalf("Invalid environment: %v", err)
	}

	client := sns.NewFromConfig(aws.Config{
		Region:      cfg.Region,
		Credentials: envCredentials,
	})

	notifier := service.NewEventNotifier(cfg, notify.NewSnsPublisher(client))

	lambda.Start(notifier.Handle)
}
