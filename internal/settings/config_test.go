package settings_test

import (
	"testing"

	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestFromFlagsDefaults(t *testing.T) {
	cfg, _, err := settings.FromFlags("test", []string{})

	assert.NoError(t, err)
	assert.Equal(t, settings.DefaultRegion, cfg.Region)
	assert.Equal(t, settings.DefaultBasePort, cfg.BasePort)
	assert.Equal(t, "arn:aws:sns:us-west-2:271828182845:upload-notifications", cfg.TopicArn())
}

func TestFromFlagsTopicArn(t *testing.T) {
	cfg, _, err := settings.FromFlags("test", []string{"-topic-arn", "arn:aws:sns:us-east-1:123456789012:custom"})

	assert.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:custom", cfg.TopicArn())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TOPIC_ARN", "arn:aws:sns:eu-west-1:123456789012:uploads")
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := settings.FromEnv()

	assert.NoError(t, err)
	assert.Equal(t, "arn:aws:sns:eu-west-1:123456789012:uploads", cfg.TopicArn())
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestFromEnvRequiresTopic(t *testing.T) {
	t.Setenv("TOPIC_ARN", "")

	cfg, err := settings.FromEnv()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
