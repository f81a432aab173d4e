package service_test

import (
	"context"
	"testing"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
	"github.com/ATenderholt/rainbow-notify/internal/service"
	"github.com/stretchr/testify/assert"
)

type publishCall struct {
	topic string
	body  string
}

type TestHelper struct {
	dir string
	ch  chan publishCall
}

func (h TestHelper) DataPath() string { return h.dir }
func (h TestHelper) TopicArn() string { return testTopic }

func (h TestHelper) Publish(_ context.Context, topicArn string, message domain.NotificationMessage) (string, error) {
	h.ch <- publishCall{topic: topicArn, body: message.Body}
	return "message-id", nil
}

func TestNotificationServiceReadAndWrite(t *testing.T) {
	// visibility into publishes
	helper := TestHelper{dir: t.TempDir(), ch: make(chan publishCall)}
	s := service.NewNotificationService(helper, helper)

	data := domain.NotificationConfiguration{
		TopicConfigurations: []domain.TopicConfiguration{
			{
				Events: []string{domain.ObjectCreatedFilter},
				Filter: domain.Filter{},
				Id:     "some-id",
				Topic:  "arn:aws:sns:us-west-2:271828182845:uploads",
			},
		},
	}

	path, err := s.Save("test", data)
	if err != nil {
		t.Fatalf("Problem saving configuration: %v", err)
	}

	err = s.Load(path)
	if err != nil {
		t.Fatalf("Problem loading configuration: %v", err)
	}

	// send two events, first should be filtered out
	testData := []domain.UploadEvent{
		{Event: domain.ObjectRemovedEvent, Bucket: "test", Key: "test.txt"},
		{Event: domain.ObjectCreatedEvent, Bucket: "test", Key: "test.bin"},
	}

	for _, event := range testData {
		err = s.ProcessEvent(event)
		if err != nil {
			t.Fatalf("Error when processing event: %s", err)
		}
	}

	value := <-helper.ch

	assert.Equal(t, "arn:aws:sns:us-west-2:271828182845:uploads", value.topic)
	assert.Equal(t, "File uploaded: test.bin in bucket test", value.body)
}

func TestNotificationServiceDefaultTopic(t *testing.T) {
	helper := TestHelper{dir: t.TempDir(), ch: make(chan publishCall)}
	s := service.NewNotificationService(helper, helper)

	// no explicit topic, falls back to the configured default
	data := domain.NotificationConfiguration{
		TopicConfigurations: []domain.TopicConfiguration{
			{
				Events: []string{domain.ObjectCreatedFilter},
				Id:     "some-id",
			},
		},
	}

	path, err := s.Save("test", data)
	if err != nil {
		t.Fatalf("Problem saving configuration: %v", err)
	}

	err = s.Load(path)
	if err != nil {
		t.Fatalf("Problem loading configuration: %v", err)
	}

	err = s.ProcessEvent(domain.UploadEvent{Event: domain.ObjectCreatedEvent, Bucket: "test", Key: "test.bin"})
	if err != nil {
		t.Fatalf("Error when processing event: %s", err)
	}

	value := <-helper.ch

	assert.Equal(t, testTopic, value.topic)
}

func TestNotificationServiceLoadAll(t *testing.T) {
	helper := TestHelper{dir: t.TempDir(), ch: make(chan publishCall)}
	s := service.NewNotificationService(helper, helper)

	data := domain.NotificationConfiguration{
		TopicConfigurations: []domain.TopicConfiguration{
			{
				Events: []string{domain.ObjectCreatedFilter},
				Id:     "some-id",
			},
		},
	}

	_, err := s.Save("first", data)
	if err != nil {
		t.Fatalf("Problem saving configuration: %v", err)
	}

	_, err = s.Save("second", data)
	if err != nil {
		t.Fatalf("Problem saving configuration: %v", err)
	}

	restored := service.NewNotificationService(helper, helper)
	err = restored.LoadAll()
	if err != nil {
		t.Fatalf("Problem loading configurations: %v", err)
	}

	err = restored.ProcessEvent(domain.UploadEvent{Event: domain.ObjectCreatedEvent, Bucket: "second", Key: "test.bin"})
	if err != nil {
		t.Fatalf("Error when processing event: %s", err)
	}

	value := <-helper.ch

	assert.Equal(t, "File uploaded: test.bin in bucket second", value.body)
}

func TestNotificationServiceUnknownBucket(t *testing.T) {
	helper := TestHelper{dir: t.TempDir(), ch: make(chan publishCall)}
	s := service.NewNotificationService(helper, helper)

	err := s.ProcessEvent(domain.UploadEvent{Event: domain.ObjectCreatedEvent, Bucket: "unknown", Key: "test.bin"})

	assert.Error(t, err)
}
