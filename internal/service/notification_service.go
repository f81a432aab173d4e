package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
	"github.com/ATenderholt/rainbow-notify/internal/notify"
	"github.com/reactivex/rxgo/v2"
	"gopkg.in/yaml.v2"
)

const notificationDir = "notifications"

type Config interface {
	DataPath() string
	TopicArn() string
}

// NotificationService keeps one dispatch pipeline per bucket, built from a
// persisted NotificationConfiguration. Topic configurations without an
// explicit topic fall back to the default topic ARN.
type NotificationService struct {
	cfg       Config
	publisher notify.Publisher
	buckets   map[string]chan rxgo.Item
}

func NewNotificationService(cfg Config, publisher notify.Publisher) *NotificationService {
	return &NotificationService{
		cfg:       cfg,
		publisher: publisher,
		buckets:   make(map[string]chan rxgo.Item),
	}
}

func (service NotificationService) Save(bucket string, config domain.NotificationConfiguration) (string, error) {
	basePath := filepath.Join(service.cfg.DataPath(), notificationDir)
	err := os.MkdirAll(basePath, 0755)
	if err != nil {
		err := SaveError{
			path:   basePath,
			bucket: bucket,
			base:   err,
		}
		logger.Error(err)
		return basePath, err
	}

	path := filepath.Join(basePath, bucket+".yaml")
	logger.Infof("Saving NotificationConfiguration to %s", path)

	file, err := os.Create(path)
	if err != nil {
		err := SaveError{
			path:   path,
			bucket: bucket,
			base:   err,
		}
		logger.Error(err)
		return path, err
	}
	defer file.Close()

	err = yaml.NewEncoder(file).Encode(config)
	if err != nil {
		err := EncodeError{
			config: config,
			base:   err,
		}
		logger.Error(err)
		return path, err
	}

	return path, nil
}

func (service NotificationService) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		err := LoadError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}
	defer file.Close()

	var config domain.NotificationConfiguration
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		err := DecodeError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return err
	}

	ch, _ := config.Start(service.publish)

	filename := filepath.Base(path)
	ext := filepath.Ext(filename)
	bucket := filename[0 : len(filename)-len(ext)]

	service.buckets[bucket] = ch

	return nil
}

// LoadAll restores pipelines for every persisted configuration. A missing
// notification directory is not an error on first start.
func (service NotificationService) LoadAll() error {
	basePath := filepath.Join(service.cfg.DataPath(), notificationDir)
	entries, err := os.ReadDir(basePath)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		err := DirError{
			path: basePath,
			base: err,
		}
		logger.Error(err)
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		err := service.Load(filepath.Join(basePath, entry.Name()))
		if err != nil {
			return err
		}
	}

	return nil
}

func (service NotificationService) ProcessEvent(event domain.UploadEvent) error {
	ch, ok := service.buckets[event.Bucket]
	if !ok {
		err := fmt.Errorf("no NotificationConfiguration for bucket %s has been registered", event.Bucket)
		logger.Error(err)
		return err
	}

	ch <- rxgo.Item{V: event}

	return nil
}

func (service NotificationService) publish(topic string, i interface{}) {
	event := i.(domain.UploadEvent)
	if topic == "" {
		topic = service.cfg.TopicArn()
	}

	msg := domain.NewUploadMessage(event)
	_, err := service.publisher.Publish(context.Background(), topic, msg)
	if err != nil {
		logger.Error(PublishError{
			topic: topic,
			key:   event.Key,
			base:  err,
		})
	}
}
