package domain

import (
	"context"
	"strings"

	"github.com/reactivex/rxgo/v2"
)

// PublishFunc delivers one matching UploadEvent to a topic.
type PublishFunc func(topic string, i interface{})

type TopicConfiguration struct {
	Events []string `yaml:"events" json:"events"`
	Filter Filter   `yaml:"filter" json:"filter"`
	Id     string   `yaml:"id" json:"id"`
	Topic  string   `yaml:"topic" json:"topic"`
}

// MatchesEvent reports whether the event name matches any of the configured
// patterns, e.g. "s3:ObjectCreated:*" matches "s3:ObjectCreated:Put".
func (c TopicConfiguration) MatchesEvent(i interface{}) bool {
	event := i.(UploadEvent)

	for _, pattern := range c.Events {
		if strings.HasPrefix(event.Event, strings.TrimSuffix(pattern, ":*")) {
			return true
		}
	}

	return false
}

type NotificationConfiguration struct {
	TopicConfigurations []TopicConfiguration `yaml:"topicConfigurations" json:"topicConfigurations"`
}

// Start builds the dispatch pipeline for one bucket. Events pushed into the
// returned channel fan out to every configured topic whose event patterns and
// key filter rules match.
func (config NotificationConfiguration) Start(publish PublishFunc) (chan rxgo.Item, context.Context) {
	ch := make(chan rxgo.Item)
	observable := rxgo.FromChannel(ch, rxgo.WithPublishStrategy())

	for _, c := range config.TopicConfigurations {
		cfg := c
		observable.
			Filter(cfg.MatchesEvent).
			Filter(cfg.Filter.FilterEvents).
			DoOnNext(func(i interface{}) {
				publish(cfg.Topic, i)
			})
	}

	ctx, _ := observable.Connect(context.Background())
	return ch, ctx
}
