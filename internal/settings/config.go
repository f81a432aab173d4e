package settings

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultAccountNumber = "271828182845"
	DefaultRegion        = "us-west-2"
	DefaultTopicName     = "upload-notifications"

	DefaultBasePort = 9070
	DefaultDataPath = "data"
)

type Config struct {
	AccountNumber string
	IsDebug       bool
	IsLocal       bool
	Region        string
	SnsEndpoint   string

	BasePort int
	dataPath string
	topicArn string
}

func (config *Config) DataPath() string {
	if config.dataPath[0] == '/' {
		return filepath.Join(config.dataPath, "notify")
	}

	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	return filepath.Join(cwd, config.dataPath, "notify")
}

// TopicArn is the default destination for upload notifications. Injected at
// deployment time; falls back to an ARN built from the configured account.
func (config *Config) TopicArn() string {
	if config.topicArn != "" {
		return config.topicArn
	}

	return fmt.Sprintf("arn:aws:sns:%s:%s:%s", config.Region, config.AccountNumber, DefaultTopicName)
}

func DefaultConfig() *Config {
	return &Config{
		AccountNumber: DefaultAccountNumber,
		IsDebug:       false,
		IsLocal:       true,
		Region:        DefaultRegion,
		BasePort:      DefaultBasePort,
		dataPath:      DefaultDataPath,
	}
}

func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var cfg Config
	flags.StringVar(&cfg.AccountNumber, "account-number", DefaultAccountNumber, "Account number used in default topic ARN")
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.BoolVar(&cfg.IsLocal, "local", true, "Application publishes to a local SNS endpoint")
	flags.StringVar(&cfg.Region, "region", DefaultRegion, "Region used in default topic ARN")
	flags.StringVar(&cfg.SnsEndpoint, "sns-endpoint", "", "Endpoint URL override for SNS")
	flags.IntVar(&cfg.BasePort, "port", DefaultBasePort, "Port used for HTTP")
	flags.StringVar(&cfg.dataPath, "data-path", DefaultDataPath, "Path to persist notification configurations")
	flags.StringVar(&cfg.topicArn, "topic-arn", "", "Default topic ARN for upload notifications")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	return &cfg, buf.String(), err
}

// FromEnv builds configuration for Lambda mode, where everything is injected
// through the environment. TOPIC_ARN must be set and non-empty.
func FromEnv() (*Config, error) {
	topic := os.Getenv("TOPIC_ARN")
	if topic == "" {
		return nil, fmt.Errorf("TOPIC_ARN must be set to a non-empty topic ARN")
	}

	cfg := DefaultConfig()
	cfg.IsLocal = false
	cfg.topicArn = topic
	cfg.IsDebug = os.Getenv("DEBUG") != ""

	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Region = region
	}

	logger.Debugf("Loaded configuration from environment for topic %s", topic)

	return cfg, nil
}
