package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"asgcopy/cloud"
	"asgcopy/helpers"
)

const (
	DefaultPollInterval    = 5 * time.Second
	DefaultMaxPollInterval = 30 * time.Second
	DefaultWaitTimeout     = 5 * time.Minute
)

var defaultLoggingConfig = helpers.LoggingConfig{
	Level: "info",
}

type WaitConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval"`
	MaxPollInterval time.Duration `yaml:"max_poll_interval"`
	Timeout         time.Duration `yaml:"timeout"`
}

type Config struct {
	AWS     cloud.Config          `yaml:"aws"`
	Logging helpers.LoggingConfig `yaml:"logging"`
	Wait    WaitConfig            `yaml:"wait"`
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := &Config{
		Logging: defaultLoggingConfig,
		Wait: WaitConfig{
			PollInterval:    DefaultPollInterval,
			MaxPollInterval: DefaultMaxPollInterval,
			Timeout:         DefaultWaitTimeout,
		},
	}

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	err := dec.Decode(conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return conf, nil
}

func (c *Config) Validate() error {
	err := c.AWS.Validate()
	if err != nil {
		return err
	}

	if c.Wait.PollInterval <= time.Duration(0) {
		return fmt.Errorf("Configuration error: wait.poll_interval is less-equal than 0")
	}

	if c.Wait.MaxPollInterval < c.Wait.PollInterval {
		return fmt.Errorf("Configuration error: wait.max_poll_interval is less than wait.poll_interval")
	}

	if c.Wait.Timeout <= time.Duration(0) {
		return fmt.Errorf("Configuration error: wait.timeout is less-equal than 0")
	}

	return nil
}
