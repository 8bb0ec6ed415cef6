package cloud

import (
	"fmt"
)

type Config struct {
	Region     string `yaml:"region"`
	Endpoint   string `yaml:"endpoint"`
	MaxRetries int    `yaml:"max_retries"`
}

func (conf *Config) Validate() error {
	if conf.Region == "" {
		return fmt.Errorf("Configuration error: aws region is empty")
	}
	if conf.MaxRetries < 0 {
		return fmt.Errorf("Configuration error: aws max_retries is negative")
	}
	return nil
}
