package config_test

import (
	"bytes"
	"time"

	. "asgcopy/cloner/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {

	var (
		conf        *Config
		err         error
		configBytes []byte
	)

	Describe("LoadConfig", func() {

		JustBeforeEach(func() {
			conf, err = LoadConfig(bytes.NewReader(configBytes))
		})

		Context("with invalid yaml", func() {
			BeforeEach(func() {
				configBytes = []byte("aws:\n\tregion: us-east-1\n")
			})

			It("returns an error", func() {
				Expect(err).To(MatchError(MatchRegexp("yaml: .*")))
			})
		})

		Context("with valid yaml", func() {
			BeforeEach(func() {
				configBytes = []byte(`
aws:
  region: us-east-1
  endpoint: http://localhost:4566
  max_retries: 3
logging:
  level: DeBug
wait:
  poll_interval: 2s
  max_poll_interval: 20s
  timeout: 10m
`)
			})

			It("returns the config and lowercases the log level", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.AWS.Region).To(Equal("us-east-1"))
				Expect(conf.AWS.Endpoint).To(Equal("http://localhost:4566"))
				Expect(conf.AWS.MaxRetries).To(Equal(3))
				Expect(conf.Logging.Level).To(Equal("debug"))
				Expect(conf.Wait.PollInterval).To(Equal(2 * time.Second))
				Expect(conf.Wait.MaxPollInterval).To(Equal(20 * time.Second))
				Expect(conf.Wait.Timeout).To(Equal(10 * time.Minute))
			})
		})

		Context("with partial yaml", func() {
			BeforeEach(func() {
				configBytes = []byte(`
aws:
  region: eu-west-1
`)
			})

			It("fills the defaults", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conf.Logging.Level).To(Equal("info"))
				Expect(conf.Wait.PollInterval).To(Equal(DefaultPollInterval))
				Expect(conf.Wait.MaxPollInterval).To(Equal(DefaultMaxPollInterval))
				Expect(conf.Wait.Timeout).To(Equal(DefaultWaitTimeout))
			})
		})

		Context("with an unknown field", func() {
			BeforeEach(func() {
				configBytes = []byte(`
aws:
  region: us-east-1
unknown_thing: true
`)
			})

			It("returns an error", func() {
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Validate", func() {

		BeforeEach(func() {
			conf = &Config{}
			conf.AWS.Region = "us-east-1"
			conf.Wait.PollInterval = DefaultPollInterval
			conf.Wait.MaxPollInterval = DefaultMaxPollInterval
			conf.Wait.Timeout = DefaultWaitTimeout
		})

		JustBeforeEach(func() {
			err = conf.Validate()
		})

		Context("when the config is valid", func() {
			It("returns no error", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("when aws region is empty", func() {
			BeforeEach(func() {
				conf.AWS.Region = ""
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("Configuration error: aws region is empty"))
			})
		})

		Context("when poll_interval is not positive", func() {
			BeforeEach(func() {
				conf.Wait.PollInterval = 0
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("Configuration error: wait.poll_interval is less-equal than 0"))
			})
		})

		Context("when max_poll_interval is smaller than poll_interval", func() {
			BeforeEach(func() {
				conf.Wait.MaxPollInterval = conf.Wait.PollInterval - time.Second
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("Configuration error: wait.max_poll_interval is less than wait.poll_interval"))
			})
		})

		Context("when timeout is not positive", func() {
			BeforeEach(func() {
				conf.Wait.Timeout = 0
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("Configuration error: wait.timeout is less-equal than 0"))
			})
		})
	})
})
