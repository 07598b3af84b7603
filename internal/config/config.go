package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend Backend `yaml:"backend"`
	Logging Logging `yaml:"logging"`
	Notify  Notify  `yaml:"notify"`
	Audit   Audit   `yaml:"audit"`
}

type Backend struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type Logging struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type Notify struct {
	Workers     int         `yaml:"workers"`
	QueueSize   int         `yaml:"queue_size"`
	TimeoutSecs int         `yaml:"timeout_secs"`
	NATS        NATSConfig  `yaml:"nats"`
	Kafka       KafkaConfig `yaml:"kafka"`
	Redis       RedisConfig `yaml:"redis"`
}

type NATSConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
	Subject string `yaml:"subject"`
}

type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Channel string `yaml:"channel"`
	ListKey string `yaml:"list_key"`
}

type Audit struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads the config at path, applying defaults for anything the file
// leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: Backend{
			Endpoint: "http://localhost:9000",
			Region:   "us-east-1",
		},
		Logging: Logging{
			Level: "info",
		},
		Notify: Notify{
			Workers:     2,
			QueueSize:   256,
			TimeoutSecs: 10,
			NATS:        NATSConfig{Subject: "s3bridge.events"},
			Kafka:       KafkaConfig{Topic: "s3bridge-events"},
			Redis:       RedisConfig{Channel: "s3bridge:events"},
		},
		Audit: Audit{
			Path: "./s3bridge-audit.db",
		},
	}
}
