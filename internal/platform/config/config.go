// Package config loads process configuration from defaults, an optional
// config file and COMPLIANCE_* environment variables, in increasing priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: server.addr is COMPLIANCE_SERVER_ADDR.
const EnvPrefix = "COMPLIANCE"

// Config is the full process configuration.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Log      Log            `mapstructure:"log"`
	Records  Records        `mapstructure:"records"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Audit    AuditConfig    `mapstructure:"audit"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Records points at the seed the registers start from. Empty uses the
// embedded seed.
type Records struct {
	SeedFile string `mapstructure:"seed_file"`
}

// RedisConfig enables the shared notification store when URL is set.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig enables the audit topic sink when Brokers is set.
type KafkaConfig struct {
	Brokers           string `mapstructure:"brokers"`
	Topic             string `mapstructure:"topic"`
	Partitions        int32  `mapstructure:"partitions"`
	ReplicationFactor int16  `mapstructure:"replication_factor"`
	Buffer            int    `mapstructure:"buffer"`
}

// BrokerList splits the comma-separated broker setting.
func (k KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(k.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

type ReminderConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

type NotifyConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type AuditConfig struct {
	Capacity int `mapstructure:"capacity"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("records.seed_file", "")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "compliance.audit")
	v.SetDefault("kafka.partitions", 1)
	v.SetDefault("kafka.replication_factor", 1)
	v.SetDefault("kafka.buffer", 256)

	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.schedule", "0 0 8 * * *")

	v.SetDefault("notify.ttl", 5*time.Second)

	v.SetDefault("audit.capacity", 1000)
}

// Load reads configuration. configFile may be empty.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv builds the config from defaults and environment only, so main
// stays lean when no config file is given.
func FromEnv() (Config, error) {
	return Load("")
}

func (c Config) validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Notify.TTL <= 0 {
		return fmt.Errorf("notify.ttl must be positive, got %s", c.Notify.TTL)
	}
	if c.Kafka.Topic == "" && len(c.Kafka.BrokerList()) > 0 {
		return fmt.Errorf("kafka.topic is required when kafka.brokers is set")
	}
	return nil
}
