package shared

import (
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	SQLITE_STORAGE = "sqlite"
	MEMORY_STORAGE = "memory"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Server  ServerConfig  `mapstructure:"server"`
	Google  GoogleConfig  `mapstructure:"google"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Type       string `mapstructure:"type" validate:"omitempty,oneof=sqlite memory"`
	Dir        string `mapstructure:"dir"`
	PassPhrase string `mapstructure:"passPhrase" validate:"required"`
}

type ServerConfig struct {
	Host       string `mapstructure:"host" validate:"omitempty,ip|hostname"`
	Port       int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	TimeZone   string `mapstructure:"timeZone"`
	AuthSecret string `mapstructure:"authSecret"`
}

// Address is the 'host:port' the server listens on
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type GoogleConfig struct {
	ApplicationCredentials string              `mapstructure:"applicationCredentials"`
	Storage                GoogleStorageConfig `mapstructure:"storage"`
}

type GoogleStorageConfig struct {
	Bucket         string `mapstructure:"bucket" validate:"required_with=EnableBackup"`
	Prefix         string `mapstructure:"prefix"`
	BackupSchedule string `mapstructure:"backupSchedule" validate:"required_with=EnableBackup"`
	EnableBackup   bool   `mapstructure:"enableBackup"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// LoadConfig decodes & validates the config read by 'v', filling in defaults
func LoadConfig(v *viper.Viper) (*Config, error) {
	v.SetDefault("storage.type", SQLITE_STORAGE)
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.timeZone", "UTC")
	v.SetDefault("log.level", "warn")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Errorf("invalid config in %s:\n%s",
			v.ConfigFileUsed(), strings.Join(strings.Split(err.Error(), "\n"), "\n  "))
	}

	return config, nil
}
