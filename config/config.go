package config

import (
	"collections/types"
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

const (
	DefaultWaitTimeSeconds = 20
	DefaultLogLevel        = "debug"
)

type Config struct {
	Aws                   *AWSsqsConfig     `yaml:"aws"`
	Http                  *HttpConfig       `yaml:"http"`
	Containers            *ContainersConfig `yaml:"containers"`
	LogFilePath           string            `yaml:"logFile"`
	LogLevel              string            `yaml:"logLevel"`
	ClientsInputPath      string            `yaml:"clientsInputPath"`
	ServerWaitTimeSeconds int64             `yaml:"serverWaitTimeSeconds"`
}

type AWSsqsConfig struct {
	QueueUrl     string `yaml:"url"`
	Region       string `yaml:"region"`
	Endpoint     string `yaml:"endpoint"`
	ClientId     string `yaml:"clientId"`
	ClientSecret string `yaml:"clientSecret"`
	ClientToken  string `yaml:"clientToken"`
}

type HttpConfig struct {
	Addr string `yaml:"addr"`
}

type ContainersConfig struct {
	ArrayCapacity int `yaml:"arrayCapacity"`
}

func LoadConfig(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	// Substitute from environemental vars
	confContent := []byte(os.ExpandEnv(string(data)))

	config := &Config{}

	err := yaml.Unmarshal(confContent, config)
	if err != nil {
		return nil, err
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) applyDefaults() error {
	if c.Aws == nil {
		c.Aws = &AWSsqsConfig{}
	}
	if c.Http == nil {
		c.Http = &HttpConfig{}
	}
	if c.Containers == nil {
		c.Containers = &ContainersConfig{}
	}
	if c.Containers.ArrayCapacity <= 0 {
		c.Containers.ArrayCapacity = types.DefaultArrayCapacity
	}
	if c.ServerWaitTimeSeconds <= 0 {
		c.ServerWaitTimeSeconds = DefaultWaitTimeSeconds
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if _, err := log15.LvlFromString(c.LogLevel); err != nil {
		return fmt.Errorf("logLevel: %w", err)
	}

	for _, p := range []*string{&c.LogFilePath, &c.ClientsInputPath} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// Level returns the configured log15 level; the value was checked on load.
func (c *Config) Level() log15.Lvl {
	lvl, err := log15.LvlFromString(c.LogLevel)
	if err != nil {
		return log15.LvlDebug
	}
	return lvl
}

// NewLogger builds a log15 logger for one component, filtered at the
// configured level and written to stdout.
func (c *Config) NewLogger(service string) log15.Logger {
	logger := log15.New("service", service)
	logger.SetHandler(log15.LvlFilterHandler(c.Level(), log15.StdoutHandler))
	return logger
}
