// Package config provides configuration management for ping-ops.
package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig initializes the application configuration.
	InitConfig() *Settings
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// defaultConfigProvider implements the Provider interface.
type defaultConfigProvider struct {
	cfg *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

var defaultProvider = NewDefaultConfigProvider()

// Default configuration values for ping-ops. Unit files are written to the
// system unit directory unless user mode is enabled.
const (
	DefaultUnitDir      = "/etc/systemd/system"
	DefaultUserUnitDir  = "$HOME/.config/systemd/user"
	DefaultPingPath     = "/usr/bin/ping"
	DefaultRestartDelay = 10 * time.Second
	DefaultUserMode     = false
	DefaultVerbose      = false
)

// Settings represents the configuration for ping-ops: where unit files are
// written, which ping binary the generated units execute, the restart delay
// baked into the units, user mode, and verbosity.
type Settings struct {
	UnitDir      string        `mapstructure:"unitDir" yaml:"unitDir"`
	PingPath     string        `mapstructure:"pingPath" yaml:"pingPath"`
	RestartDelay time.Duration `mapstructure:"restartDelay" yaml:"restartDelay"`
	UserMode     bool          `mapstructure:"userMode" yaml:"userMode"`
	Verbose      bool          `mapstructure:"verbose" yaml:"verbose"`
}

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	viper.SetConfigFile(path)
}

func (p *defaultConfigProvider) InitConfig() *Settings {
	p.cfg = initConfigInternal()
	return p.cfg
}

// For backward compatibility - pass through to default provider

// SetConfig sets the application configuration.
func SetConfig(c *Settings) {
	defaultProvider.SetConfig(c)
}

// GetConfig returns the current application configuration.
func GetConfig() *Settings {
	return defaultProvider.GetConfig()
}

// SetConfigFilePath sets the configuration file path.
func SetConfigFilePath(p string) {
	defaultProvider.SetConfigFilePath(p)
}

// InitConfig initializes the application configuration.
func InitConfig() *Settings {
	return defaultProvider.InitConfig()
}

// Internal function to initialize configuration.
func initConfigInternal() *Settings {
	cfg := &Settings{
		UnitDir:      DefaultUnitDir,
		PingPath:     DefaultPingPath,
		RestartDelay: DefaultRestartDelay,
		UserMode:     DefaultUserMode,
		Verbose:      DefaultVerbose,
	}

	viper.SetDefault("unitDir", DefaultUnitDir)
	viper.SetDefault("pingPath", DefaultPingPath)
	viper.SetDefault("restartDelay", DefaultRestartDelay)
	viper.SetDefault("userMode", DefaultUserMode)
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(os.ExpandEnv("$HOME/.config/ping-ops"))
	viper.AddConfigPath("/etc/opt/ping-ops")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		panic(err)
	}

	return cfg
}
