// Package config loads server configuration from defaults, environment
// variables, and an optional config file via viper, and watches the
// MOTD file for changes so operators can edit it without a restart.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	irc "github.com/Travis-Britz/ircd"
)

// Config holds everything needed to build an irc.ServerContext plus the
// transport settings main.go needs that the dispatcher doesn't care about.
type Config struct {
	ListenAddr    string        `mapstructure:"listen_addr"`
	Host          string        `mapstructure:"host"`
	Version       string        `mapstructure:"version"`
	PingFrequency time.Duration `mapstructure:"ping_frequency"`
	MotdFile      string        `mapstructure:"motd_file"`
	InboundQueue  int           `mapstructure:"inbound_queue"`
	LogLevel      string        `mapstructure:"log_level"`
}

// Defaults returns the baseline configuration before flags, environment,
// or a config file are applied.
func Defaults() Config {
	return Config{
		ListenAddr:    ":6667",
		Host:          "irc.localhost",
		Version:       "ircd-0.1",
		PingFrequency: 90 * time.Second,
		MotdFile:      "",
		InboundQueue:  256,
		LogLevel:      "info",
	}
}

// Load builds a viper instance seeded with defaults, bound to IRCD_-prefixed
// environment variables, and merged with cfgFile if non-empty.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ircd")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("host", def.Host)
	v.SetDefault("version", def.Version)
	v.SetDefault("ping_frequency", def.PingFrequency)
	v.SetDefault("motd_file", def.MotdFile)
	v.SetDefault("inbound_queue", def.InboundQueue)
	v.SetDefault("log_level", def.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// ReadMotd reads the MOTD file into lines, or returns nil if path is empty.
func ReadMotd(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading motd file %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	return lines, nil
}

// ServerContext builds the irc.ServerContext the dispatcher is constructed
// with, reading motd once up front.
func (c Config) ServerContext(startTime time.Time) (irc.ServerContext, error) {
	motd, err := ReadMotd(c.MotdFile)
	if err != nil {
		return irc.ServerContext{}, err
	}
	return irc.ServerContext{
		StartTime:     startTime,
		Host:          c.Host,
		Version:       c.Version,
		PingFrequency: c.PingFrequency,
		MotdLines:     motd,
	}, nil
}

// WatchMotd watches MotdFile for writes and calls onChange with the
// re-read lines each time it changes. It runs until stop is closed. A
// Config with an empty MotdFile returns immediately without starting a
// watcher.
func WatchMotd(c Config, log *logrus.Logger, stop <-chan struct{}, onChange func([]string)) error {
	if c.MotdFile == "" {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: motd watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.MotdFile); err != nil {
		return fmt.Errorf("config: watching %s: %w", c.MotdFile, err)
	}

	for {
		select {
		case <-stop:
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			lines, err := ReadMotd(c.MotdFile)
			if err != nil {
				log.WithError(err).Warn("motd reload failed")
				continue
			}
			onChange(lines)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("motd watcher error")
		}
	}
}
