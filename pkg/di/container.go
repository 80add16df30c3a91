// Package di provides dependency injection container
package di

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/ssargent/asfmeta/pkg/codecs"
	"github.com/ssargent/asfmeta/pkg/config"
)

// Container holds all the dependencies for the application
type Container struct {
	table  *codecs.Table
	config *config.Config
	logger *logrus.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	c := &Container{
		table:  codecs.Default(),
		config: config.DefaultConfig(),
		logger: logger,
	}
	// default level always parses
	_ = c.ConfigureLogging(c.config.Logging.Level)

	return c
}

// GetCodecTable returns the codec name table
func (c *Container) GetCodecTable() *codecs.Table {
	return c.table
}

// SetCodecTable allows overriding the codec table (for testing)
func (c *Container) SetCodecTable(table *codecs.Table) {
	c.table = table
}

// GetConfig returns the active configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// SetConfig replaces the active configuration
func (c *Container) SetConfig(cfg *config.Config) {
	c.config = cfg
}

// GetLogger returns the application logger
func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}

// SetLogOutput redirects log output (for testing)
func (c *Container) SetLogOutput(w io.Writer) {
	c.logger.SetOutput(w)
}

// ConfigureLogging sets the logger level and formatter
func (c *Container) ConfigureLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	c.logger.SetLevel(lvl)
	c.logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})

	return nil
}
