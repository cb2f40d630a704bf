package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"subtract/internal/config"
	"subtract/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	quietFlag    *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, quietFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		quietFlag:    quietFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}

		level := cfg.Logging.Level
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = strings.TrimSpace(*c.logLevelFlag)
		}
		if c.quietFlag != nil && *c.quietFlag {
			level = "error"
		}

		logger, err := logging.New(logging.Options{Level: level, Format: cfg.Logging.Format})
		if err != nil {
			c.loggerErr = err
			return
		}
		// Correlation ids only matter when the output is consumed by
		// machines; the console format stays uncluttered.
		if cfg.Logging.Format == "json" {
			logger = logger.With(logging.String(logging.FieldCorrelationID, uuid.NewString()))
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}
