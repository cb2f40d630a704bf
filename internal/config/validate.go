package config

import (
	"fmt"
	"strings"
	"unicode"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}
	if err := c.validateSubtitles(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePlayer() error {
	if strings.ContainsAny(c.Player.Command, "\n\r") {
		return fmt.Errorf("player.command contains control characters")
	}
	return nil
}

func (c *Config) validateSubtitles() error {
	lang := c.Subtitles.DefaultLanguage
	if lang == "" {
		return nil
	}
	if len(lang) < 2 || len(lang) > 3 {
		return fmt.Errorf("subtitles.default_language must be a 2- or 3-letter code, got %q", lang)
	}
	for _, r := range lang {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("subtitles.default_language must be a 2- or 3-letter code, got %q", lang)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
