// Package settings defines application-level configuration data.
package settings

import (
	"errors"
	"strings"
	"time"
)

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Submit     string `yaml:"submit" kong:"help='Send message key',default='enter'"`
	Quit       string `yaml:"quit" kong:"help='Quit key',default='ctrl+c'"`
	ScrollUp   string `yaml:"scroll_up" kong:"help='Scroll chat up key',default='ctrl+u'"`
	ScrollDown string `yaml:"scroll_down" kong:"help='Scroll chat down key',default='ctrl+d'"`
	Clear      string `yaml:"clear" kong:"help='Clear conversation key',default='ctrl+l'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	UserLabel  string `yaml:"user_label" kong:"help='User label color',default='212'"`
	AgentLabel string `yaml:"agent_label" kong:"help='Agent label color',default='36'"`
}

// GeminiConfig defines hosted Gemini API settings.
type GeminiConfig struct {
	APIKey         string `yaml:"-" kong:"env='GEMINI_API_KEY',help='Gemini API key'"`
	Model          string `yaml:"model" kong:"help='Gemini model',default='gemini-2.0-flash'"`
	BaseURL        string `yaml:"base_url" kong:"help='Gemini API base URL',default='https://generativelanguage.googleapis.com'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='60'"`
}

// Timeout returns the configured request timeout as a duration.
func (c GeminiConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Settings represents the application configuration.
type Settings struct {
	Feeds       []string     `yaml:"feeds" kong:"help='RSS/Atom Feed URLs',default='https://feeds.bbci.co.uk/news/rss.xml,https://feeds.npr.org/1001/rss.xml'"`
	MaxItems    int          `yaml:"max_items" kong:"help='Maximum news items per briefing',default='200'"`
	KeyMap      KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Gemini      GeminiConfig `yaml:"gemini" kong:"embed,prefix='gemini.'"`
	HistoryFile string       `yaml:"history_file" kong:"help='Chat history file path'"`
}

// Validate reports configuration errors that must stop startup.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Gemini.APIKey) == "" {
		return errors.New("GEMINI_API_KEY is not set; the agent cannot be reached without it")
	}
	if len(s.Feeds) == 0 {
		return errors.New("no feeds configured")
	}
	return nil
}
