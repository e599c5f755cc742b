package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_layout.yaml
var defaultLayout []byte

// Widget names in the layout description
const (
	WidgetGreeting   = "greeting"
	WidgetQuit       = "quit"
	WidgetSettings   = "settings"
	WidgetUser       = "user"
	WidgetCollapse   = "collapse"
	WidgetToggleSize = "toggle_size"
	WidgetBarChart   = "bar_chart"
	WidgetLineChart  = "line_chart"
	WidgetPieChart   = "pie_chart"
	WidgetBackend    = "backend"
	WidgetInternet   = "internet"
	WidgetVersion    = "version"
	WidgetAddTask    = "add_task"
	WidgetRemoveTask = "remove_task"
	WidgetMetric1    = "metric_1"
	WidgetMetric2    = "metric_2"
	WidgetMetric3    = "metric_3"
	WidgetMetric4    = "metric_4"
)

// Defaults applied to missing fields
const (
	DefaultTitle        = "Ares"
	DefaultWidth        = 1100
	DefaultHeight       = 680
	DefaultMenuWidth    = 210
	DefaultHeaderHeight = 50
	DefaultBackendPath  = "resources/backend.json"
	DefaultCheckURL     = "https://www.py-dash.com"
	DefaultCheckTimeout = 5 * time.Second
)

// Config is the immutable application layout and configuration
type Config struct {
	Window  WindowConfig            `yaml:"window"`
	Backend BackendConfig           `yaml:"backend"`
	Checks  ChecksConfig            `yaml:"checks"`
	Widgets map[string]WidgetConfig `yaml:"widgets"`
}

type WindowConfig struct {
	Title        string  `yaml:"title"`
	Icon         string  `yaml:"icon"`
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	MenuWidth    float32 `yaml:"menu_width"`
	HeaderHeight float32 `yaml:"header_height"`
}

type BackendConfig struct {
	Path string `yaml:"path"`
}

type ChecksConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// WidgetConfig is the initial presentation of one widget
type WidgetConfig struct {
	Text    string `yaml:"text"`
	Icon    string `yaml:"icon"`
	Tooltip string `yaml:"tooltip"`
}

// Load reads a layout file. An empty path loads the embedded default layout.
func Load(path string) (*Config, error) {
	data := defaultLayout
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes a layout description and fills in defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

// Default returns the embedded default layout
func Default() *Config {
	cfg, err := Parse(defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("embedded layout is invalid: %v", err))
	}
	return cfg
}

func (c *Config) setDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Window.MenuWidth <= 0 {
		c.Window.MenuWidth = DefaultMenuWidth
	}
	if c.Window.HeaderHeight <= 0 {
		c.Window.HeaderHeight = DefaultHeaderHeight
	}
	if c.Backend.Path == "" {
		c.Backend.Path = DefaultBackendPath
	}
	if c.Checks.URL == "" {
		c.Checks.URL = DefaultCheckURL
	}
	if c.Checks.Timeout <= 0 {
		c.Checks.Timeout = DefaultCheckTimeout
	}
	if c.Widgets == nil {
		c.Widgets = map[string]WidgetConfig{}
	}
}

// Widget returns the configuration of the named widget, or a zero value
func (c *Config) Widget(name string) WidgetConfig {
	return c.Widgets[name]
}

// Override replaces the backend path and check settings with non-zero values
func (c *Config) Override(backendPath, checkURL string, timeout time.Duration) {
	if backendPath != "" {
		c.Backend.Path = backendPath
	}
	if checkURL != "" {
		c.Checks.URL = checkURL
	}
	if timeout > 0 {
		c.Checks.Timeout = timeout
	}
}
