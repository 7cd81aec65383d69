package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Size      int           `yaml:"size"`
	Compress  bool          `yaml:"compress"`
	SearchTTL time.Duration `yaml:"searchTtl"`
	LogoTTL   time.Duration `yaml:"logoTtl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// UpstreamConfig points at the two discount search APIs and bounds every outgoing call.
type UpstreamConfig struct {
	Timeout             time.Duration `yaml:"timeout" validate:"required|min:1"`
	StudentkortetSearch string        `yaml:"studentkortetSearch" validate:"required|fullUrl"`
	StudentkortetSite   string        `yaml:"studentkortetSite" validate:"required|fullUrl"`
	MecenatSearch       string        `yaml:"mecenatSearch" validate:"required|fullUrl"`
	MecenatSite         string        `yaml:"mecenatSite" validate:"required|fullUrl"`
	MecenatPageSize     int           `yaml:"mecenatPageSize" validate:"required|min:1"`
	MaxImageBytes       int64         `yaml:"maxImageBytes" validate:"required|min:1"`
	MaxIdleConnsPerHost int           `yaml:"maxIdleConnsPerHost"`
}

type LogoConfig struct {
	AllowedHosts []string `yaml:"allowedHosts" validate:"required"`
	MaxPixels    int      `yaml:"maxPixels" validate:"required|min:1"`
}

type Config struct {
	AppName   string
	Version   string
	Debug     bool
	Path      string
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
	Upstream  UpstreamConfig `yaml:"upstream"`
	Logo      LogoConfig     `yaml:"logo"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}
