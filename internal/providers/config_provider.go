package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"alumnirabatt/internal/structures"

	"github.com/spf13/viper"
)

const (
	AppName    = "Alumnirabatt"
	AppVersion = "1.0.0"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.searchTtl", "60s")
	v.SetDefault("cache.logoTtl", "24h")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("upstream.studentkortetSearch", "https://api.studentkortet.se/search/")
	v.SetDefault("upstream.studentkortetSite", "https://www.studentkortet.se/")
	v.SetDefault("upstream.mecenatSearch", "https://www.mecenatalumni.com/v2/se/f/search")
	v.SetDefault("upstream.mecenatSite", "https://www.mecenatalumni.com")
	v.SetDefault("upstream.mecenatPageSize", 10)
	v.SetDefault("upstream.maxImageBytes", 5<<20)
	v.SetDefault("upstream.maxIdleConnsPerHost", 32)
	v.SetDefault("logo.allowedHosts", []string{"img.meccdn.com", "www.studentkortet.se"})
	v.SetDefault("logo.maxPixels", 4096*4096)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config
	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "ALUMNI_LOG_LEVEL")
	_ = v.BindEnv("logger.dir", "ALUMNI_LOG_DIR")
	_ = v.BindEnv("webServer.port", "ALUMNI_PORT")
	_ = v.BindEnv("cache.enabled", "ALUMNI_CACHE_ENABLED")
	_ = v.BindEnv("cache.size", "ALUMNI_CACHE_SIZE")
	_ = v.BindEnv("metrics.enabled", "ALUMNI_METRICS_ENABLED")
	_ = v.BindEnv("upstream.timeout", "ALUMNI_UPSTREAM_TIMEOUT")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Version = AppVersion
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
