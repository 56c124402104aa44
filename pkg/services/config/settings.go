package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "ATLAS"

type ServerSettings struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	UploadMaxBytes  int64         `mapstructure:"upload_max_bytes"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
}

type WatchSettings struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// Settings is the runtime configuration shared by the CLI and the web server.
type Settings struct {
	Server ServerSettings `mapstructure:"server"`
	Log    LogSettings    `mapstructure:"log"`
	Watch  WatchSettings  `mapstructure:"watch"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.upload_max_bytes", 32<<20)
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.debounce", 300*time.Millisecond)
}

// Load reads settings from an optional config file, then applies ATLAS_* environment
// overrides (ATLAS_SERVER_PORT, ATLAS_LOG_LEVEL, ...). An empty path skips the file.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Addr joins host and port for net/http.
func (s ServerSettings) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}
