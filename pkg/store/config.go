package store

import (
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath     = "~/.album.db"
	defaultInterval = 4 * time.Second
)

// Config is the resolved album configuration.
type Config interface {
	BasePath() string
	SlideshowInterval() time.Duration
	Cloudinary() CloudinarySettings
}

// CloudinarySettings are upload credentials supplied through config or env.
// Empty fields fall back to the values saved in the store.
type CloudinarySettings struct {
	CloudName string
	Preset    string
	BaseURL   string
}

// LoadConfig reads .album.yaml (from ALBUM_CONFIG_PATH, the working directory
// or $HOME) and ALBUM_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("slideshow.interval", defaultInterval)
	v.SetConfigName(".album") // .yaml is implicit
	v.SetEnvPrefix("ALBUM")
	v.AutomaticEnv()
	_ = v.BindEnv("slideshow.interval", "ALBUM_SLIDESHOW_INTERVAL")
	_ = v.BindEnv("cloudinary.cloud_name", "ALBUM_CLOUDINARY_CLOUD_NAME")
	_ = v.BindEnv("cloudinary.preset", "ALBUM_CLOUDINARY_PRESET")
	_ = v.BindEnv("cloudinary.base_url", "ALBUM_CLOUDINARY_BASE_URL")

	if override := os.Getenv("ALBUM_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}
	return configFrom(v)
}

func configFrom(v *viper.Viper) (*fileConfig, error) {
	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	interval := v.GetDuration("slideshow.interval")
	if interval <= 0 {
		interval = defaultInterval
	}
	return &fileConfig{
		Path:     path,
		Interval: interval,
		Cloud: CloudinarySettings{
			CloudName: v.GetString("cloudinary.cloud_name"),
			Preset:    v.GetString("cloudinary.preset"),
			BaseURL:   v.GetString("cloudinary.base_url"),
		},
		File: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path     string             `json:"path"`
	Interval time.Duration      `json:"interval"`
	Cloud    CloudinarySettings `json:"cloudinary"`
	File     string             `json:"-"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) SlideshowInterval() time.Duration {
	return f.Interval
}

func (f *fileConfig) Cloudinary() CloudinarySettings {
	return f.Cloud
}

// ConfigFile is the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path     string
	Interval time.Duration
	Cloud    CloudinarySettings
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) SlideshowInterval() time.Duration {
	if s.Interval <= 0 {
		return defaultInterval
	}
	return s.Interval
}

func (s StaticConfig) Cloudinary() CloudinarySettings { return s.Cloud }
