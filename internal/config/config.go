package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "btbctl", "config.yml")
}

// TokenPath returns the fixed location of the bearer-token file. Written
// by `btbctl login`; absence means "not authenticated", never an error.
func TokenPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "btbctl", "token")
}

// Load reads the config from disk (or env). A missing config file is
// fine — every setting has a default.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("api.base_url", "https://beyond-the-bookshelf.onrender.com")
	v.SetDefault("api.token_env", "BTB_TOKEN")
	v.SetDefault("site.base_url", "")
	v.SetDefault("site.detail_path", "View-book.html")
	v.SetDefault("storage.base_url", "https://swfkspdirzdqotywgvop.supabase.co/storage/v1/object/public/")
	v.SetDefault("storage.cover_prefix", "cover/")
	v.SetDefault("storage.placeholder", "cover/placeholder.jpg")
	v.SetDefault("progress.input_mode", "percent")
	v.SetDefault("defaults.cache_dir", defaultCacheDir())

	v.SetEnvPrefix("BTBCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := os.Getenv("BTBCTL_CONFIG")
	if configPath == "" {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Resolve token: env first, then the token file. Never stored in the
	// config file itself.
	tokenEnv := cfg.API.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "BTB_TOKEN"
	}
	cfg.API.Token = os.Getenv(tokenEnv)
	if cfg.API.Token == "" {
		if data, err := os.ReadFile(TokenPath()); err == nil {
			cfg.API.Token = strings.TrimSpace(string(data))
		}
	}

	if cfg.Progress.InputMode != "pages" {
		cfg.Progress.InputMode = "percent"
	}

	cfg.Defaults.CacheDir = ExpandHome(cfg.Defaults.CacheDir)

	return &cfg, nil
}

// Save writes the config to the default path.
func Save(cfg *Config) error {
	path := DefaultPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// SaveToken writes the bearer token to the fixed token file with owner-only
// permissions. An empty token removes the file.
func SaveToken(token string) error {
	path := TokenPath()
	if token == "" {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token+"\n"), 0600)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultCacheDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "btbctl")
}
