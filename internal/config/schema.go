package config

// Config is the top-level btbctl configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Site     SiteConfig     `mapstructure:"site"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Progress ProgressConfig `mapstructure:"progress"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Shelves  []ShelfConfig  `mapstructure:"shelves"`
}

// APIConfig holds remote API connection settings.
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	TokenEnv string `mapstructure:"token_env"`
	Token    string `mapstructure:"-"` // resolved at runtime, never written
}

// SiteConfig points at the public web front end, used to build detail
// links opened in the browser.
type SiteConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	DetailPath string `mapstructure:"detail_path"`
}

// StorageConfig describes the public cover-asset storage.
type StorageConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	CoverPrefix string `mapstructure:"cover_prefix"`
	Placeholder string `mapstructure:"placeholder"`
}

// ProgressConfig selects how reading progress is entered.
type ProgressConfig struct {
	// InputMode is "percent" or "pages".
	InputMode string `mapstructure:"input_mode"`
}

// DefaultsConfig holds local paths and misc defaults.
type DefaultsConfig struct {
	CacheDir string `mapstructure:"cache_dir"`
}

// ShelfConfig pins a user shelf for quick access from the hub.
type ShelfConfig struct {
	ID   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
}

// ShelfByName returns the pinned shelf with the given name, or nil.
func (c *Config) ShelfByName(name string) *ShelfConfig {
	for i := range c.Shelves {
		if c.Shelves[i].Name == name {
			return &c.Shelves[i]
		}
	}
	return nil
}

// DetailURLBase joins the site base and detail page path. Without a
// configured site base there is no absolute URL to open, so it returns
// empty and callers disable browser links.
func (c *Config) DetailURLBase() string {
	base := c.Site.BaseURL
	if base == "" {
		return ""
	}
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/" + c.Site.DetailPath
}
