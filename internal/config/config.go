// Package config loads rayui settings with Viper from `.rayui.yml`,
// RAYUI_-prefixed environment variables and command-line flags.
//
// Settings cover where the catalog content lives, where export drafts are
// written, how the gallery server listens, and the site metadata rendered
// into page heads and the sitemap.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rayyanquantum/rayui/internal/catalog"
	"github.com/rayyanquantum/rayui/internal/errors"
	"github.com/rayyanquantum/rayui/internal/validation"
	"github.com/spf13/viper"
)

type Config struct {
	Content ContentConfig `mapstructure:"content" yaml:"content"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Site    SiteConfig    `mapstructure:"site" yaml:"site"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
}

type ContentConfig struct {
	Dir     string `mapstructure:"dir" yaml:"dir"`
	Catalog string `mapstructure:"catalog" yaml:"catalog"`
}

type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Framework string `mapstructure:"framework" yaml:"framework"`
}

type ServerConfig struct {
	Host           string   `mapstructure:"host" yaml:"host"`
	Port           int      `mapstructure:"port" yaml:"port"`
	Watch          bool     `mapstructure:"watch" yaml:"watch"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

// SiteConfig is the public metadata of the gallery.
type SiteConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	URL         string `mapstructure:"url" yaml:"url"`
	Description string `mapstructure:"description" yaml:"description"`
	OGImage     string `mapstructure:"og_image" yaml:"og_image"`
	GitHub      string `mapstructure:"github" yaml:"github"`
	Twitter     string `mapstructure:"twitter" yaml:"twitter"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// ComponentsDir is where component sources live, one directory per
// category.
func (c ContentConfig) ComponentsDir() string {
	return filepath.Join(c.Dir, "components")
}

// MarkdownDir is where documentation stubs live.
func (c ContentConfig) MarkdownDir() string {
	return filepath.Join(c.Dir, "markdown")
}

// Addr returns the host:port the gallery server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("content.dir", "content")
	v.SetDefault("export.output_dir", filepath.Join("dist", "exports"))
	v.SetDefault("export.framework", "all")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.watch", false)
	v.SetDefault("site.name", "RayUI")
	v.SetDefault("site.url", "https://rayui.so")
	v.SetDefault("site.description",
		"Free, copy-paste shadcn/ui blocks and components for React, built with Tailwind CSS.")
	v.SetDefault("site.og_image", "https://rayui.so/opengraph-image.png")
	v.SetDefault("site.github", "https://github.com/rayyanquantum/rayui")
	v.SetDefault("site.twitter", "@rayui")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// LoadFrom unmarshals and validates the configuration held by v. Defaults
// are the caller's responsibility; see SetDefaults.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	if cfg.Content.Catalog == "" {
		cfg.Content.Catalog = filepath.Join(cfg.Content.Dir, catalog.DefaultFile)
	}

	// Slices from env vars arrive as a single comma separated string.
	if len(cfg.Server.AllowedOrigins) == 1 && strings.Contains(cfg.Server.AllowedOrigins[0], ",") {
		cfg.Server.AllowedOrigins = splitList(cfg.Server.AllowedOrigins[0])
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{
			fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		}
	}

	cfg.Site.URL = strings.TrimRight(cfg.Site.URL, "/")

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validateConfig(cfg *Config) error {
	paths := map[string]string{
		"content.dir":       cfg.Content.Dir,
		"content.catalog":   cfg.Content.Catalog,
		"export.output_dir": cfg.Export.OutputDir,
	}
	for key, path := range paths {
		if err := validation.ValidatePath(path); err != nil {
			return invalid(key, err)
		}
	}

	switch cfg.Export.Framework {
	case "all", "vue", "html":
	default:
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("export.framework %q is not one of all, vue, html", cfg.Export.Framework)).
			WithSuggestions("all", "vue", "html")
	}

	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("server.port %d is not in valid range 0-65535", cfg.Server.Port))
	}

	if strings.ContainsAny(cfg.Server.Host, ";&|$`()<>\"'\\/ ") {
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("server.host %q contains invalid characters", cfg.Server.Host))
	}

	if err := validation.ValidateURL(cfg.Site.URL); err != nil {
		return invalid("site.url", err)
	}
	if cfg.Site.OGImage != "" {
		if err := validation.ValidateURL(cfg.Site.OGImage); err != nil {
			return invalid("site.og_image", err)
		}
	}

	switch cfg.Log.Format {
	case "text", "json":
	default:
		return errors.NewConfigError(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("log.format %q is not one of text, json", cfg.Log.Format))
	}

	return nil
}

func invalid(key string, err error) *errors.RayError {
	return errors.Wrap(err, errors.ErrorTypeConfig, errors.ErrCodeConfigInvalid,
		fmt.Sprintf("invalid %s", key))
}
