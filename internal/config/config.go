package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashleyjackson/provbuild/internal/branding"
	"github.com/ashleyjackson/provbuild/internal/registry"
	"github.com/ashleyjackson/provbuild/internal/toolchain"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const fileType = "yaml"

// Keys understood by the project file, environment and flags.
const (
	KeyRoot      = "registry.root"
	KeyHost      = "registry.host"
	KeyNamespace = "registry.namespace"
	KeyName      = "registry.name"
	KeyVersion   = "registry.version"
	KeyPackage   = "build.package"
	KeyStrip     = "build.strip"
	KeyGo        = "toolchain.go"
)

// Keys lists every known key in display order.
func Keys() []string {
	return []string{KeyRoot, KeyHost, KeyNamespace, KeyName, KeyVersion, KeyPackage, KeyStrip, KeyGo}
}

// Settings is the resolved, read-only build configuration.
type Settings struct {
	Layout   registry.Layout
	Package  string
	Strip    bool
	GoBinary string
}

// Config wraps a Viper instance bound to one project file.
type Config struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns the project file path in the working directory.
func DefaultPath() string {
	return branding.ConfigFile()
}

// New creates a Config reading from path (DefaultPath when empty) and the
// environment. Call Load before reading values.
func New(path string) *Config {
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := registry.DefaultLayout()
	v.SetDefault(KeyRoot, d.Root)
	v.SetDefault(KeyHost, d.Host)
	v.SetDefault(KeyNamespace, d.Namespace)
	v.SetDefault(KeyName, d.Name)
	v.SetDefault(KeyVersion, d.Version)
	v.SetDefault(KeyPackage, ".")
	v.SetDefault(KeyStrip, false)
	v.SetDefault(KeyGo, toolchain.DefaultBinary)

	return &Config{v: v, path: path}
}

// Path returns the project file path.
func (c *Config) Path() string { return c.path }

// Viper exposes the underlying instance for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

// Load reads the project file. A missing file is not an error.
func (c *Config) Load() error {
	if err := c.v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", c.path, err)
	}
	return nil
}

// Exists reports whether the project file is present.
func (c *Config) Exists() bool {
	_, err := os.Stat(c.path)
	return err == nil
}

// Get returns a config value by key. Returns empty string if not set.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Settings returns the resolved configuration.
func (c *Config) Settings() Settings {
	return Settings{
		Layout: registry.Layout{
			Root:      c.v.GetString(KeyRoot),
			Host:      c.v.GetString(KeyHost),
			Namespace: c.v.GetString(KeyNamespace),
			Name:      c.v.GetString(KeyName),
			Version:   c.v.GetString(KeyVersion),
		},
		Package:  c.v.GetString(KeyPackage),
		Strip:    c.v.GetBool(KeyStrip),
		GoBinary: c.v.GetString(KeyGo),
	}
}

// Set writes a known key to the project file, creating it if needed. Other
// keys already in the file are preserved.
func (c *Config) Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	var typed interface{} = value
	if key == KeyStrip {
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
		typed = b
	}

	doc := map[string]interface{}{}
	data, err := os.ReadFile(c.path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config file %s: %w", c.path, err)
		}
		if doc == nil {
			doc = map[string]interface{}{}
		}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("reading config file %s: %w", c.path, err)
	}

	section, field, _ := strings.Cut(key, ".")
	sub, _ := doc[section].(map[string]interface{})
	if sub == nil {
		sub = map[string]interface{}{}
	}
	sub[field] = typed
	doc[section] = sub

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(c.path, out, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.path, err)
	}

	c.v.Set(key, typed)
	return nil
}

// IsKnownKey reports whether key is one of Keys.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
