package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/translations-manager/txsync/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// KeyTool is the Transifex client binary used when neither the project file
// nor --tool names one.
const KeyTool = "tool"

// Setting describes one user setting.
type Setting struct {
	Key         string
	Description string
}

// Settings lists every key the user config accepts.
var Settings = []Setting{
	{Key: KeyTool, Description: "Transifex client binary used when neither the project nor --tool sets one"},
}

// ErrUnknownKey is returned for a key that is not in Settings.
var ErrUnknownKey = errors.New("unknown config key")

// Dir returns the path to the user config directory (~/.txsync/).
// TXSYNC_HOME overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.txsync/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// User holds the user settings: the config file overlaid with TXSYNC_<KEY>
// environment variables.
type User struct {
	path string
	v    *viper.Viper
}

// LoadUser reads the user config file. A missing file yields empty settings.
func LoadUser() (*User, error) {
	path := FilePath()
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	for _, s := range Settings {
		if err := v.BindEnv(s.Key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", branding.EnvVar(s.Key), err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return &User{path: path, v: v}, nil
}

// Path returns the file the settings are read from and written to.
func (u *User) Path() string { return u.path }

// Tool returns the configured client binary, or "" when unset.
func (u *User) Tool() string { return u.v.GetString(KeyTool) }

// Get returns the value of a known key, or "" when it is unset.
func (u *User) Get(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return u.v.GetString(key), nil
}

// Set stores value under a known key and saves the config file.
func (u *User) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value for %q is empty", key)
	}

	dir := filepath.Dir(u.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	u.v.Set(key, value)
	if err := u.v.WriteConfigAs(u.path); err != nil {
		return fmt.Errorf("writing config file %s: %w", u.path, err)
	}
	return nil
}

func checkKey(key string) error {
	known := make([]string, 0, len(Settings))
	for _, s := range Settings {
		if s.Key == key {
			return nil
		}
		known = append(known, s.Key)
	}
	return fmt.Errorf("%w %q (known keys: %s)", ErrUnknownKey, key, strings.Join(known, ", "))
}
