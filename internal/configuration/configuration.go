// Package configuration reads the settings of the program from Unix-type
// (dotenv) configuration files.
package configuration

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	KeyImport   = "FSTREE_IMPORT"
	KeyScript   = "FSTREE_SCRIPT"
	KeyUI       = "FSTREE_UI"
	KeyLogLevel = "FSTREE_LOG_LEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// GodotenvProvider is an implementation wrapping the Godotenv framework.
type GodotenvProvider struct{}

// Read reads generic Unix-type configuration files into a map (map[key]value).
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}

// Settings is the principal structure holding the program settings.
type Settings struct {
	// ImportFile is the path of the import file to hydrate from.
	ImportFile string

	// ScriptFile is the path of the command script to run.
	ScriptFile string

	// UI describes if the terminal user interface is enabled.
	UI bool

	// LogLevel is the minimum level of emitted logs.
	LogLevel slog.Level
}

// DefaultSettings returns the [Settings] used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		UI:       true,
		LogLevel: slog.LevelInfo,
	}
}

// Handler is the principal implementation of the configuration services.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// ReadSettings reads the configuration files into [Settings], starting from
// [DefaultSettings]. Keys that are missing keep their default value.
func (c *Handler) ReadSettings(filenames ...string) (Settings, error) {
	settings := DefaultSettings()

	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		return settings, fmt.Errorf("(config) failed to read: %w", err)
	}

	settings.ImportFile = c.MapKeyToString(envMap, KeyImport)
	settings.ScriptFile = c.MapKeyToString(envMap, KeyScript)
	settings.UI = c.MapKeyToBool(envMap, KeyUI, settings.UI)

	if level := c.MapKeyToString(envMap, KeyLogLevel); level != "" {
		parsed, err := ParseLogLevel(level)
		if err != nil {
			return settings, fmt.Errorf("(config) %s: %w", KeyLogLevel, err)
		}
		settings.LogLevel = parsed
	}

	return settings, nil
}

// MapKeyToString returns the value of key, or an empty string.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToBool returns the value of key as boolean. Both "yes"/"no" and the
// forms understood by [strconv.ParseBool] are accepted, anything else
// returns def.
func (c *Handler) MapKeyToBool(envMap map[string]string, key string, def bool) bool {
	value := strings.ToLower(strings.TrimSpace(c.MapKeyToString(envMap, key)))

	switch value {
	case "yes":
		return true
	case "no":
		return false
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}

	return boolValue
}

// ParseLogLevel parses a level name such as "debug" or "WARN".
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("(config) invalid log level: %w", err)
	}

	return level, nil
}
