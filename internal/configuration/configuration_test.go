package configuration

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConfigProvider struct {
	mock.Mock
}

func (m *mockConfigProvider) Read(filenames ...string) (map[string]string, error) {
	args := m.Called(filenames)
	envMap, _ := args.Get(0).(map[string]string)

	return envMap, args.Error(1)
}

// TestReadSettings_Success tests reading all known keys.
func TestReadSettings_Success(t *testing.T) {
	t.Parallel()

	provider := new(mockConfigProvider)
	provider.On("Read", []string{"/etc/fstree.env"}).Return(map[string]string{
		KeyImport:   "/data/input.txt",
		KeyScript:   "/data/script.txt",
		KeyUI:       "no",
		KeyLogLevel: "debug",
	}, nil)

	settings, err := NewHandler(provider).ReadSettings("/etc/fstree.env")

	require.NoError(t, err)
	assert.Equal(t, Settings{
		ImportFile: "/data/input.txt",
		ScriptFile: "/data/script.txt",
		UI:         false,
		LogLevel:   slog.LevelDebug,
	}, settings)

	provider.AssertExpectations(t)
}

// TestReadSettings_Defaults tests that missing keys keep their defaults.
func TestReadSettings_Defaults(t *testing.T) {
	t.Parallel()

	provider := new(mockConfigProvider)
	provider.On("Read", mock.Anything).Return(map[string]string{}, nil)

	settings, err := NewHandler(provider).ReadSettings("empty.env")

	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)

	provider.AssertExpectations(t)
}

// TestReadSettings_Fail tests read and parse failures.
func TestReadSettings_Fail(t *testing.T) {
	t.Parallel()

	t.Run("Fail_ReadError", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("boom")
		provider := new(mockConfigProvider)
		provider.On("Read", mock.Anything).Return(nil, readErr)

		_, err := NewHandler(provider).ReadSettings("x.env")
		require.ErrorIs(t, err, readErr)
	})

	t.Run("Fail_LogLevel", func(t *testing.T) {
		t.Parallel()

		provider := new(mockConfigProvider)
		provider.On("Read", mock.Anything).Return(map[string]string{KeyLogLevel: "loud"}, nil)

		_, err := NewHandler(provider).ReadSettings("x.env")
		require.Error(t, err)
		assert.Contains(t, err.Error(), KeyLogLevel)
	})
}

// TestMapKeyToBool_Table tests boolean conversions.
func TestMapKeyToBool_Table(t *testing.T) {
	t.Parallel()

	h := NewHandler(nil)
	envMap := map[string]string{
		"yes":   "yes",
		"no":    " NO ",
		"true":  "true",
		"zero":  "0",
		"junk":  "maybe",
		"empty": "",
	}

	assert.True(t, h.MapKeyToBool(envMap, "yes", false))
	assert.False(t, h.MapKeyToBool(envMap, "no", true))
	assert.True(t, h.MapKeyToBool(envMap, "true", false))
	assert.False(t, h.MapKeyToBool(envMap, "zero", true))
	assert.True(t, h.MapKeyToBool(envMap, "junk", true))
	assert.False(t, h.MapKeyToBool(envMap, "empty", false))
	assert.True(t, h.MapKeyToBool(envMap, "missing", true))
}

// TestGodotenvProvider_Read tests reading a real configuration file.
func TestGodotenvProvider_Read(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fstree.env")
	content := "# settings\nFSTREE_IMPORT=\"/data/input.txt\"\nFSTREE_UI=yes\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	settings, err := NewHandler(&GodotenvProvider{}).ReadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/input.txt", settings.ImportFile)
	assert.True(t, settings.UI)
	assert.Equal(t, slog.LevelInfo, settings.LogLevel)

	_, err = (&GodotenvProvider{}).Read(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

// TestParseLogLevel_Table tests log level names.
func TestParseLogLevel_Table(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		level, err := ParseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	_, err := ParseLogLevel("verbose")
	require.Error(t, err)
}
