package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ds124wfegd/dmg-background/internal/entity"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("text", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

// searchPath is where viper looks for ./config/config.yaml; it resolves
// search paths against the working directory.
func searchPath(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Join(wd, "config", "config.yaml")
}

func load(t *testing.T, fs afero.Fs, args ...string) (entity.Layout, error) {
	t.Helper()
	v, err := LoadConfig(newFlags(t, args...), fs)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)
	return cfg.Layout()
}

func TestDefaults(t *testing.T) {
	layout, err := load(t, afero.NewMemMapFs())

	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), layout)
	assert.Nil(t, layout.Arrow)
}

func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantText   string
		wantOutput string
	}{
		{
			name:       "text only",
			args:       []string{"--text", "Drop to Applications"},
			wantText:   "Drop to Applications",
			wantOutput: DefaultOutputPath,
		},
		{
			name:       "output only",
			args:       []string{"--output", "out/bg.png"},
			wantText:   DefaultText,
			wantOutput: "out/bg.png",
		},
		{
			name:       "both",
			args:       []string{"--text=Install", "--output=custom-background.png"},
			wantText:   "Install",
			wantOutput: "custom-background.png",
		},
		{
			name:       "empty values fall back to defaults",
			args:       []string{"--text", "", "--output="},
			wantText:   DefaultText,
			wantOutput: DefaultOutputPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := load(t, afero.NewMemMapFs(), tt.args...)

			require.NoError(t, err)
			assert.Equal(t, tt.wantText, layout.Text)
			assert.Equal(t, tt.wantOutput, layout.OutputPath)
			assert.Equal(t, DefaultWidth, layout.Width)
		})
	}
}

func TestEmptyFlagKeepsEnv(t *testing.T) {
	t.Setenv("DMGBG_OUTPUT_PATH", "env/bg.png")

	layout, err := load(t, afero.NewMemMapFs(), "--output", "")

	require.NoError(t, err)
	assert.Equal(t, "env/bg.png", layout.OutputPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DMGBG_TEXT_CONTENT", "From env")
	t.Setenv("DMGBG_ARROW_COLOR", "#007aff")
	t.Setenv("DMGBG_TEXT_COLOR", "0,0,0,128")
	t.Setenv("DMGBG_ICONS_HINTS", "true")
	t.Setenv("DMGBG_TEXT_FONT_PATHS", "/a.ttf,/b.ttf")

	layout, err := load(t, afero.NewMemMapFs())
	require.NoError(t, err)

	assert.Equal(t, "From env", layout.Text)
	require.NotNil(t, layout.Arrow)
	assert.Equal(t, entity.Color{R: 0, G: 122, B: 255, A: 255}, *layout.Arrow)
	assert.Equal(t, entity.Color{A: 128}, layout.TextColor)
	assert.True(t, layout.IconHints)
	assert.Equal(t, []string{"/a.ttf", "/b.ttf"}, layout.FontPaths)

	// flags still win over env
	layout, err = load(t, afero.NewMemMapFs(), "--text", "From flag")
	require.NoError(t, err)
	assert.Equal(t, "From flag", layout.Text)
}

func TestConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, searchPath(t), []byte(`
canvas:
  width: 640
  background: "#ffffff00"
icons:
  app: [100, 150]
arrow:
  color: [0, 122, 255, 255]
text:
  content: Drag me
`), 0644))

	layout, err := load(t, fs)
	require.NoError(t, err)

	assert.Equal(t, 640, layout.Width)
	assert.Equal(t, DefaultHeight, layout.Height)
	assert.Equal(t, entity.Color{R: 255, G: 255, B: 255, A: 0}, layout.Background)
	assert.Equal(t, entity.Point{X: 100, Y: 150}, layout.AppIcon)
	assert.Equal(t, DefaultAppsFolder, layout.AppsFolder)
	require.NotNil(t, layout.Arrow)
	assert.Equal(t, entity.Color{R: 0, G: 122, B: 255, A: 255}, *layout.Arrow)
	assert.Equal(t, "Drag me", layout.Text)

	// flags beat the file
	layout, err = load(t, fs, "--text", "Override")
	require.NoError(t, err)
	assert.Equal(t, "Override", layout.Text)
}

func TestExplicitConfigFileMissing(t *testing.T) {
	t.Setenv("DMGBG_CONFIG", "/nowhere/config.yaml")

	_, err := LoadConfig(newFlags(t), afero.NewMemMapFs())

	assert.Error(t, err)
}

func TestMalformedConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, searchPath(t), []byte("canvas: [unclosed"), 0644))

	_, err := LoadConfig(newFlags(t), fs)

	assert.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "zero width",
			env:     map[string]string{"DMGBG_CANVAS_WIDTH": "0"},
			wantErr: entity.ErrInvalidLayout,
		},
		{
			name:    "bad arrow colour",
			env:     map[string]string{"DMGBG_ARROW_COLOR": "#nothex"},
			wantErr: entity.ErrInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load(t, afero.NewMemMapFs())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBadColorFailsDecode(t *testing.T) {
	t.Setenv("DMGBG_TEXT_COLOR", "300,0,0")

	v, err := LoadConfig(newFlags(t), afero.NewMemMapFs())
	require.NoError(t, err)

	_, err = ParseConfig(v)
	assert.Error(t, err)
}

func TestArrowDisabled(t *testing.T) {
	for _, value := range []interface{}{nil, "", "none", "None", false} {
		assert.True(t, arrowDisabled(value), "%v", value)
	}
	for _, value := range []interface{}{"#000000", []interface{}{1, 2, 3, 4}} {
		assert.False(t, arrowDisabled(value), "%v", value)
	}
}
