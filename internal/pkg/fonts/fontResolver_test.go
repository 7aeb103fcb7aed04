package fonts

import (
	"bytes"
	"testing"

	"github.com/ds124wfegd/dmg-background/internal/pkg/storage"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func newSource(t *testing.T, files map[string][]byte) Source {
	t.Helper()
	s := storage.NewFileStorage(afero.NewMemMapFs(), "")
	for path, data := range files {
		require.NoError(t, s.Save(path, bytes.NewReader(data)))
	}
	return s
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string][]byte
		paths       []string
		wantPath    string
		wantDefault bool
	}{
		{
			name:        "no fonts installed",
			files:       nil,
			paths:       SystemFontPaths,
			wantDefault: true,
		},
		{
			name:        "first existing font wins",
			files:       map[string][]byte{"/fonts/b.ttf": goregular.TTF, "/fonts/c.ttf": goregular.TTF},
			paths:       []string{"/fonts/a.ttf", "/fonts/b.ttf", "/fonts/c.ttf"},
			wantPath:    "/fonts/b.ttf",
			wantDefault: false,
		},
		{
			name:        "unparsable font is skipped",
			files:       map[string][]byte{"/fonts/a.ttf": []byte("not a font"), "/fonts/b.ttf": goregular.TTF},
			paths:       []string{"/fonts/a.ttf", "/fonts/b.ttf"},
			wantPath:    "/fonts/b.ttf",
			wantDefault: false,
		},
		{
			name:        "collection path accepts a single font",
			files:       map[string][]byte{"/fonts/a.ttc": goregular.TTF},
			paths:       []string{"/fonts/a.ttc"},
			wantPath:    "/fonts/a.ttc",
			wantDefault: false,
		},
		{
			name:        "broken collection falls back to default",
			files:       map[string][]byte{"/fonts/a.ttc": []byte("ttcf")},
			paths:       []string{"/fonts/a.ttc"},
			wantDefault: true,
		},
		{
			name:        "empty list",
			paths:       nil,
			wantDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := test.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)

			got := Resolve(newSource(t, tt.files), tt.paths, 20, logger)
			defer got.Face.Close()

			require.NotNil(t, got.Face)
			assert.Equal(t, tt.wantDefault, got.Default)
			assert.Equal(t, tt.wantPath, got.Path)
			if tt.wantDefault {
				assert.Equal(t, basicfont.Face7x13, got.Face)
			}
		})
	}
}

func TestResolveSizesFace(t *testing.T) {
	src := newSource(t, map[string][]byte{"/fonts/go.ttf": goregular.TTF})

	small := Resolve(src, []string{"/fonts/go.ttf"}, 10, nil)
	large := Resolve(src, []string{"/fonts/go.ttf"}, 40, nil)
	defer small.Face.Close()
	defer large.Face.Close()

	text := "Drag to install"
	assert.Less(t, font.MeasureString(small.Face, text), font.MeasureString(large.Face, text))
}

func TestResolveLogsSkippedFonts(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	src := newSource(t, map[string][]byte{"/fonts/bad.ttf": []byte("junk")})
	got := Resolve(src, []string{"/fonts/bad.ttf"}, 20, logger)

	assert.True(t, got.Default)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "/fonts/bad.ttf", hook.LastEntry().Data["path"])
}
