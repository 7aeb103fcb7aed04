// Font lookup for the instructional text: probe an ordered list of system
// font files and fall back to the built-in bitmap face.
package fonts

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// SystemFontPaths are the macOS fonts tried in order of preference.
var SystemFontPaths = []string{
	"/System/Library/Fonts/SFNS.ttf",
	"/System/Library/Fonts/SFNSDisplay.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/HelveticaNeue.ttc",
	"/Library/Fonts/Arial.ttf",
}

// Source is where font files are read from.
type Source interface {
	Exists(path string) bool
	Get(path string) (io.ReadCloser, error)
}

// Resolved is the face picked for a size. Default is set when no font file
// could be used and Face is the built-in bitmap font.
type Resolved struct {
	Face    font.Face
	Path    string
	Default bool
}

// Resolve returns a face for the first path that exists and parses at the
// given point size. Any failure moves on to the next path; it never errors.
func Resolve(src Source, paths []string, size float64, log logrus.FieldLogger) Resolved {
	for _, path := range paths {
		if !src.Exists(path) {
			continue
		}

		face, err := load(src, path, size)
		if err != nil {
			if log != nil {
				log.WithError(err).WithField("path", path).Debug("Skipping font")
			}
			continue
		}
		return Resolved{Face: face, Path: path}
	}

	return Resolved{Face: basicfont.Face7x13, Default: true}
}

func load(src Source, path string, size float64) (font.Face, error) {
	reader, err := src.Get(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var f *opentype.Font
	if strings.HasSuffix(strings.ToLower(path), ".ttc") {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if collection.NumFonts() == 0 {
			return nil, fmt.Errorf("empty font collection")
		}
		if f, err = collection.Font(0); err != nil {
			return nil, err
		}
	} else {
		if f, err = opentype.Parse(data); err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
