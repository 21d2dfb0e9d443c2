package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts hands out faces for a given pixel size. Without a TrueType font it
// falls back to the fixed 7x13 bitmap face and ignores the size.
type Fonts struct {
	ttf  *truetype.Font
	name string
}

// LoadFonts loads the TrueType font at path. An empty path selects the
// embedded Go Regular font. A path that cannot be read or parsed yields the
// bitmap fallback.
func LoadFonts(path string) *Fonts {
	if path == "" {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️ embedded font unusable, using bitmap font")
			return &Fonts{name: "basicfont 7x13"}
		}
		return &Fonts{ttf: f, name: "Go Regular"}
	}

	f, err := parseFontFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("⚠️ font not available, using bitmap font")
		return &Fonts{name: "basicfont 7x13"}
	}
	return &Fonts{ttf: f, name: path}
}

func parseFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return f, nil
}

// Face returns a face of the given size in pixels.
func (f *Fonts) Face(size float64) font.Face {
	if f == nil || f.ttf == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f.ttf, &truetype.Options{Size: size})
}

// Scalable reports whether Face honours the requested size.
func (f *Fonts) Scalable() bool {
	return f != nil && f.ttf != nil
}

func (f *Fonts) Name() string {
	if f == nil {
		return "basicfont 7x13"
	}
	return f.name
}
