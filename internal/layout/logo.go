// =============================================================================
// Trolley Part List Generator - Logo Assets
// =============================================================================
//
// Logo handling for the two image slots on a page: the caller-supplied
// top-right company logo and the fixed bottom-right "Designed By" logo.
// Both are optional; a bad or missing image degrades the page visually but
// never aborts a generation.
//
// =============================================================================

package layout

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Decoders registered for validation of the two accepted formats.
	_ "image/jpeg"
	_ "image/png"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// Caller-supplied logo dimensions are clamped to this range (centimeters).
const (
	MinLogoWidthCM  = 0.5
	MaxLogoWidthCM  = 10.0
	MinLogoHeightCM = 0.5
	MaxLogoHeightCM = 5.0
)

// Default top-right logo box when the caller gives no dimensions.
const (
	defaultTopLogoWidthCM  = 4.0
	defaultTopLogoHeightCM = 1.2
)

// Fixed bottom-right logo box.
const (
	fixedLogoWidthCM  = 4.3
	fixedLogoHeightCM = 1.5
)

// Logo is a decodable PNG or JPEG image plus its render box in
// centimeters.
type Logo struct {
	Bytes    []byte
	Ext      extension.Type
	WidthCM  float64
	HeightCM float64
}

// NewLogo validates raw image bytes and builds a Logo. Zero dimensions
// take the default top-logo box; out-of-range dimensions are clamped, not
// rejected. The error reports undecodable or unsupported image data.
func NewLogo(data []byte, widthCM, heightCM float64) (*Logo, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("undecodable image: %w", err)
	}

	var ext extension.Type
	switch format {
	case "png":
		ext = extension.Png
	case "jpeg":
		ext = extension.Jpg
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}

	if widthCM == 0 {
		widthCM = defaultTopLogoWidthCM
	}
	if heightCM == 0 {
		heightCM = defaultTopLogoHeightCM
	}

	return &Logo{
		Bytes:    data,
		Ext:      ext,
		WidthCM:  clamp(widthCM, MinLogoWidthCM, MaxLogoWidthCM),
		HeightCM: clamp(heightCM, MinLogoHeightCM, MaxLogoHeightCM),
	}, nil
}

// LoadFixedLogo reads and validates the bottom-right logo file. The fixed
// box dimensions are not caller-configurable.
func LoadFixedLogo(path string) (*Logo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read logo file: %w", err)
	}

	logo, err := NewLogo(data, fixedLogoWidthCM, fixedLogoHeightCM)
	if err != nil {
		return nil, err
	}
	logo.WidthCM = fixedLogoWidthCM
	logo.HeightCM = fixedLogoHeightCM
	return logo, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
