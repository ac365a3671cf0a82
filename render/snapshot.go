package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Snapshot formats
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatPNG  = "png"
)

// FormatFromPath picks the encoder by file extension, defaulting to webp
func FormatFromPath(path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case FormatTGA:
		return FormatTGA
	case FormatPNG:
		return FormatPNG
	default:
		return FormatWebP
	}
}

// CheckFormat reports whether EncodeSnapshot supports format
func CheckFormat(format string) error {
	switch format {
	case FormatWebP, FormatTGA, FormatPNG:
		return nil
	}
	return fmt.Errorf("unsupported snapshot format %q", format)
}

// EncodeSnapshot writes img in the requested format
func EncodeSnapshot(w io.Writer, img image.Image, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	var err error
	switch format {
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatPNG:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", format, err)
	}
	return nil
}
