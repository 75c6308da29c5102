package scope

import (
	"fmt"
	"os"
	"strings"
)

// ImageFormat is a screenshot image format.
type ImageFormat string

// Screenshot formats. Which ones a given scope accepts depends on its
// family; the DS2000A always returns 24-bit BMP.
const (
	FormatPNG   ImageFormat = "png"
	FormatBMP8  ImageFormat = "bmp8"
	FormatBMP24 ImageFormat = "bmp24"
	FormatJPEG  ImageFormat = "jpeg"
	FormatTIFF  ImageFormat = "tiff"
)

// ParseImageFormat parses a format name as found in flags.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch ImageFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatBMP8:
		return FormatBMP8, nil
	case FormatBMP24:
		return FormatBMP24, nil
	case FormatJPEG:
		return FormatJPEG, nil
	case FormatTIFF:
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Screenshot captures the instrument display and writes the image bytes
// verbatim to path. The format must be one the family provides; it is
// validated before any transport I/O.
func (s *Scope) Screenshot(path string, format ImageFormat) error {
	if !s.vocab.SupportsScreenshotFormat(string(format)) {
		return fmt.Errorf("%w: %q (family %s accepts %s)",
			ErrUnsupportedFormat, format, s.vocab.Family,
			strings.Join(s.vocab.ScreenshotFormats, ", "))
	}

	var cmd string
	var err error
	if s.vocab.ScreenshotTakesFormat() {
		cmd, err = s.vocab.Render("screenshot", string(format))
	} else {
		cmd, err = s.vocab.Render("screenshot")
	}
	if err != nil {
		return err
	}

	img, err := s.askBlock(cmd)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, img, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
