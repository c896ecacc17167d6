package output

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image encoding
type Format string

// Supported output formats
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// TimestampLayout names output files after the moment the render was saved
const TimestampLayout = "2006-01-02_15-04-05"

// Formats lists the supported formats in display order
func Formats() []Format {
	return []Format{PNG, JPEG, BMP, TIFF}
}

// ParseFormat converts a user supplied name (case-insensitive, "jpg" and "tif" accepted) to a Format
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimPrefix(name, "."))
	switch normalized {
	case "jpg":
		normalized = string(JPEG)
	case "tif":
		normalized = string(TIFF)
	}

	for _, format := range Formats() {
		if string(format) == normalized {
			return format, nil
		}
	}
	return "", fmt.Errorf("%q (supported: %v): %w", name, Formats(), ErrUnsupportedFormat)
}

// Extension returns the file extension for the format without the leading dot
func (f Format) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return string(f)
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(w, img)
	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

// PrepareDir creates the output directory if needed. It is called before rendering so
// an unusable directory is reported without wasting a render.
func PrepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// Filename returns the timestamped file name for a render saved at t
func Filename(t time.Time, format Format) string {
	return t.Format(TimestampLayout) + "." + format.Extension()
}

// Save encodes img into dir under a timestamped name and returns the written path
func Save(dir string, img image.Image, format Format, t time.Time) (string, error) {
	if err := PrepareDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename(t, format))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
