package document

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
)

// Optional images. Every failure here is logged and the header is drawn
// without the asset.

func drawLogo(l *layout, path string, x, y float64) bool {
	if path == "" {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("logo not loaded")
		return false
	}
	if err := placeImage(l, "logo", data, x, y, ""); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("logo not loaded")
		return false
	}
	return true
}

func drawShareQR(l *layout, url string, x, y float64) bool {
	if url == "" {
		return false
	}
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		log.Warn().Err(err).Msg("share qr code not generated")
		return false
	}
	if err := placeImage(l, "share-qr", png, x, y, url); err != nil {
		log.Warn().Err(err).Msg("share qr code not drawn")
		return false
	}
	return true
}

// placeImage draws a PNG or JPEG at x, y. A non-empty link makes the image
// clickable.
func placeImage(l *layout, name string, data []byte, x, y float64, link string) error {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	imageType := map[string]string{"png": "png", "jpeg": "jpg"}[format]
	if imageType == "" {
		return fmt.Errorf("unsupported image format %q", format)
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	l.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if l.pdf.Err() {
		err := l.pdf.Error()
		l.pdf.ClearError()
		return err
	}
	l.pdf.ImageOptions(name, x, y, assetSize, assetSize, false, opts, 0, link)
	return nil
}
