package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

var ErrNoQRCode = errors.New("no QR code found in image")

// Codec renders QR codes as PNG images and reads them back from PNG, JPEG or
// GIF images.
type Codec struct {
	Size  int
	Level qrcode.RecoveryLevel
}

func NewCodec() *Codec {
	return &Codec{Size: DefaultSize, Level: qrcode.Low}
}

func (c *Codec) Encode(data string) ([]byte, error) {
	if data == "" {
		return nil, fmt.Errorf("nothing to encode")
	}
	size := c.Size
	if size == 0 {
		size = DefaultSize
	}
	png, err := qrcode.Encode(data, c.Level, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

func (c *Codec) Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	result, err := zxingqr.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoQRCode, err)
	}
	return result.GetText(), nil
}
