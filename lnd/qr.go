package lnd

import "encoding/base64"

// QRCodec renders and reads QR codes. The client only hands data through.
type QRCodec interface {
	Encode(data string) ([]byte, error)
	Decode(image []byte) (string, error)
}

// DrawQR renders data as a QR code and returns it as a PNG data URI.
func (c *Client) DrawQR(data string) (string, error) {
	if c.opts.qr == nil {
		return "", ErrQRUnavailable
	}
	png, err := c.opts.qr.Encode(data)
	if err != nil {
		return "", err
	}
	return QRDataURI(png), nil
}

func (c *Client) DecodeQR(image []byte) (string, error) {
	if c.opts.qr == nil {
		return "", ErrQRUnavailable
	}
	return c.opts.qr.Decode(image)
}

func QRDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
