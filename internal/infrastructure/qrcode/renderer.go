// Package qrcode renders Pix codes as PNG images.
package qrcode

import (
	"encoding/base64"
	"errors"

	goqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize matches the 256px canvas the payment page lays out for.
const DefaultSize = 256

var ErrEmptyContent = errors.New("qr content is empty")

type Renderer struct {
	Size  int
	Level goqrcode.RecoveryLevel
}

func NewRenderer() *Renderer {
	return &Renderer{Size: DefaultSize, Level: goqrcode.Medium}
}

// PNG keeps the library's default quiet zone around the symbol.
func (r *Renderer) PNG(content string) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	q, err := goqrcode.New(content, r.Level)
	if err != nil {
		return nil, err
	}
	return q.PNG(r.size())
}

// DataURI is PNG encoded for an <img src>.
func (r *Renderer) DataURI(content string) (string, error) {
	png, err := r.PNG(content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func (r *Renderer) size() int {
	if r.Size <= 0 {
		return DefaultSize
	}
	return r.Size
}
