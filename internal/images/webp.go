package images

import (
	"bytes"
	"image"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
)

// Las fotos del portfolio se sirven directo al grid del frontend, así
// que se normalizan al subirlas: ancho máximo y webp con pérdida.
const (
	MaxWidth    = 1600
	webpQuality = 80
)

// NormalizeWebP decodifica un JPEG/PNG, lo reduce si hace falta y lo
// reencodea como webp.
func NormalizeWebP(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	img = scaleDown(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= MaxWidth {
		return src
	}

	h := b.Dy() * MaxWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, MaxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}
