package screen

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/pcardune/hackvm/pkg/hack"
)

// Scaled magnifies src by an integer factor with nearest-neighbor sampling,
// so every logical pixel becomes a factor×factor block of identical color.
func Scaled(src image.Image, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, fmt.Errorf("scale factor must be positive, got %d", factor)
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst, nil
}

// SaveScreenshot renders the current screen contents at the given scale
// factor and writes it to filename as a PNG.
func (r *Renderer) SaveScreenshot(ram *hack.RAM, factor int, filename string) error {
	img, err := Scaled(r.Frame(ram), factor)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
