package palette

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// decoders picks the codec by extension. Content sniffing is unusable once
// tga is linked: it registers an empty magic string that matches any file.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".webp": nativewebp.Decode,
	".tga":  tga.Decode,
}

// LoadImage builds a palette from the first row of a PNG, TGA or WebP image,
// one color per pixel. Alpha is ignored.
func LoadImage(path string) (Palette, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("palette: unsupported image %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("palette: decode %s: %w", path, err)
	}

	p := FromImage(img)
	if len(p) == 0 {
		return nil, fmt.Errorf("palette: empty image %s", path)
	}
	return p, nil
}

// FromImage reads the top row of img left to right.
func FromImage(img image.Image) Palette {
	b := img.Bounds()
	if b.Empty() {
		return nil
	}
	p := make(Palette, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		c := color.NRGBAModel.Convert(img.At(x, b.Min.Y)).(color.NRGBA)
		p = append(p, RGB{c.R, c.G, c.B})
	}
	return p
}
