package frameviz

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"
)

// WriteImage encodes img to path, picking the format from the file
// extension: .webp, .png or .tga.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "frameviz: create output")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		err = nativewebp.Encode(f, img, nil)
	case ".png":
		err = png.Encode(f, img)
	case ".tga":
		err = tga.Encode(f, img)
	default:
		err = errors.Errorf("frameviz: unsupported output format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return errors.Wrapf(err, "frameviz: encode %s", path)
	}
	return f.Close()
}
