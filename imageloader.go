package chartarea

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"sync"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
	"gonum.org/v1/plot/vg"
)

// An ImageLoader loads marker and background images by path and caches
// the decoded images. It is safe for concurrent use.
type ImageLoader struct {
	// Open opens the named image. Defaults to os.Open.
	Open func(path string) (io.ReadCloser, error)

	mu    sync.Mutex
	cache map[string]image.Image
}

// NewImageLoader returns a loader reading from the file system.
func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]image.Image)}
}

// Load returns the decoded image stored at path.
func (il *ImageLoader) Load(path string) (image.Image, error) {
	il.mu.Lock()
	defer il.mu.Unlock()
	if img, ok := il.cache[path]; ok {
		return img, nil
	}

	open := il.Open
	if open == nil {
		open = func(p string) (io.ReadCloser, error) { return os.Open(p) }
	}
	f, err := open(path)
	if err != nil {
		return nil, ErrImage.WithValue("path", path).WithMessagef("open image %s: %v", path, err)
	}
	defer f.Close()
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, ErrImage.WithValue("path", path).WithMessagef("read image %s: %v", path, err)
	}

	img, err := decodeImage(buf)
	if err != nil {
		return nil, ErrImage.WithValue("path", path).WithMessagef("decode image %s: %v", path, err)
	}
	Logger("images").Debug("image loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	if il.cache == nil {
		il.cache = make(map[string]image.Image)
	}
	il.cache[path] = img
	return img, nil
}

// Add stores img under path, replacing a cached image.
func (il *ImageLoader) Add(path string, img image.Image) {
	il.mu.Lock()
	defer il.mu.Unlock()
	if il.cache == nil {
		il.cache = make(map[string]image.Image)
	}
	il.cache[path] = img
}

// Flush empties the cache.
func (il *ImageLoader) Flush() {
	il.mu.Lock()
	il.cache = make(map[string]image.Image)
	il.mu.Unlock()
}

func decodeImage(buf []byte) (image.Image, error) {
	kind, err := filetype.Match(buf)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(buf)
	switch kind.Extension {
	case "png":
		return png.Decode(r)
	case "jpg":
		return jpeg.Decode(r)
	case "gif":
		return gif.Decode(r)
	case "bmp":
		return bmp.Decode(r)
	case "tif":
		return tiff.Decode(r)
	case "webp":
		return webp.Decode(r)
	}
	if kind == filetype.Unknown {
		return nil, ErrImage.WithMessage("unknown image format")
	}
	return nil, ErrImage.WithMessagef("unsupported image format %s", kind.MIME.Value)
}

// AdjustedImageSize stores in size the absolute size the image at path
// has on g: one image pixel covers 1/DPI inch.
func (il *ImageLoader) AdjustedImageSize(path string, g Graphics, size *vg.Point) error {
	img, err := il.Load(path)
	if err != nil {
		return err
	}
	dpi := g.DPI()
	if dpi <= 0 {
		dpi = 72
	}
	b := img.Bounds()
	size.X = vg.Length(float64(b.Dx()) * float64(vg.Inch) / dpi)
	size.Y = vg.Length(float64(b.Dy()) * float64(vg.Inch) / dpi)
	return nil
}
