package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/meowwww/assets/animations"
	"github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/mask"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	xdraw "golang.org/x/image/draw"
)

// Pack holds everything read from the asset directory at startup.
type Pack struct {
	Sheets map[config.SheetID]*animations.Animation
	Heart  *ebiten.Image
	Icon   image.Image
	Font   []byte
}

// ResolveDir returns the asset directory next to the executable, falling
// back to dir relative to the working directory.
func ResolveDir(dir string) string {
	if exe, err := os.Executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), dir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return dir
}

// MustLoad reads every asset the game needs. Any failure panics.
func MustLoad(fsys fs.FS) *Pack {
	loader := NewImageLoader(fsys)

	pack := &Pack{
		Sheets: make(map[config.SheetID]*animations.Animation, len(config.CatSheets)),
	}
	for id, def := range config.CatSheets {
		pack.Sheets[id] = loader.MustLoadSheet(def)
	}
	pack.Heart = loader.MustLoadImage(config.Assets.Heart)
	pack.Icon = loader.MustDecode(config.Assets.Icon)

	font, err := fs.ReadFile(fsys, config.Assets.Font)
	if err != nil {
		panic(fmt.Sprintf("Failed to read font file %s: %v", config.Assets.Font, err))
	}
	pack.Font = font

	log.Printf("Loaded %d sprite sheets from assets", len(pack.Sheets))
	return pack
}

// ImageLoader decodes and caches images from an asset filesystem.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Decode reads and decodes an image without uploading it to the GPU.
func (l *ImageLoader) Decode(path string) (image.Image, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func (l *ImageLoader) MustDecode(path string) image.Image {
	img, err := l.Decode(path)
	if err != nil {
		panic(err.Error())
	}
	return img
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// MustLoadSheet slices a sprite sheet into scaled frames with masks and wraps
// them in an animation template. Cats take copies of the template.
func (l *ImageLoader) MustLoadSheet(def config.SheetDef) *animations.Animation {
	sheet := l.MustDecode(def.Path)
	cells := SliceSheet(sheet, def.CellWidth, def.CellHeight, def.Scale)
	if len(cells) == 0 {
		panic(fmt.Sprintf("Sprite sheet %s has no %dx%d cells", def.Path, def.CellWidth, def.CellHeight))
	}

	frames := make([]*animations.Frame, len(cells))
	for i, cell := range cells {
		frames[i] = &animations.Frame{
			Image:  ebiten.NewImageFromImage(cell),
			Mask:   mask.FromImage(cell),
			Width:  cell.Bounds().Dx(),
			Height: cell.Bounds().Dy(),
		}
	}
	return animations.NewAnimation(frames, def.FrameDuration, def.Loop)
}

// SliceSheet cuts the first row of src into cellW×cellH cells and scales each
// with nearest-neighbour sampling so pixel art stays crisp.
func SliceSheet(src image.Image, cellW, cellH int, scale float64) []*image.RGBA {
	if cellW <= 0 || cellH <= 0 {
		return nil
	}
	b := src.Bounds()
	count := b.Dx() / cellW
	dstW := int(float64(cellW) * scale)
	dstH := int(float64(cellH) * scale)

	cells := make([]*image.RGBA, 0, count)
	for i := 0; i < count; i++ {
		srcRect := image.Rect(b.Min.X+i*cellW, b.Min.Y, b.Min.X+(i+1)*cellW, b.Min.Y+cellH)
		dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, srcRect, xdraw.Src, nil)
		cells = append(cells, dst)
	}
	return cells
}
