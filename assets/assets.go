package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/lozo/config"
	"github.com/automoto/lozo/dungeon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Level is a loaded dungeon plus its pre-rendered tile layers.
type Level struct {
	Name    string
	Dungeon *dungeon.Dungeon
	Bottom  *ebiten.Image // drawn under the player
	Top     *ebiten.Image // drawn over the player, nil when the map has no Top layer
	Width   int
	Height  int
}

type LevelLoader struct {
	fsys  fs.FS
	dir   string
	scale int
}

// NewLevelLoader reads maps from the embedded levels directory at the
// configured world scale.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: config.World.LevelsDir, scale: config.World.Scale}
}

// Names lists the map names available to LoadLevel, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	return dungeon.MapNames(l.fsys, l.dir)
}

func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	d, levelMap, err := dungeon.Load(l.fsys, l.dir+"/"+name+".tmx", dungeon.LoadOptions{Name: name, Scale: l.scale})
	if err != nil {
		return nil, err
	}

	level := &Level{
		Name:    name,
		Dungeon: d,
		Width:   d.Bounds().W,
		Height:  d.Bounds().H,
	}

	renderer, err := render.NewRendererWithFileSystem(levelMap, l.fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", name, err)
	}

	for i, layer := range levelMap.Layers {
		var target **ebiten.Image
		switch layer.Name {
		case dungeon.LayerBottom:
			target = &level.Bottom
		case dungeon.LayerTop:
			target = &level.Top
		default:
			continue
		}

		renderer.Clear()
		if err := renderer.RenderLayer(i); err != nil {
			return nil, fmt.Errorf("render layer %s of %s: %w", layer.Name, name, err)
		}
		*target = l.scaledImage(renderer, level.Width, level.Height, float32(layer.Opacity))
	}

	return level, nil
}

// scaledImage copies the renderer result into a world-sized image.
func (l *LevelLoader) scaledImage(renderer *render.Renderer, w, h int, opacity float32) *ebiten.Image {
	layerImage := ebiten.NewImageFromImage(renderer.Result)
	defer layerImage.Deallocate()

	img := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(l.scale), float64(l.scale))
	if opacity > 0 {
		op.ColorScale.ScaleAlpha(opacity)
	}
	img.DrawImage(layerImage, op)
	return img
}

type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
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

var imageLoader = NewImageLoader()

// GetImage returns an embedded image by its path under assets/.
func GetImage(path string) *ebiten.Image {
	return imageLoader.MustLoadImage(path)
}
