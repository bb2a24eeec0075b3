package systems

import (
	"github.com/automoto/meowwww/assets"
	"github.com/automoto/meowwww/components"
	cfg "github.com/automoto/meowwww/config"
	"github.com/automoto/meowwww/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
	colorOp  = &colorm.DrawImageOptions{}

	tintUniform []float32
	tintMatrix  colorm.ColorM
)

func init() {
	tint := cfg.Cat.Tint
	tintUniform = []float32{float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255}
	tintMatrix.Translate(float64(tint.R)/255, float64(tint.G)/255, float64(tint.B)/255, 0)
}

// DrawField fills the play field and draws every cat at its position,
// mirrored when flipped and tinted for tinted tiers.
func DrawField(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.FieldColor)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	tags.Cat.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)

		// Cats waiting outside the edges are not drawn
		if o.X+o.W < 0 || o.X > width || o.Y+o.H < 0 || o.Y > height {
			return
		}

		frame := components.Animation.Get(e).Frame()
		if frame == nil || frame.Image == nil {
			return
		}
		cat := components.Cat.Get(e)

		var geoM ebiten.GeoM
		if cat.Flip {
			geoM.Scale(-1, 1)
			geoM.Translate(float64(frame.Width), 0)
		}
		geoM.Translate(o.X, o.Y)

		if !cfg.Cat.Tiers[cat.Tier].Tinted {
			drawOp.GeoM = geoM
			screen.DrawImage(frame.Image, drawOp)
			return
		}

		if assets.TintShader != nil {
			shaderOp.GeoM = geoM
			shaderOp.Images[0] = frame.Image
			shaderOp.Uniforms = map[string]any{"Tint": tintUniform}
			screen.DrawRectShader(frame.Width, frame.Height, assets.TintShader, shaderOp)
			return
		}

		colorOp.GeoM = geoM
		colorm.DrawImage(screen, frame.Image, tintMatrix, colorOp)
	})
}
