package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// line is one horizontally centred label whose top edge sits at Y.
type line struct {
	Text  string
	Y     int
	Color color.RGBA
}

// textScreen is a full-screen colour with a column of centred labels.
type textScreen struct {
	UI     *ebitenui.UI
	labels []*widget.Label
	face   text.Face
}

func newTextScreen(face text.Face, background color.RGBA, lines []line) *textScreen {
	ts := &textScreen{face: face}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	top := 0
	if len(lines) > 0 {
		top = lines[0].Y
	}
	padding := widget.Insets{Top: top}
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	y := top
	for i, l := range lines {
		if gap := l.Y - y; i > 0 && gap > 0 {
			// Spacer so the next label starts at its configured row
			contentContainer.AddChild(widget.NewContainer(
				widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(1, gap)),
			))
			y += gap
		}

		label := widget.NewLabel(
			widget.LabelOpts.Text(l.Text, &ts.face, &widget.LabelColor{Idle: l.Color}),
			widget.LabelOpts.TextOpts(widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionStart)),
			widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			)),
		)
		contentContainer.AddChild(label)
		ts.labels = append(ts.labels, label)
		y += lineHeight(l.Text, face)
	}

	rootContainer.AddChild(contentContainer)

	ts.UI = &ebitenui.UI{Container: rootContainer}
	return ts
}

func lineHeight(s string, face text.Face) int {
	_, h := text.Measure(s, face, 0)
	return int(h)
}

func (ts *textScreen) Update() {
	ts.UI.Update()
}

func (ts *textScreen) Draw(screen *ebiten.Image) {
	ts.UI.Draw(screen)
}
