package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// GameOverUI is the end-of-run overlay: a dimmed panel with the final score
// and a restart button. Restarting also works from the keyboard; the button
// only raises the same flag the Enter key does.
type GameOverUI struct {
	ui        *ebitenui.UI
	scoreText *widget.Text

	restartRequested bool
}

// NewGameOverUI builds the overlay with colored nine-slices and the built-in
// basic font, so no theme assets are needed.
func NewGameOverUI(g *Game) *GameOverUI {
	o := &GameOverUI{}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}

	title := widget.NewText(
		widget.TextOpts.Text("GAME OVER", &face, color.NRGBA{R: 0xe6, G: 0x29, B: 0x37, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	o.scoreText = widget.NewText(
		widget.TextOpts.Text("YOUR SCORE: 0", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Restart", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			o.restartRequested = true
		}),
	)

	hint := widget.NewText(
		widget.TextOpts.Text("or press ENTER", &face, color.NRGBA{R: 0x00, G: 0xe4, B: 0x30, A: 0xff}),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(g.cfg.Screen.Width/2, g.cfg.Screen.Height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(o.scoreText)
	panel.AddChild(restartBtn)
	panel.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	o.ui = &ebitenui.UI{Container: root}
	return o
}

// SetScore updates the displayed final score.
func (o *GameOverUI) SetScore(score int) {
	o.scoreText.Label = fmt.Sprintf("YOUR SCORE: %d", score)
}

// ConsumeRestart reports and clears a pending button-driven restart.
func (o *GameOverUI) ConsumeRestart() bool {
	requested := o.restartRequested
	o.restartRequested = false
	return requested
}

func (o *GameOverUI) Update() {
	o.ui.Update()
}

func (o *GameOverUI) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}
