package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/stackworld/assets"
	"github.com/milk9111/stackworld/ecs"
	"github.com/milk9111/stackworld/state"
)

// pause runs on its own empty world state, so the paused game underneath is
// neither updated nor visible until it pops.
type pause struct {
	state.Base
	demo   *demo
	ui     *ebitenui.UI
	window *state.Window
	resume bool
}

func newPause(d *demo) *pause {
	return &pause{demo: d}
}

func (p *pause) Init(ctx *state.Context, w *ecs.World, a *assets.Manager) {
	p.window = ctx.Window
	p.resume = false
	p.ui = newPauseUI(p, p.demo.width, p.demo.height)
}

func (p *pause) Update(ctx *state.Context, ev state.Event, w *ecs.World, a *assets.Manager) state.Trans {
	if ev.Kind == state.EventTick {
		p.ui.Update()
	}
	if p.resume || ev.IsKeyDown(ebiten.KeyP) || ev.IsKeyDown(ebiten.KeyEscape) {
		return state.Pop()
	}
	return state.None()
}

func (p *pause) Draw(screen *ebiten.Image, w *ecs.World, a *assets.Manager) {
	p.ui.Draw(screen)
}

// newPauseUI builds a centered panel with Resume and Quit buttons. Buttons use
// colored nine-slices and the built-in basic font, so no theme assets are
// needed.
func newPauseUI(p *pause, width, height int) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", &face, white),
		widget.TextOpts.WidgetOpts(center),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(button("Resume", func() { p.resume = true }))
	panel.AddChild(button("Quit", func() { p.window.Close() }))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
