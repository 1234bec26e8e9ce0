package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// PauseActions are the callbacks behind the pause menu buttons. Nil entries
// leave their button out.
type PauseActions struct {
	OnResume func()
	OnSave   func()
	OnLoad   func()
	OnQuit   func()
}

// PauseUI is the ebitenui overlay shown while the world is paused.
type PauseUI struct {
	UI      *ebitenui.UI
	actions PauseActions

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewPauseUI creates the pause menu.
func NewPauseUI(actions PauseActions) *PauseUI {
	pui := &PauseUI{actions: actions}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PauseUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	pui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	pui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (pui *PauseUI) buildUI() {
	// Translucent backdrop so the frozen world stays visible
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 150})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for _, b := range []struct {
		label  string
		action func()
	}{
		{"Resume", pui.actions.OnResume},
		{"Save", pui.actions.OnSave},
		{"Load", pui.actions.OnLoad},
		{"Quit", pui.actions.OnQuit},
	} {
		if b.action == nil {
			continue
		}
		contentContainer.AddChild(pui.menuButton(b.label, b.action))
	}

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 140, 255},
		}),
	)
	contentContainer.AddChild(pui.statusLabel)

	rootContainer.AddChild(contentContainer)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) menuButton(label string, action func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(140, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			action()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// SetStatus shows a line under the buttons, such as the result of a save.
func (pui *PauseUI) SetStatus(msg string) {
	pui.statusLabel.Label = msg
}

// Update calls the UI's Update method
func (pui *PauseUI) Update() {
	pui.UI.Update()
}

// Draw renders the menu over whatever is already on screen.
func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
