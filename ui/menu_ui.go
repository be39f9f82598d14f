package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/coinhop/assets"
	"github.com/automoto/coinhop/components"
	cfg "github.com/automoto/coinhop/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI   *ebitenui.UI
	Menu *components.MenuData

	// Callbacks
	OnStart   func()
	OnChanged func()
	OnSound   func(cfg.SoundID)

	variantButton *widget.Button
	volumeButton  *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu. The play button is drawn from the
// registry's play button images.
func NewMenuUI(registry *assets.Registry, menu *components.MenuData, onStart, onChanged func(), onSound func(cfg.SoundID)) *MenuUI {
	mui := &MenuUI{
		Menu:      menu,
		OnStart:   onStart,
		OnChanged: onChanged,
		OnSound:   onSound,
	}

	mui.loadFonts()
	mui.buildUI(registry)

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (mui *MenuUI) buildUI(registry *assets.Registry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	contentContainer.AddChild(mui.buildPlayButton(registry))

	mui.variantButton = mui.textButton(mui.variantLabel(), mui.CycleVariant)
	contentContainer.AddChild(mui.variantButton)

	mui.volumeButton = mui.textButton(mui.volumeLabel(), func() {
		mui.Menu.SFXVolume = nextVolume(mui.Menu.SFXVolume)
		mui.refresh()
	})
	contentContainer.AddChild(mui.volumeButton)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Hint, &mui.smallFace, &widget.LabelColor{
			Idle: cfg.Menu.TextColor,
		}),
	))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buildPlayButton(registry *assets.Registry) *widget.Button {
	idle := registry.MustImage("sprBtnPlay")
	w, h := idle.Bounds().Dx(), idle.Bounds().Dy()

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(w, h),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    fixedSlice(idle),
			Hover:   fixedSlice(registry.MustImage("sprBtnPlayHover")),
			Pressed: fixedSlice(registry.MustImage("sprBtnPlayDown")),
		}),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			mui.sound(cfg.SoundButtonOver)
		}),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			mui.sound(cfg.SoundButtonDown)
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.OnStart()
		}),
	)
}

func (mui *MenuUI) textButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(192, 36),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.Menu.TextColor,
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.CursorEnteredHandler(func(args *widget.ButtonHoverEventArgs) {
			mui.sound(cfg.SoundButtonOver)
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.sound(cfg.SoundButtonDown)
			onClick()
		}),
	)
}

// fixedSlice draws img at its own size without stretching.
func fixedSlice(img *ebiten.Image) *image.NineSlice {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	return image.NewNineSlice(img, [3]int{0, w, 0}, [3]int{0, h, 0})
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{60, 110, 160, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{80, 130, 180, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{40, 90, 140, 255}),
	}
}

func (mui *MenuUI) sound(id cfg.SoundID) {
	if mui.OnSound != nil {
		mui.OnSound(id)
	}
}

func (mui *MenuUI) variantLabel() string {
	return fmt.Sprintf("Level: %s", cfg.Features(mui.Menu.Variant).Label)
}

func (mui *MenuUI) volumeLabel() string {
	return fmt.Sprintf("Sound: %d%%", int(mui.Menu.SFXVolume*100+0.5))
}

// nextVolume steps through the configured volume levels, wrapping to the
// first.
func nextVolume(v float64) float64 {
	steps := cfg.Settings.VolumeSteps
	for _, s := range steps {
		if s > v+1e-9 {
			return s
		}
	}
	return steps[0]
}

// CycleVariant selects the next level variant, as the variant button does.
func (mui *MenuUI) CycleVariant() {
	mui.Menu.Variant = mui.Menu.Variant.Next()
	mui.refresh()
}

// refresh updates the button labels from the menu state
func (mui *MenuUI) refresh() {
	mui.variantButton.Text().Label = mui.variantLabel()
	mui.volumeButton.Text().Label = mui.volumeLabel()
	if mui.OnChanged != nil {
		mui.OnChanged()
	}
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}
