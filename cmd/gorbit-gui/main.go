package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gorbit/internal/scene"
	"github.com/philipparndt/gorbit/pkg/viewer"
)

type App struct {
	window   fyne.Window
	scene    scene.Scene
	renderer *viewer.SceneRenderer
	readout  *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("gorbit - Scene Preview")

	appInstance := &App{
		window: w,
		scene:  scene.Default(),
	}

	// An optional scene file overrides the built-in world
	if len(os.Args) > 1 {
		loaded, err := scene.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		appInstance.scene = loaded
	}

	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.renderer = viewer.NewSceneRenderer(a.scene)
	a.readout = widget.NewLabel("")
	a.updateReadout()

	openButton := widget.NewButton("Open Scene File", func() {
		a.showFileDialog()
	})

	resetButton := widget.NewButton("Reset View", func() {
		a.renderer.ResetView()
		a.updateReadout()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag to orbit the camera\n" +
			"• Scroll to zoom in/out\n" +
			"• The camera glides to a stop after a gesture",
	)
	instructions.Wrapping = fyne.TextWrapWord

	sceneInfo := widget.NewLabel(fmt.Sprintf(
		"Bodies: %d\nStatic boxes: %d\nGravity: %.2f",
		len(a.scene.Bodies), len(a.scene.Statics), a.scene.Gravity.Y,
	))

	infoPanel := container.NewVBox(
		widget.NewLabel("Scene:"),
		widget.NewSeparator(),
		sceneInfo,
		widget.NewSeparator(),
		widget.NewLabel("Camera:"),
		a.readout,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		resetButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)
	a.renderer.Render(800, 600)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		loaded, err := scene.Load(reader.URI().Path())
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to load scene: %w", err), a.window)
			return
		}
		a.scene = loaded
		a.setupMainUI()
	}, a.window)
}

func (a *App) updateReadout() {
	focus := a.renderer.Camera().Controller.Focus
	radius := a.renderer.Camera().Controller.Radius
	a.readout.SetText(fmt.Sprintf(
		"Focus: (%.2f, %.2f, %.2f)\nRadius: %.2f",
		focus.X(), focus.Y(), focus.Z(), radius,
	))
}
