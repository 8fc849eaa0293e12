package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gorbit/internal/app"
	"github.com/philipparndt/gorbit/version"
	"github.com/spf13/cobra"
)

var (
	flagWidth  int32
	flagHeight int32
	flagFOV    float32
	flagFPS    int32
)

var rootCmd = &cobra.Command{
	Use:   "gorbit [scene.json]",
	Short: "Interactive pan-orbit camera demo with a small physics scene",
	Long: `gorbit opens a 3D window with cubes dropping into a walled tray.
The camera orbits, pans and zooms around the scene with the mouse.
An optional scene file overrides the built-in world and is reloaded
automatically when it changes on disk.`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := app.Config{
			Width:  flagWidth,
			Height: flagHeight,
			FOV:    flagFOV,
			FPS:    flagFPS,
		}
		if len(args) == 1 {
			cfg.ScenePath = args[0]
		}
		app.Run(cfg)
	},
}

func init() {
	rootCmd.Flags().Int32Var(&flagWidth, "width", 1400, "window width in pixels")
	rootCmd.Flags().Int32Var(&flagHeight, "height", 900, "window height in pixels")
	rootCmd.Flags().Float32Var(&flagFOV, "fov", 45, "vertical field of view in degrees")
	rootCmd.Flags().Int32Var(&flagFPS, "fps", 60, "target frame rate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
