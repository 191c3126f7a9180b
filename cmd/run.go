package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mj1618/dashpanel/internal/host"
	"github.com/mj1618/dashpanel/internal/host/headless"
	"github.com/mj1618/dashpanel/internal/panel"
)

var runCmd = &cobra.Command{
	Use:   "run [layout]",
	Short: "Show a layout in a live window",
	Long: `Assemble a layout and show it in a window until it is closed. Shape
canvases are redrawn on every frame. Without a layout an empty panel with
default settings is shown.

The live window needs a presenter compiled in (go build -tags raylib).

Examples:
  dashpanel run panel.yaml
  dashpanel run panel.json --geometry 1280x720`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addLayoutFlags(runCmd)
	runCmd.Flags().String("geometry", "", "Override the window size as WxH")
	runCmd.Flags().String("rasterizer", "gg", "Shape rasterizer: gg, rasterx")
}

func runRun(cmd *cobra.Command, args []string) error {
	presenter, err := host.NewPresenter()
	if err != nil {
		if errors.Is(err, host.ErrUnsupported) {
			return fmt.Errorf("run: %w (use render for an offscreen image)", err)
		}
		return err
	}

	doc, err := loadLayoutArg(cmd, args)
	if err != nil {
		return err
	}
	raster, err := getRasterizer(cmd)
	if err != nil {
		return err
	}
	opts := panel.Options{}
	if geometry, _ := cmd.Flags().GetString("geometry"); geometry != "" {
		if opts.Width, opts.Height, err = host.ParseSize(geometry); err != nil {
			return err
		}
	}

	tk := headless.New(headless.Options{Rasterizer: raster})
	rep, err := panel.Build(doc, tk, opts)
	if err != nil {
		return err
	}
	r, ok := rep.Surface.(host.Renderer)
	if !ok {
		return fmt.Errorf("window %T cannot be rasterized", rep.Surface)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return presenter.Present(ctx, rep.Surface, r)
}
