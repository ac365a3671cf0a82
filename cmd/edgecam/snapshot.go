package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/render"
	"github.com/lixenwraith/edgecam/system"
)

func newSnapshotCmd(a *app) *cobra.Command {
	var outPath, format string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the bounds volume and initial camera placement to an image",
		Long: `Render a top-down gizmo of the bounds volume, team anchors and the camera
position after init placement. Format follows the file extension (webp, tga, png)
unless --format is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Flags(), map[string]string{"match.team": "team"}); err != nil {
				return err
			}

			if format == "" {
				format = render.FormatFromPath(outPath)
			}
			if err := render.CheckFormat(format); err != nil {
				return err
			}

			camCfg := a.cfg.CameraSettings()
			_, request := a.cfg.MatchSettings()

			world := engine.NewWorld()
			if request != core.TeamNone {
				world.SetTeamRequest(request)
			}
			ctrl := camera.New(camCfg, system.NewWorldTeamResolver(world), camera.WithLogger(a.log))
			ctrl.Init()

			img := render.Gizmo(camCfg, ctrl.State())

			f, err := a.fs.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := render.EncodeSnapshot(f, img, format); err != nil {
				f.Close()
				a.fs.Remove(outPath)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			b := img.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d %s, placement %s)\n",
				outPath, b.Dx(), b.Dy(), format, ctrl.Placement().Status())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&outPath, "out", "o", "edgecam.webp", "output image path")
	f.StringVar(&format, "format", "", "webp, tga or png")
	f.String("team", "", "team request used for placement")
	return cmd
}
