package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledanim/stream"
	"github.com/matt-g-everett/ledanim/timeline"
)

// PreviewOptions holds flags for the preview command.
type PreviewOptions struct {
	*RootOptions
	Seconds uint32
	Start   uint32
	Scene   int
}

// NewPreviewCommand creates the preview command.
func NewPreviewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PreviewOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print rendered frames without streaming them",
		Long: `Render frames offline and print one line per frame: the time followed
by every pixel as #rrggbb.

Example:
  ledanim preview --seconds 2
  ledanim preview --config config.yaml --scene 1 --start 30`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Uint32Var(&opts.Seconds, "seconds", 1, "number of seconds to render")
	cmd.Flags().Uint32Var(&opts.Start, "start", 0, "second to start rendering from")
	cmd.Flags().IntVar(&opts.Scene, "scene", -1, "render a single demo scene instead of the controller")

	return cmd
}

func runPreview(opts *PreviewOptions, w io.Writer) error {
	config, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	scenes := stream.DemoScenes(config)
	var source stream.FrameSource
	switch {
	case opts.Scene < 0:
		source = stream.NewController(scenes, config.Animation.CycleSeconds, config.Animation.TransitionSeconds)
	case opts.Scene < len(scenes):
		source = scenes[opts.Scene]
	default:
		return fmt.Errorf("scene %d out of range, there are %d", opts.Scene, len(scenes))
	}

	fps := config.Animation.FPS
	start := timeline.FromFrames(uint64(opts.Start)*uint64(fps), fps)
	end := timeline.FromFrames(uint64(opts.Start+opts.Seconds)*uint64(fps), fps)
	return stream.Render(source, start, end, fps, func(at timeline.TimeStamp, f *stream.Frame) error {
		_, err := fmt.Fprintf(w, "%s %s\n", at, strings.Join(f.Hex(), " "))
		return err
	})
}
