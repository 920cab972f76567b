package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/matt-g-everett/ledanim/stream"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand creates the root command for the ledanim CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ledanim",
		Short: "Procedural LED animation streamer",
		Long:  "Renders timeline driven animations and streams them to an ledrx device over MQTT.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML config file")

	cmd.AddCommand(NewStreamCommand(opts))
	cmd.AddCommand(NewPreviewCommand(opts))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the config file, or returns the defaults when there is
// none.
func loadConfig(path string) (stream.Config, error) {
	if path == "" {
		return stream.DefaultConfig(), nil
	}
	return stream.LoadConfig(path)
}
