package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matt-g-everett/ledanim/api"
	"github.com/matt-g-everett/ledanim/stream"
)

// NewStreamCommand creates the stream command.
func NewStreamCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream the demo scenes over MQTT",
		Long: `Connect to the MQTT broker in the config and publish a frame of the
demo scenes at the configured frame rate until interrupted. The last frame is
also served as JSON by the preview API.

Example:
  ledanim stream --config config.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStream(ctx, rootOpts, newLogger(cmd.ErrOrStderr(), rootOpts.Verbose))
		},
	}

	return cmd
}

func runStream(ctx context.Context, opts *RootOptions, logger *slog.Logger) error {
	config, err := loadConfig(opts.Config)
	if err != nil {
		return err
	}

	mqtt.ERROR = slog.NewLogLogger(logger.Handler(), slog.LevelError)
	mqtt.WARN = slog.NewLogLogger(logger.Handler(), slog.LevelWarn)
	if opts.Verbose {
		mqtt.DEBUG = slog.NewLogLogger(logger.Handler(), slog.LevelDebug)
	}

	var calibrator *stream.Calibrator
	client := stream.NewMQTTClient(config, func(client mqtt.Client) {
		logger.Info("connected", "broker", config.Mqtt.URL)
		if err := calibrator.Subscribe(client, config.Mqtt.Topics.CalibrateClient, config.Mqtt.QoS); err != nil {
			logger.Error("calibration unavailable", "err", err)
		}
	})

	controller := stream.NewController(stream.DemoScenes(config),
		config.Animation.CycleSeconds, config.Animation.TransitionSeconds)
	publisher := stream.NewMQTTPublisher(client, config.Mqtt.QoS, time.Second)
	streamer := stream.NewStreamer(config, controller, publisher, logger)
	calibrator = stream.NewCalibrator(streamer, config.Calibration(), logger)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("connecting to %s: %w", config.Mqtt.URL, token.Error())
	}
	defer client.Disconnect(250)

	preview := api.NewApi(config.API.Listen, config.API.Static, streamer, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return streamer.Run(ctx) })
	g.Go(func() error { return preview.Serve(ctx) })
	return g.Wait()
}
