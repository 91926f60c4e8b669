package main

import (
	"context"
	"errors"

	"analogface.dev/app"
	"analogface.dev/tick"
	"github.com/spf13/cobra"
)

func newRunCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the watchface on the configured display until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFace(cmd.Context(), s)
		},
	}
}

func runFace(ctx context.Context, s *settings) (err error) {
	d, closeDisplay, err := openDisplay(s.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeDisplay(); err == nil {
			err = cerr
		}
	}()
	bounds := d.Framebuffer().Bounds()
	f, err := s.newFace(bounds, nil)
	if err != nil {
		return err
	}
	defer f.Close()

	ticks := tick.NewService(tick.SystemClock)
	ticks.Subscribe(tick.Second, f.Tick)
	s.logger.Info("running", "display", s.cfg.Display, "mode", f.Mode(), "size", bounds.Size())
	err = app.Run(ctx, f.Window(), d, ticks, app.Options{Logger: s.logger})
	if errors.Is(err, context.Canceled) {
		s.logger.Info("stopped")
		return nil
	}
	return err
}
