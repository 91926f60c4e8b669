package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRenderCmd(s *settings) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single frame to the PNG output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := parseClock(at)
				if err != nil {
					return err
				}
				now = t
			}
			return render(s, now)
		},
	}
	cmd.Flags().StringVar(&at, "time", "", "time to show as HH:MM:SS (default now)")
	return cmd
}

func render(s *settings, now time.Time) error {
	mode, err := s.cfg.Mode()
	if err != nil {
		return err
	}
	d := newPNGDisplay(s.cfg.Bounds(), mode, s.cfg.Output)
	f, err := s.newFace(d.fb.Bounds(), func() time.Time { return now })
	if err != nil {
		return err
	}
	defer f.Close()
	r := f.Window().Render(d.fb)
	if err := d.Dirty(r); err != nil {
		return err
	}
	s.logger.Info("rendered", "time", now.Format(time.TimeOnly), "output", s.cfg.Output)
	return nil
}
