package main

import (
	"io"
	"time"

	"analogface.dev/canvas"
	"analogface.dev/face"
	"github.com/spf13/cobra"
)

func newTraceCmd(s *settings) *cobra.Command {
	var (
		at      string
		useCBOR bool
	)
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the drawing directives of one redraw of the hands",
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
			return trace(cmd.OutOrStdout(), s, now, useCBOR)
		},
	}
	cmd.Flags().StringVar(&at, "time", "", "time to show as HH:MM:SS (default now)")
	cmd.Flags().BoolVar(&useCBOR, "cbor", false, "write the directives CBOR encoded")
	return cmd
}

func trace(w io.Writer, s *settings, now time.Time, useCBOR bool) error {
	bounds := s.cfg.Bounds()
	f, err := s.newFace(bounds, nil)
	if err != nil {
		return err
	}
	defer f.Close()
	rec := new(canvas.Recorder)
	f.DrawHands(rec, bounds, face.TimeOf(now))
	s.logger.Debug("traced", "time", now.Format(time.TimeOnly), "directives", len(rec.Ops))
	if useCBOR {
		return canvas.EncodeTrace(w, rec.Ops)
	}
	return canvas.WriteText(w, rec.Ops)
}
