package main

import (
	"fmt"
	"image"
	"io"
	"time"

	"analogface.dev/config"
	"analogface.dev/face"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// settings are the global flags and what they resolve to.
type settings struct {
	configPath string
	verbose    bool

	mode    string
	display string
	output  string
	device  string
	width   int
	height  int

	cfg    config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	s := new(settings)
	root := &cobra.Command{
		Use:           "watchface",
		Short:         "Analog watchface with hour, minute and second hands",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.resolve(cmd)
		},
	}
	f := root.PersistentFlags()
	f.StringVarP(&s.configPath, "config", "c", "", "TOML configuration file")
	f.BoolVarP(&s.verbose, "verbose", "v", false, "enable debug logging")
	f.StringVar(&s.mode, "mode", "", "color mode: color or mono")
	f.StringVar(&s.display, "display", "", "display: png, st7789 or fbdev")
	f.StringVarP(&s.output, "output", "o", "", "PNG file of the png display")
	f.StringVar(&s.device, "device", "", "framebuffer device of the fbdev display")
	f.IntVar(&s.width, "width", 0, "display width")
	f.IntVar(&s.height, "height", 0, "display height")

	root.AddCommand(newRunCmd(s))
	root.AddCommand(newRenderCmd(s))
	root.AddCommand(newTraceCmd(s))
	return root
}

func version() string {
	if Version == "" {
		return "devel"
	}
	return Version
}

// resolve loads the configuration and applies the flags that were
// set on top of it.
func (s *settings) resolve(cmd *cobra.Command) error {
	level := log.InfoLevel
	if s.verbose {
		level = log.DebugLevel
	}
	s.logger = newLogger(cmd.ErrOrStderr(), level)

	cfg := config.Default()
	if s.configPath != "" {
		var err error
		cfg, err = config.Load(s.configPath)
		if err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.ColorMode = s.mode
	}
	if flags.Changed("display") {
		cfg.Display = s.display
	}
	if flags.Changed("output") {
		cfg.Output = s.output
	}
	if flags.Changed("device") {
		cfg.Device = s.device
	}
	if flags.Changed("width") {
		cfg.Width = s.width
	}
	if flags.Changed("height") {
		cfg.Height = s.height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.logger.Debug("config", "mode", cfg.ColorMode, "display", cfg.Display, "size", cfg.Bounds().Size())
	return nil
}

// newFace creates the face of the configuration on a display of
// the given bounds.
func (s *settings) newFace(bounds image.Rectangle, now func() time.Time) (*face.Face, error) {
	mode, err := s.cfg.Mode()
	if err != nil {
		return nil, err
	}
	pal, err := s.cfg.FacePalette()
	if err != nil {
		return nil, err
	}
	return face.New(face.Options{
		Mode:    mode,
		Palette: &pal,
		Bounds:  bounds,
		Now:     now,
	})
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "watchface",
	})
}

// parseClock parses a wall clock time in HH:MM:SS notation.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse(time.TimeOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t, nil
}
