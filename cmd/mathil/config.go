package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mathil/mathil"
)

// config holds the settings shared by every subcommand. Values come from the
// defaults, then an optional TOML file, then explicitly set flags.
type config struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	FPS      int     `toml:"fps"`
	Duration float64 `toml:"duration"`
	Format   string  `toml:"format"`
	Output   string  `toml:"output"`
	Name     string  `toml:"name"`
	Workers  int     `toml:"workers"`
	Verbose  bool    `toml:"verbose"`
}

func defaultConfig(command string) config {
	return config{
		Width:    1280,
		Height:   720,
		FPS:      30,
		Duration: 4,
		Format:   "png",
		Output:   ".",
		Name:     command,
	}
}

// loadConfigFile overlays the values present in a TOML file onto cfg.
func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("config %s:%d:%d: %w", path, row, col, err)
		}
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// parseConfig builds the configuration for command from its arguments.
func parseConfig(command string, args []string) (config, error) {
	cfg := defaultConfig(command)

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML file with default settings")
		width      = fs.Int("width", cfg.Width, "horizontal resolution in pixels")
		height     = fs.Int("height", cfg.Height, "vertical resolution in pixels")
		fps        = fs.Int("fps", cfg.FPS, "frames per second")
		duration   = fs.Float64("duration", cfg.Duration, "animation length in seconds")
		format     = fs.String("format", cfg.Format, "output format: png or bmp")
		output     = fs.String("o", cfg.Output, "output directory")
		name       = fs.String("name", cfg.Name, "file name for still images")
		workers    = fs.Int("workers", cfg.Workers, "frames rendered at once (0 = GOMAXPROCS)")
		verbose    = fs.Bool("v", cfg.Verbose, "log every frame")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *configPath != "" {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FPS = *fps
		case "duration":
			cfg.Duration = *duration
		case "format":
			cfg.Format = *format
		case "o":
			cfg.Output = *output
		case "name":
			cfg.Name = *name
		case "workers":
			cfg.Workers = *workers
		case "v":
			cfg.Verbose = *verbose
		}
	})

	if _, err := mathil.ParseFormat(cfg.Format); err != nil {
		return config{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return config{}, fmt.Errorf("invalid resolution %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return config{}, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}
	return cfg, nil
}

func (c config) format() mathil.Format {
	f, _ := mathil.ParseFormat(c.Format)
	return f
}

func (c config) animateOptions() []mathil.AnimateOption {
	return []mathil.AnimateOption{
		mathil.WithFormat(c.format()),
		mathil.WithWorkers(c.Workers),
	}
}
