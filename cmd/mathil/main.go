// Command mathil renders example mathematical animations and images.
//
// Usage:
//
//	mathil <command> [flags]
//
// Commands:
//
//	rose   animate the rose curve r = cos(tθ)
//	trig   animate sine, cosine and tangent on the unit circle
//	venn   draw a two-set Venn diagram
//	field  plot the vector field z ↦ z³
//
// Every command accepts -config file.toml; flags given on the command line
// take precedence over the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mathil/mathil"
)

var commands = map[string]func(config) error{
	"rose": func(cfg config) error {
		return mathil.Animate(roseFrame(cfg), cfg.Duration, cfg.FPS, cfg.Output, cfg.animateOptions()...)
	},
	"trig": func(cfg config) error {
		video, init := trigVideo(cfg)
		return video.Animate(init, cfg.FPS, cfg.Output, cfg.animateOptions()...)
	},
	"venn": func(cfg config) error {
		return venn(cfg).Write(cfg.Output, cfg.Name, cfg.format())
	},
	"field": func(cfg config) error {
		return field(cfg).Write(cfg.Output, cfg.Name, cfg.format())
	},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: mathil <rose|trig|venn|field> [flags]")
	fmt.Fprintln(w, "run 'mathil <command> -h' for the flags")
}

func run(args []string, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("no command given")
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		usage(stderr)
		return fmt.Errorf("unknown command %q", name)
	}

	cfg, err := parseConfig(name, args[1:])
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	mathil.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	start := time.Now()
	if err := cmd(cfg); err != nil {
		return err
	}
	mathil.Logger().Info("done", "command", name, "output", cfg.Output, "elapsed", time.Since(start))
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "mathil:", err)
		}
		os.Exit(1)
	}
}
