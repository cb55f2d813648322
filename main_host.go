//go:build !js

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"canvashost/app"
	"canvashost/backend"
	"canvashost/console"
	"canvashost/hal"
	"canvashost/host"
	"canvashost/internal/buildinfo"

	"github.com/gogpu/gg"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		hostKind string
		mode     string
		logLevel string
		logFile  string
		snapshot string
		version  bool
		sound    bool
		withCon  bool
		fps      int

		headless hal.HeadlessConfig
		term     hal.TerminalConfig
		window   hal.WindowConfig
	)
	flag.StringVar(&hostKind, "host", "window", "Host to run on: window, terminal or headless.")
	flag.StringVar(&mode, "mode", "explicit", "Backend mode: explicit or self.")
	flag.IntVar(&fps, "fps", 0, "Frames drawn per second by the canvas app (0 = default).")
	flag.IntVar(&headless.Hz, "hz", 60, "Refresh rate of the headless and terminal hosts.")
	flag.Uint64Var(&headless.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.IntVar(&headless.Width, "width", 800, "Initial viewport width.")
	flag.IntVar(&headless.Height, "height", 600, "Initial viewport height.")
	flag.BoolVar(&sound, "sound", true, "Play a tone on button taps.")
	flag.BoolVar(&withCon, "console", false, "Draw recent log lines over the bottom of the surface.")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flag.StringVar(&logFile, "log-file", "", "Append log lines to this file instead of stdout.")
	flag.StringVar(&snapshot, "snapshot", "", "Save the last headless frame as PNG.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return nil
	}

	m, err := backend.ParseMode(mode)
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level: %w", err)
	}

	out := os.Stdout
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	} else if hostKind == "terminal" {
		// The terminal is the screen.
		out = nil
	}

	cfg := app.Config{Mode: m, FPS: fps}
	var lines []hal.Logger
	if out != nil {
		lines = append(lines, hal.NewLineLogger(out))
	}
	if withCon {
		cfg.Console = console.New(console.DefaultRows)
		lines = append(lines, cfg.Console)
	}
	logger := hal.MultiLogger(lines...)

	slogger := hal.NewSlog(logger, level)
	host.SetLogger(slogger)
	gg.SetLogger(slogger)

	var audio hal.Audio = hal.NopAudio{}
	if sound && hostKind != "window" {
		audio = hal.NewAudio(logger)
	}

	var sys *app.System
	bootApp := app.BootFunc(cfg)
	boot := func(env hal.Env) (hal.Runtime, error) {
		rt, err := bootApp(env)
		if err == nil {
			sys, _ = rt.(*app.System)
		}
		return rt, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch hostKind {
	case "headless":
		headless.Logger = logger
		headless.Audio = audio
		err = hal.RunHeadless(ctx, boot, headless)
		if snapshot != "" && sys != nil {
			if serr := sys.Surface.SavePNG(snapshot); serr != nil {
				return errors.Join(err, serr)
			}
		}
		return err
	case "terminal":
		term.Hz = headless.Hz
		term.Logger = logger
		term.Audio = audio
		return hal.RunTerminal(ctx, boot, term)
	case "window":
		window.Width = headless.Width
		window.Height = headless.Height
		window.Logger = logger
		if !sound {
			window.Audio = hal.NopAudio{}
		}
		return hal.RunWindow(boot, window)
	default:
		return fmt.Errorf("unknown -host %q", hostKind)
	}
}
