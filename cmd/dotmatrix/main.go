package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/valerio/go-dotmatrix/dotmatrix"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend/headless"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend/sdl2"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend/terminal"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/action"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/event"
	"github.com/valerio/go-dotmatrix/dotmatrix/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "dotmatrix"
	app.Description = "A Game Boy / Game Boy Color emulator"
	app.Usage = "dotmatrix [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Backend to use: terminal, sdl2, headless",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor (sdl2 backend)",
			Value: 4,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "Path to the battery save file (loaded at start, written on exit)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	if c.Bool("debug") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(handler))
	}

	machine, err := dotmatrix.NewWithFile(romPath)
	if err != nil {
		return err
	}

	savePath := c.String("save")
	if savePath != "" {
		if data, err := os.ReadFile(savePath); err == nil {
			machine.LoadRAM(data)
			slog.Info("Loaded battery save", "path", savePath)
		}
	}

	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))

	var b backend.Backend
	switch c.String("backend") {
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames with a positive value")
		}
		snapshotDir, err := prepareSnapshotDir(c)
		if err != nil {
			return err
		}
		b = headless.New(frames, headless.SnapshotConfig{
			Enabled:   c.Int("snapshot-interval") > 0,
			Interval:  c.Int("snapshot-interval"),
			Directory: snapshotDir,
			ROMName:   romName,
		})
		machine.SetFrameLimiter(timing.NewNoOpLimiter())
	case "sdl2":
		b = sdl2.New()
		machine.SetFrameLimiter(timing.NewAdaptiveLimiter())
	case "terminal":
		b = terminal.New()
		machine.SetFrameLimiter(timing.NewAdaptiveLimiter())
	default:
		return fmt.Errorf("unknown backend: %s", c.String("backend"))
	}

	config := backend.BackendConfig{
		Title: "dotmatrix - " + romName,
		Scale: c.Int("scale"),
		VSync: true,
		APU:   machine.GetMMU().APU,
	}
	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	if err := runLoop(machine, b); err != nil {
		return err
	}

	if savePath != "" {
		if data := machine.SaveRAM(); len(data) > 0 {
			if err := os.WriteFile(savePath, data, 0644); err != nil {
				return fmt.Errorf("writing battery save: %w", err)
			}
			slog.Info("Wrote battery save", "path", savePath)
		}
	}

	return nil
}

func runLoop(machine *dotmatrix.Machine, b backend.Backend) error {
	for {
		if err := machine.RunUntilFrame(); err != nil {
			return err
		}

		events, err := b.Update(machine.GetCurrentFrame())
		if err != nil {
			return err
		}

		for _, ev := range events {
			if ev.Action == action.EmulatorQuit && ev.Type == event.Press {
				return nil
			}
			machine.HandleAction(ev.Action, ev.Type == event.Press)
		}

		machine.WaitForNextFrame()
	}
}

func prepareSnapshotDir(c *cli.Context) (string, error) {
	if c.Int("snapshot-interval") <= 0 {
		return "", nil
	}
	dir := c.String("snapshot-dir")
	if dir == "" {
		tempDir, err := os.MkdirTemp("", "dotmatrix-snapshots-*")
		if err != nil {
			return "", fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		return tempDir, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	return dir, nil
}
