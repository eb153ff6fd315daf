package main

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/valerio/go-dotmatrix/dotmatrix"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend"
	"github.com/valerio/go-dotmatrix/dotmatrix/backend/terminal"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/action"
	"github.com/valerio/go-dotmatrix/dotmatrix/input/event"
	"github.com/valerio/go-dotmatrix/dotmatrix/timing"
)

// Minimal launcher: terminal backend only. The full CLI with backend and
// snapshot options lives in cmd/dotmatrix.
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

	machine, err := dotmatrix.NewWithFile(romPath)
	if err != nil {
		return err
	}
	machine.SetFrameLimiter(timing.NewAdaptiveLimiter())

	term := terminal.New()
	if err := term.Init(backend.BackendConfig{Title: "dotmatrix"}); err != nil {
		return err
	}
	defer term.Cleanup()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-signals:
			slog.Info("Received signal to stop")
			return nil
		default:
		}

		if err := machine.RunUntilFrame(); err != nil {
			return err
		}

		events, err := term.Update(machine.GetCurrentFrame())
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
