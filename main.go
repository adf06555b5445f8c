package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gosnake/game"
	"gosnake/input"
	"gosnake/terminal"

	"github.com/HandyGold75/GOLib/logger"
)

func main() { os.Exit(run()) }

func run() int {
	width := flag.Int("width", 0, "playfield columns, 0 uses the terminal width")
	height := flag.Int("height", 0, "playfield rows, 0 uses the terminal height")
	tick := flag.Int("tick", 100, "milliseconds between updates")
	logFile := flag.String("log", "", "write diagnostics to this file")
	flag.Parse()

	var lgr *logger.Logger
	if *logFile != "" {
		lgr = logger.NewAbs(*logFile)
		lgr.UseSeperators = false
	}

	dev, err := terminal.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cols, rows := terminal.Size()
	w, h := cols, rows-1
	if *width > 0 {
		w = *width
	}
	if *height > 0 {
		h = *height
	}

	gm, err := game.New(game.Config{
		Width: w, Height: h,
		TickInterval: time.Duration(*tick) * time.Millisecond,
	}, dev, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), lgr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctl := terminal.NewController(dev)
	if err := ctl.EnterRaw(); err != nil {
		// Nothing was changed yet; the shell keeps a working terminal.
		fmt.Fprintln(os.Stderr, "cannot initialize terminal:", err)
		return 1
	}
	restore := func() {
		ctl.ShowCursor()
		if err := ctl.Restore(); err != nil {
			if lgr != nil {
				lgr.Log("high", "Restore", err)
			}
			fmt.Fprintln(os.Stderr, "failed to restore terminal:", err)
		}
	}
	defer restore()

	ctl.Reset()
	ctl.HideCursor()

	box := input.NewMailbox()
	stop := make(chan struct{})
	defer close(stop)
	go (&input.Reader{In: dev, Box: box, Lgr: lgr}).Run(stop)

	if err := gm.Start(box); err != nil {
		if lgr != nil {
			lgr.Log("high", "Error", err)
		}
		return 1
	}

	restore()
	ctl.Reset()
	switch gm.State.Status {
	case game.Won:
		fmt.Printf("You won! Final score: %d\n", gm.State.Score)
	default:
		fmt.Printf("Final score: %d\n", gm.State.Score)
	}

	return 0
}
