package game

import (
	"time"

	"gosnake/input"
)

// Start drives fixed-interval ticks until the game ends or the player
// quits. Each tick polls the mailbox once without blocking, so the
// game keeps its pace even when no key is pressed; keys pressed
// between ticks overwrite each other and only the latest one counts.
func (g *Game) Start(box *input.Mailbox) error {
	if err := g.Draw(); err != nil {
		return err
	}

	for g.State.Status == Running {
		t := time.Now()

		dir := g.State.Dir
		if cmd, ok := box.Take(); ok {
			if cmd == input.Quit {
				return nil
			}
			dir = commandDirection(cmd, dir)
		}

		g.Advance(dir)
		if err := g.Draw(); err != nil {
			return err
		}

		time.Sleep(g.tickInterval() - time.Since(t))
	}

	if g.lgr != nil {
		if g.State.Status == Won {
			g.lgr.Log("low", "Won", g.State.Score)
		} else {
			g.lgr.Log("low", "GameOver", g.State.Score)
		}
	}

	return nil
}

func commandDirection(cmd input.Command, current Direction) Direction {
	switch cmd {
	case input.Up:
		return Up
	case input.Right:
		return Right
	case input.Down:
		return Down
	case input.Left:
		return Left
	}

	return current
}
