package game

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"gosnake/screen"

	"github.com/HandyGold75/GOLib/logger"
)

type (
	Cord struct{ X, Y int }

	Direction int

	Status int

	Config struct {
		// Field size in cells, border walls included. The status line
		// is rendered on an extra row below the field.
		Width, Height int

		TickInterval time.Duration
		StartLength  int
		FoodScore    int

		// Eating speeds the game up: each food shortens the tick by
		// SpeedStep milliseconds, up to SpeedMax.
		SpeedStep, SpeedMax int
	}

	State struct {
		Snake  *Ring
		Food   Cord
		Dir    Direction
		Score  int
		Speed  int
		Status Status
	}

	Game struct {
		Config Config
		State  State

		frame *screen.FrameBuffer
		rng   *rand.Rand
		lgr   *logger.Logger
	}
)

const (
	Up Direction = iota
	Right
	Down
	Left
)

const (
	Running Status = iota
	GameOver
	Won
)

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	}

	return Left
}

func (d Direction) offset() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}

	return 1, 0
}

func New(cfg Config, out io.Writer, rng *rand.Rand, lgr *logger.Logger) (*Game, error) {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	if cfg.StartLength <= 0 {
		cfg.StartLength = 3
	}
	if cfg.FoodScore <= 0 {
		cfg.FoodScore = 100
	}
	if cfg.SpeedStep <= 0 {
		cfg.SpeedStep = 5
	}
	if cfg.SpeedMax <= 0 {
		cfg.SpeedMax = 50
	}
	if cfg.Width < 2*cfg.StartLength || cfg.Height < 5 {
		return nil, fmt.Errorf("field %vx%v is too small to play on", cfg.Width, cfg.Height)
	}

	frame, err := screen.NewFrameBuffer(cfg.Width, cfg.Height+1, out)
	if err != nil {
		return nil, err
	}

	g := &Game{Config: cfg, frame: frame, rng: rng, lgr: lgr}
	g.Reset()

	return g, nil
}

// Reset starts a fresh game: a snake of StartLength cells ending at
// the field center moving right, score zero, one food item.
func (g *Game) Reset() {
	snake := NewRing((g.Config.Width - 2) * (g.Config.Height - 2))
	cx, cy := g.Config.Width/2, g.Config.Height/2
	for x := cx - g.Config.StartLength + 1; x <= cx; x++ {
		snake.Push(Cord{X: x, Y: cy})
	}

	g.State = State{Snake: snake, Dir: Right, Status: Running}
	g.placeFood()
}

// Advance runs one tick of the state machine: apply the requested
// direction unless it reverses the current one, move the head, detect
// wall/self collisions, grow and respawn food on an eat, otherwise
// drag the tail along.
func (g *Game) Advance(dir Direction) {
	if g.State.Status != Running {
		return
	}
	if dir != g.State.Dir.Opposite() {
		g.State.Dir = dir
	}

	dx, dy := g.State.Dir.offset()
	head := g.State.Snake.Head()
	next := Cord{X: head.X + dx, Y: head.Y + dy}

	if next.X < 1 || next.X > g.Config.Width-2 || next.Y < 1 || next.Y > g.Config.Height-2 {
		g.State.Status = GameOver
		return
	}

	eats := next == g.State.Food
	if g.bitesSelf(next, !eats) {
		g.State.Status = GameOver
		return
	}

	if eats {
		g.State.Snake.Push(next)
		g.State.Score += g.Config.FoodScore
		g.State.Speed = min(g.State.Speed+g.Config.SpeedStep, g.Config.SpeedMax)
		if g.State.Snake.Full() {
			g.State.Status = Won
			return
		}
		g.placeFood()

		return
	}

	g.State.Snake.Pop()
	g.State.Snake.Push(next)
}

// bitesSelf reports whether next lands on a body segment. The tail
// cell is exempt when it vacates this tick.
func (g *Game) bitesSelf(next Cord, tailVacates bool) bool {
	hit := false
	g.State.Snake.Each(func(i int, c Cord) {
		if i == 0 && tailVacates {
			return
		}
		if c == next {
			hit = true
		}
	})

	return hit
}

// placeFood samples uniformly from the playable cells the snake does
// not occupy. The caller guarantees at least one such cell exists.
func (g *Game) placeFood() {
	free := make([]Cord, 0, g.State.Snake.Cap()-g.State.Snake.Len())
	for y := 1; y <= g.Config.Height-2; y++ {
		for x := 1; x <= g.Config.Width-2; x++ {
			if c := (Cord{X: x, Y: y}); !g.State.Snake.Contains(c) {
				free = append(free, c)
			}
		}
	}

	g.State.Food = free[g.rng.IntN(len(free))]
}

// tickInterval is the current update period: the configured tick
// shortened by the accumulated speed, never below half the base.
func (g *Game) tickInterval() time.Duration {
	interval := g.Config.TickInterval - time.Duration(g.State.Speed)*time.Millisecond
	if floor := g.Config.TickInterval / 2; interval < floor {
		interval = floor
	}

	return interval
}
