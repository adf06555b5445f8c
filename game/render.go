package game

import (
	"strconv"

	"gosnake/screen"
)

const (
	foodChar = 'x'
	wallChar = '█'
	bodyChar = '◉'
	headChar = '●'
)

const (
	foodColor  = screen.Green
	wallColor  = screen.Yellow
	snakeColor = screen.Blue
	textColor  = screen.Red
)

// Draw renders the whole state into the back buffer and flushes it to
// the terminal. Food goes in before the snake so a just-eaten cell is
// covered by the head.
func (g *Game) Draw() error {
	g.drawBorder()
	g.drawStatus()
	g.drawFood()
	g.drawSnake()

	return g.frame.Flush()
}

func (g *Game) drawBorder() {
	back := g.frame.Back()
	wall := screen.Pixel{Char: wallChar, Color: wallColor}

	for x := 0; x < g.Config.Width; x++ {
		back.Set(x, 0, wall)
		back.Set(x, g.Config.Height-1, wall)
	}
	for y := 1; y < g.Config.Height-1; y++ {
		back.Set(0, y, wall)
		back.Set(g.Config.Width-1, y, wall)
	}
}

func (g *Game) drawSnake() {
	back := g.frame.Back()
	headIdx := g.State.Snake.Len() - 1

	g.State.Snake.Each(func(i int, c Cord) {
		char := bodyChar
		if i == headIdx {
			char = headChar
		}
		back.Set(c.X, c.Y, screen.Pixel{Char: char, Color: snakeColor})
	})
}

func (g *Game) drawFood() {
	if g.State.Status == Won {
		// No food left to place once the snake fills the field.
		return
	}
	g.frame.Back().Set(g.State.Food.X, g.State.Food.Y, screen.Pixel{Char: foodChar, Color: foodColor})
}

// drawStatus renders the score left-aligned and the speed
// right-aligned on the line below the field.
func (g *Game) drawStatus() {
	back := g.frame.Back()
	row := g.Config.Height

	for i, char := range "Score: " + strconv.Itoa(g.State.Score) {
		back.Set(i+1, row, screen.Pixel{Char: char, Color: textColor})
	}

	speed := "Speed: " + strconv.Itoa(g.State.Speed)
	for i, char := range speed {
		back.Set(g.Config.Width-1-len(speed)+i, row, screen.Pixel{Char: char, Color: textColor})
	}
}
