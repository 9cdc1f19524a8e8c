// Package loop drives a game in real time against a terminal: it polls the
// keyboard, advances the simulation, and renders each frame.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/astratt/vectoroids/internal/config"
	"github.com/astratt/vectoroids/internal/draw"
	"github.com/astratt/vectoroids/internal/game"
	"github.com/astratt/vectoroids/internal/input"
)

// Render area caps. Terminals larger than this get a centered, bordered
// playfield instead of an ever-larger one.
const (
	maxRenderCols = 240
	maxRenderRows = 70
)

// Options adjusts a Run for its environment.
type Options struct {
	// TermSize reports the terminal dimensions. Defaults to the size of
	// the controlling terminal; SSH sessions supply their own tracker.
	TermSize draw.TermSizeFunc

	// Logger receives session lifecycle messages. Defaults to the global
	// logger.
	Logger *log.Logger
}

// Run plays one game on the given reader/writer pair until the player quits
// or ctx is canceled. The reader must deliver raw (uncooked) terminal bytes.
func Run(ctx context.Context, cfg config.Config, r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFn := opts.TermSize
	if sizeFn == nil {
		sizeFn = draw.DefaultTermSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}
	kb := input.NewKeyboard(r)

	termWidth, termHeight, err := sizeFn()
	if err != nil {
		return err
	}
	cols, rows, offCol, offRow := layout(termWidth, termHeight)

	canvas := draw.NewCanvas(cols, rows, cfg.ScreenWidth, cfg.ScreenHeight)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	logger.Info("game started", "tick_rate", cfg.TickRate, "cols", termWidth, "rows", termHeight)

	frameTime := time.Second / time.Duration(cfg.TickRate)
	last := time.Now()
	score := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frameStart := time.Now()
		dt := frameStart.Sub(last)
		last = frameStart

		intent := kb.Poll(frameStart)
		if intent.Pressed(input.Quit) {
			logger.Info("player quit", "score", score)
			return nil
		}

		res := g.Tick(dt, intent)
		score = res.Score

		if err := fitTerminal(sizeFn, canvas, cw); err != nil {
			return err
		}
		if err := renderFrame(cw, canvas, res); err != nil {
			return err
		}

		if elapsed := time.Since(frameStart); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

// layout computes the render area size and centering offsets for a terminal.
func layout(termWidth, termHeight int) (cols, rows, offCol, offRow int) {
	cols = min(termWidth, maxRenderCols)
	rows = min(termHeight, maxRenderRows)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows, (termWidth - cols) / 2, (termHeight - rows) / 2
}

// fitTerminal re-fits the canvas after a terminal resize.
func fitTerminal(sizeFn draw.TermSizeFunc, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	termWidth, termHeight, err := sizeFn()
	if err != nil {
		return err
	}
	cols, rows, offCol, offRow := layout(termWidth, termHeight)
	canvas.Resize(cols, rows)
	canvas.SetOffset(offCol, offRow)
	cw.SetOffset(offCol, offRow)
	return nil
}
