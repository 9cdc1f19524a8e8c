package loop

import (
	"fmt"

	"github.com/astratt/vectoroids/internal/draw"
	"github.com/astratt/vectoroids/internal/game"
)

// drawHUD writes the text overlay for the current phase. It runs after the
// canvas render so text sits on top of the playfield.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, res game.Result) {
	cols := canvas.TerminalWidth()
	rows := canvas.TerminalHeight()

	cw.WriteAt(2, 1, fmt.Sprintf("Score: %d", res.Score))

	lives := fmt.Sprintf("Lives: %d", res.Lives)
	cw.WriteAt(cols-len(lives)-1, 1, lives)

	switch res.Phase {
	case game.PhasePaused:
		drawPauseScreen(cw, cols, rows)
	case game.PhaseGameOver:
		drawGameOverScreen(cw, cols, rows, res.Score)
	}
}

func writeCentered(cw *draw.ChunkWriter, cols, row int, s string) {
	cw.WriteAt(cols/2-len(s)/2, row, s)
}

func drawPauseScreen(cw *draw.ChunkWriter, cols, rows int) {
	centerY := rows / 2
	writeCentered(cw, cols, centerY-1, "P A U S E D")
	writeCentered(cw, cols, centerY+1, "Press P to resume")
}

func drawGameOverScreen(cw *draw.ChunkWriter, cols, rows int, score int) {
	centerY := rows / 2
	writeCentered(cw, cols, centerY-2, "G A M E  O V E R")
	writeCentered(cw, cols, centerY, fmt.Sprintf("Final score: %d", score))
	writeCentered(cw, cols, centerY+2, "Press R to restart, Q to quit")
}
