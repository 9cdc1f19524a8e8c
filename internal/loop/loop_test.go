package loop

import (
	"strings"
	"testing"

	"github.com/astratt/vectoroids/internal/draw"
	"github.com/astratt/vectoroids/internal/entity"
	"github.com/astratt/vectoroids/internal/game"
	"github.com/astratt/vectoroids/internal/geom"
)

func renderToString(t *testing.T, res game.Result) string {
	t.Helper()
	var sb strings.Builder
	canvas := draw.NewCanvas(80, 24, 1280, 720)
	cw := draw.NewChunkWriter(&sb, 0, 0)
	if err := renderFrame(cw, canvas, res); err != nil {
		t.Fatalf("renderFrame: %v", err)
	}
	return sb.String()
}

func TestHUDShowsScoreAndLives(t *testing.T) {
	out := renderToString(t, game.Result{Phase: game.PhaseRunning, Score: 420, Lives: 2})

	if !strings.Contains(out, "Score: 420") {
		t.Error("HUD missing score")
	}
	if !strings.Contains(out, "Lives: 2") {
		t.Error("HUD missing lives")
	}
}

func TestPauseOverlay(t *testing.T) {
	out := renderToString(t, game.Result{Phase: game.PhasePaused})
	if !strings.Contains(out, "P A U S E D") {
		t.Error("pause overlay missing")
	}
}

func TestGameOverOverlay(t *testing.T) {
	out := renderToString(t, game.Result{Phase: game.PhaseGameOver, Score: 99})
	if !strings.Contains(out, "G A M E  O V E R") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(out, "Final score: 99") {
		t.Error("final score missing")
	}
}

func TestEntitiesProduceCanvasOutput(t *testing.T) {
	empty := renderToString(t, game.Result{Phase: game.PhaseRunning})
	withShip := renderToString(t, game.Result{
		Phase: game.PhaseRunning,
		Entities: []game.Snapshot{{
			Kind:   entity.KindShip,
			Pos:    geom.Vec2{X: 640, Y: 360},
			Radius: 15,
		}},
	})
	if len(withShip) <= len(empty) {
		t.Error("ship snapshot drew nothing")
	}
}

func TestBlinkVisible(t *testing.T) {
	if !blinkVisible(0, 5) {
		t.Error("expired timer must always be visible")
	}
	// At 5Hz the phase flips every 0.2s of remaining time.
	if blinkVisible(0.1, 5) {
		t.Error("phase 0 should be hidden")
	}
	if !blinkVisible(0.3, 5) {
		t.Error("phase 1 should be visible")
	}
}

func TestLayoutCentersLargeTerminals(t *testing.T) {
	cols, rows, offCol, offRow := layout(300, 100)
	if cols != maxRenderCols || rows != maxRenderRows {
		t.Errorf("render area = %dx%d, want capped at %dx%d", cols, rows, maxRenderCols, maxRenderRows)
	}
	if offCol != 30 || offRow != 15 {
		t.Errorf("offsets = (%d,%d), want (30,15)", offCol, offRow)
	}

	cols, rows, offCol, offRow = layout(80, 24)
	if cols != 80 || rows != 24 || offCol != 0 || offRow != 0 {
		t.Errorf("small terminal layout = %d %d %d %d", cols, rows, offCol, offRow)
	}
}
