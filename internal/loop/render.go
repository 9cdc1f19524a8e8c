package loop

import (
	"math"

	"github.com/astratt/vectoroids/internal/draw"
	"github.com/astratt/vectoroids/internal/entity"
	"github.com/astratt/vectoroids/internal/game"
	"github.com/astratt/vectoroids/internal/geom"
)

// shipBlinkFrequency is how fast an invulnerable ship flickers, in Hz.
const shipBlinkFrequency = 5.0

// wingAngle offsets the ship's rear vertices from its nose, in radians.
const wingAngle = 2.5

// renderFrame draws one snapshot: entities on the canvas, then HUD text on
// top, then a single flush to the terminal.
func renderFrame(cw *draw.ChunkWriter, canvas *draw.Canvas, res game.Result) error {
	draw.ClearScreen(cw)
	canvas.Clear()

	for _, e := range res.Entities {
		switch e.Kind {
		case entity.KindShip:
			drawShip(canvas, e)
		case entity.KindAsteroid:
			drawAsteroid(canvas, e)
		case entity.KindProjectile:
			canvas.Set(e.Pos)
		case entity.KindExplosion:
			canvas.DrawCircle(e.Pos, e.Radius)
		}
	}

	canvas.RenderBorder(cw)
	canvas.Render(cw)
	drawHUD(cw, canvas, res)

	return cw.Flush()
}

// drawShip renders the ship as a filled triangle pointing along its heading.
// While invulnerable it blinks by skipping alternate frames.
func drawShip(canvas *draw.Canvas, e game.Snapshot) {
	if !blinkVisible(e.InvulnRemaining, shipBlinkFrequency) {
		return
	}

	points := canvas.BorrowPoints(3)
	points[0] = e.Pos.Add(geom.FromAngle(e.Heading).Scale(e.Radius * 1.5))
	points[1] = e.Pos.Add(geom.FromAngle(e.Heading + wingAngle).Scale(e.Radius))
	points[2] = e.Pos.Add(geom.FromAngle(e.Heading - wingAngle).Scale(e.Radius))
	canvas.DrawPolygon(points, true)
}

// drawAsteroid renders an asteroid as a polygon outline. Bigger tiers get
// more vertices so they read as larger rocks even on a coarse grid.
func drawAsteroid(canvas *draw.Canvas, e game.Snapshot) {
	n := 6 + 2*int(e.Tier)
	points := canvas.BorrowPoints(n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = e.Pos.Add(geom.FromAngle(angle).Scale(e.Radius))
	}
	canvas.DrawPolygon(points, false)
}

// blinkVisible reports whether a flickering object should be drawn this
// frame. Objects with no remaining timer are always visible.
func blinkVisible(remaining, frequency float64) bool {
	if remaining <= 0 {
		return true
	}
	return int(remaining*frequency)%2 != 0
}
