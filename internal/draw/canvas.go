package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/astratt/vectoroids/internal/geom"
)

// circleSegments is how many chords approximate a drawn circle.
const circleSegments = 24

// Canvas is a monochrome drawing buffer with doubled vertical resolution.
// Game coordinates are logical; the canvas scales them onto the terminal
// cell grid, where every cell holds two stacked pixels.
type Canvas struct {
	termWidth  int
	termHeight int
	pixHeight  int    // termHeight * 2
	pixels     []bool // [y*termWidth + x]

	logicalW float64
	logicalH float64
	scaleX   float64
	scaleY   float64

	// Terminal offsets for centering when the terminal is larger than the
	// render area.
	offsetCol int
	offsetRow int

	// Reused across frames to keep the render loop allocation-free.
	renderBuf       strings.Builder
	scaledBuf       []geom.Vec2
	intersectionBuf []float64
	pointBuf        []geom.Vec2
}

// NewCanvas creates a canvas that maps the logical coordinate space onto a
// terminal of the given size.
func NewCanvas(termWidth, termHeight int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions. The logical space is
// unchanged; only the scale factors and the pixel buffer are rebuilt.
func (c *Canvas) Resize(termWidth, termHeight int) {
	pixHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, pixHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.pixHeight = pixHeight
	}
	c.scaleX = float64(termWidth) / c.logicalW
	c.scaleY = float64(pixHeight) / c.logicalH
}

// SetOffset positions the render area inside a larger terminal. Offsets are
// 0-based counts of columns and rows to skip.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets every pixel.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.pixHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set lights the pixel at a logical position.
func (c *Canvas) Set(p geom.Vec2) {
	c.setPixel(int(math.Round(p.X*c.scaleX)), int(math.Round(p.Y*c.scaleY)))
}

// DrawLine draws a segment between two logical positions with Bresenham's
// algorithm in pixel space.
func (c *Canvas) DrawLine(p1, p2 geom.Vec2) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, optionally filled with a scanline pass.
func (c *Canvas) DrawPolygon(points []geom.Vec2, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawCircle draws a circle outline as a chord loop.
func (c *Canvas) DrawCircle(center geom.Vec2, radius float64) {
	prev := center.Add(geom.Vec2{X: radius})
	for i := 1; i <= circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		next := center.Add(geom.FromAngle(angle).Scale(radius))
		c.DrawLine(prev, next)
		prev = next
	}
}

// fillPolygon scanline-fills in pixel space, so fills stay watertight at any
// scale factor.
func (c *Canvas) fillPolygon(points []geom.Vec2) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]geom.Vec2, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = geom.Vec2{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			for x := int(math.Ceil(intersections[i])); x <= int(math.Floor(intersections[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the frame as cursor-addressed half-block characters. Empty
// cells are skipped; the caller clears the screen between frames.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}
			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	writeChunked(w, c.renderBuf.String())
}

// RenderBorder draws a box around the render area when offsets leave room
// for one.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	if !hasH && !hasV {
		return
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		bar := strings.Repeat("─", c.termWidth)
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, bar)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, left+1, bar)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, left+1, bar)
		}
	}
	if hasH {
		for row := top + 1; row < bottom; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	writeChunked(w, buf.String())
}

// TerminalWidth returns the terminal column count of the render area.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the terminal row count of the render area.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts a logical position to a 1-based terminal cell,
// for placing text overlays next to canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(p geom.Vec2) (col, row int) {
	px := int(math.Round(p.X * c.scaleX))
	py := int(math.Round(p.Y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable scratch slice of n points, valid until the
// next call. Avoids per-frame polygon allocations.
func (c *Canvas) BorrowPoints(n int) []geom.Vec2 {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]geom.Vec2, n)
	}
	return c.pointBuf[:n]
}
