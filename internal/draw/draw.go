// Package draw renders to ANSI terminals. The Canvas doubles the vertical
// resolution with half-block characters and scales a fixed logical playfield
// to whatever size the terminal happens to be.
package draw

// Block characters for terminal rendering.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
