package planner

import "fmt"

// Resolution is a canonical output frame size. Exactly one of the three
// canonical values is chosen per input pair, from orientations only, so the
// output size is predictable regardless of the inputs' exact pixel counts.
type Resolution struct {
	W int
	H int
}

var (
	ResLandscape = Resolution{1920, 1080}
	ResPortrait  = Resolution{1080, 1920}
	ResSquare    = Resolution{1080, 1080}
)

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.W, r.H)
}

// SelectResolution picks the canonical output resolution for a pair of
// orientations:
//
//   - both landscape-compatible (landscape or square) -> 1920x1080
//   - both portrait-compatible (portrait or square)   -> 1080x1920
//   - mixed landscape/portrait                        -> 1080x1080
//
// Square is accepted by both membership tests, so the first matching rule
// decides square+square: the rule order is part of the contract, and two
// square inputs resolve to the landscape canonical.
func SelectResolution(o1, o2 Orientation) Resolution {
	switch {
	case fits(o1, Landscape) && fits(o2, Landscape):
		return ResLandscape
	case fits(o1, Portrait) && fits(o2, Portrait):
		return ResPortrait
	default:
		return ResSquare
	}
}

func fits(o, want Orientation) bool {
	return o == want || o == Square
}
