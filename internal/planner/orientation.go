package planner

// Orientation is the coarse aspect class of a video frame, derived from the
// width/height comparison alone. It is never stored; the concat planner
// re-derives it per invocation.
type Orientation int

const (
	Landscape Orientation = iota // width > height
	Portrait                     // height > width
	Square                       // width == height
)

func (o Orientation) String() string {
	switch o {
	case Landscape:
		return "landscape"
	case Portrait:
		return "portrait"
	case Square:
		return "square"
	}
	return "unknown"
}

// Classify maps frame dimensions to an Orientation. Total over all inputs;
// degenerate dimensions are rejected earlier by the plan builder.
func Classify(width, height int) Orientation {
	switch {
	case width > height:
		return Landscape
	case height > width:
		return Portrait
	default:
		return Square
	}
}
