package shapes

// Kind selects the draw primitive of a shape.
type Kind uint8

const (
	FilledCircle Kind = iota
	StrokedCircle
	FilledSquare
	StrokedSquare
	Cross
)

const (
	// birthKinds is the number of kinds a shape can be born as. Cross is
	// only reachable by morphing.
	birthKinds = int(Cross)
	numKinds   = int(Cross) + 1
)

func (k Kind) String() string {
	switch k {
	case FilledCircle:
		return "filled-circle"
	case StrokedCircle:
		return "stroked-circle"
	case FilledSquare:
		return "filled-square"
	case StrokedSquare:
		return "stroked-square"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// Phase selects which attribute a mid-life action cycle interpolates.
type Phase uint8

const (
	Resize Phase = iota
	TranslateVertical
	TranslateHorizontal
	MorphShape
)

const numPhases = int(MorphShape) + 1

func (p Phase) String() string {
	switch p {
	case Resize:
		return "resize"
	case TranslateVertical:
		return "translate-vertical"
	case TranslateHorizontal:
		return "translate-horizontal"
	case MorphShape:
		return "morph"
	default:
		return "unknown"
	}
}
