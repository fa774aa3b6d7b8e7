package dag

// Direction identifies whether a port consumes or produces a stream.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// PortKind classifies the stream a port carries.
type PortKind int

const (
	// MainAudio is the primary audio stream.
	MainAudio PortKind = iota
	// Sidechain is a secondary audio input.
	Sidechain
	// BranchOutput is an aux or analysis tap.
	BranchOutput
)

func (k PortKind) String() string {
	switch k {
	case Sidechain:
		return "sidechain"
	case BranchOutput:
		return "branch_output"
	default:
		return "main_audio"
	}
}

const (
	MainInputName  = "main_in"
	MainOutputName = "main_out"
)

// PortDescriptor describes one typed endpoint of a node. Values compare
// structurally with ==.
type PortDescriptor struct {
	Name      string
	Direction Direction
	Kind      PortKind
}

// MainInput returns the canonical main audio input port.
func MainInput() PortDescriptor {
	return PortDescriptor{Name: MainInputName, Direction: Input, Kind: MainAudio}
}

// MainOutput returns the canonical main audio output port.
func MainOutput() PortDescriptor {
	return PortDescriptor{Name: MainOutputName, Direction: Output, Kind: MainAudio}
}
