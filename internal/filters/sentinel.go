package filters

import "strconv"

const (
	DefaultCodec      = "pcm_s24le"
	DefaultSampleRate = 48000
)

// Input is the INPUT sentinel. It never emits a fragment.
type Input struct {
	base
}

// NewInput returns the INPUT sentinel with its reserved id.
func NewInput() *Input {
	return &Input{base: base{id: InputID}}
}

func (*Input) Fragment() string    { return "" }
func (*Input) Type() string        { return TypeInput }
func (*Input) DisplayName() string { return "INPUT" }

// Output is the OUTPUT sentinel. It never emits a fragment but carries the
// encoding arguments written after the mapped sink.
type Output struct {
	base
	Codec      string
	SampleRate int
	Channels   int
	Extra      []string
}

// NewOutput returns the OUTPUT sentinel with default PCM encoding.
func NewOutput() *Output {
	return &Output{
		base:       base{id: OutputID},
		Codec:      DefaultCodec,
		SampleRate: DefaultSampleRate,
	}
}

func (*Output) Fragment() string    { return "" }
func (*Output) Type() string        { return TypeOutput }
func (*Output) DisplayName() string { return "OUTPUT" }

// Args returns the encoding arguments for the output file.
func (o *Output) Args() []string {
	var args []string
	if o.Codec != "" {
		args = append(args, "-c:a", o.Codec)
	}
	if o.SampleRate > 0 {
		args = append(args, "-ar", strconv.Itoa(o.SampleRate))
	}
	if o.Channels > 0 {
		args = append(args, "-ac", strconv.Itoa(o.Channels))
	}
	return append(args, o.Extra...)
}
