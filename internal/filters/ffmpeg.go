package filters

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Param is one key=value option of an ffmpeg filter. Order is preserved.
type Param struct {
	Key   string
	Value string
}

// FFmpeg is any named ffmpeg audio filter with ordered options.
type FFmpeg struct {
	base
	Name   string
	Params []Param
	// AdditionalOutputs marks branch or sidechain taps whose output must not
	// be folded into the final sink.
	AdditionalOutputs bool
}

func NewFFmpeg(name string, params ...Param) *FFmpeg {
	return &FFmpeg{base: newBase(), Name: name, Params: params}
}

// Fragment renders name=k1=v1:k2=v2, or the bare name without options.
// A filter with no name emits nothing.
func (f *FFmpeg) Fragment() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ""
	}
	if len(f.Params) == 0 {
		return name
	}
	opts := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			opts = append(opts, p.Value)
			continue
		}
		opts = append(opts, key+"="+p.Value)
	}
	return name + "=" + strings.Join(opts, ":")
}

func (f *FFmpeg) ProducesAdditionalOutputs() bool { return f.AdditionalOutputs }

func (*FFmpeg) Type() string { return TypeFFmpeg }

func (f *FFmpeg) DisplayName() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return "FFmpeg"
	}
	return cases.Title(language.Und).String(name)
}
