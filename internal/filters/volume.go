package filters

import "strconv"

// Volume applies a gain in decibels.
type Volume struct {
	base
	Decibels float64
}

func NewVolume(decibels float64) *Volume {
	return &Volume{base: newBase(), Decibels: decibels}
}

func (v *Volume) Fragment() string {
	return "volume=" + strconv.FormatFloat(v.Decibels, 'f', -1, 64) + "dB"
}

func (*Volume) Type() string        { return TypeVolume }
func (*Volume) DisplayName() string { return "Volume" }
