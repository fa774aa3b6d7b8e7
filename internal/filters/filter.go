package filters

import (
	"errors"
	"fmt"
	"sort"

	"ffab/internal/dag"
)

const (
	// Unassigned marks a filter that has not been given an id yet.
	Unassigned = -1
	// InputID is reserved for the INPUT sentinel.
	InputID = 0
	// OutputID is reserved for the OUTPUT sentinel.
	OutputID = -2
)

const (
	TypeInput  = "input"
	TypeOutput = "output"
	TypeVolume = "volume"
	TypeFFmpeg = "ffmpeg"
	TypeCustom = "custom"
)

// ErrUnknownType is returned by New for unregistered filter types.
var ErrUnknownType = errors.New("unknown filter type")

// Filter is a chain element.
type Filter interface {
	dag.Filter
	SetID(id int)
	Type() string
	DisplayName() string
}

// base carries the id and the capability defaults shared by all variants.
type base struct {
	id int
}

func newBase() base { return base{id: Unassigned} }

func (b *base) ID() int                         { return b.id }
func (b *base) SetID(id int)                    { b.id = id }
func (b *base) ProducesAdditionalOutputs() bool { return false }
func (b *base) ManualOutputLabels() bool        { return false }

var registry = map[string]func() Filter{
	TypeInput:  func() Filter { return NewInput() },
	TypeOutput: func() Filter { return NewOutput() },
	TypeVolume: func() Filter { return NewVolume(0) },
	TypeFFmpeg: func() Filter { return NewFFmpeg("") },
	TypeCustom: func() Filter { return NewCustom("") },
}

// New returns a default-valued filter of the named type.
func New(filterType string) (Filter, error) {
	ctor, ok := registry[filterType]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, filterType)
	}
	return ctor(), nil
}

// Types lists registered filter types in sorted order.
func Types() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsSentinel reports whether f is the INPUT or OUTPUT placeholder.
func IsSentinel(f Filter) bool {
	switch f.(type) {
	case *Input, *Output:
		return true
	}
	return false
}
