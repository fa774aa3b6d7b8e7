package chain

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"ffab/internal/dag"
	"ffab/internal/filtercomplex"
	"ffab/internal/filters"
	"ffab/internal/logging"
)

// ErrPosition is returned for positions outside the editable middle range.
var ErrPosition = errors.New("chain position out of range")

// Chain is an ordered INPUT → filters → OUTPUT list with per-position mutes.
type Chain struct {
	filters []filters.Filter
	muted   map[int]struct{}
	nextID  int
	logger  *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithLogger routes rebuild diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chain) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a chain holding only the sentinels.
func New(opts ...Option) *Chain {
	c := &Chain{
		filters: []filters.Filter{filters.NewInput(), filters.NewOutput()},
		muted:   make(map[int]struct{}),
		nextID:  1,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "chain")
	return c
}

// Len reports the number of filters including both sentinels.
func (c *Chain) Len() int {
	return len(c.filters)
}

// Filters returns a copy of the ordered list.
func (c *Chain) Filters() []filters.Filter {
	out := make([]filters.Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// Filter returns the filter at position.
func (c *Chain) Filter(position int) (filters.Filter, error) {
	if position < 0 || position >= len(c.filters) {
		return nil, fmt.Errorf("%w: %d", ErrPosition, position)
	}
	return c.filters[position], nil
}

// Output returns the OUTPUT sentinel.
func (c *Chain) Output() *filters.Output {
	return c.filters[len(c.filters)-1].(*filters.Output)
}

// SetOutput replaces the OUTPUT sentinel's encoding settings.
func (c *Chain) SetOutput(out *filters.Output) {
	if out == nil {
		return
	}
	out.SetID(filters.OutputID)
	c.filters[len(c.filters)-1] = out
}

// Add inserts f at position and returns where it landed. A negative position
// appends before OUTPUT; other values are clamped to the middle range.
// Filters without an id get the next one from the chain counter.
func (c *Chain) Add(f filters.Filter, position int) (int, error) {
	if f == nil {
		return 0, errors.New("add filter: nil filter")
	}
	if filters.IsSentinel(f) {
		return 0, fmt.Errorf("add filter: %s is a sentinel", f.Type())
	}
	c.assignID(f)

	last := len(c.filters) - 1
	if position < 0 || position > last {
		position = last
	}
	position = max(position, 1)

	c.filters = append(c.filters, nil)
	copy(c.filters[position+1:], c.filters[position:])
	c.filters[position] = f

	c.remapMutes(func(p int) int {
		if p >= position {
			return p + 1
		}
		return p
	})
	return position, nil
}

func (c *Chain) assignID(f filters.Filter) {
	if f.ID() == filters.Unassigned {
		f.SetID(c.nextID)
		c.nextID++
		return
	}
	if f.ID() >= c.nextID {
		c.nextID = f.ID() + 1
	}
}

// Remove deletes the middle filter at position. Its mute is dropped and
// later mutes shift down with their filters.
func (c *Chain) Remove(position int) error {
	if !c.isMiddle(position) {
		return fmt.Errorf("remove filter: %w: %d", ErrPosition, position)
	}
	c.filters = append(c.filters[:position], c.filters[position+1:]...)

	delete(c.muted, position)
	c.remapMutes(func(p int) int {
		if p > position {
			return p - 1
		}
		return p
	})
	return nil
}

// Move relocates the middle filter at from to to. Mutes follow the filters.
func (c *Chain) Move(from, to int) error {
	if !c.isMiddle(from) || !c.isMiddle(to) {
		return fmt.Errorf("move filter: %w: %d → %d", ErrPosition, from, to)
	}
	if from == to {
		return nil
	}

	f := c.filters[from]
	c.filters = append(c.filters[:from], c.filters[from+1:]...)
	c.filters = append(c.filters[:to], append([]filters.Filter{f}, c.filters[to:]...)...)

	c.remapMutes(func(p int) int {
		switch {
		case p == from:
			return to
		case from < to && p > from && p <= to:
			return p - 1
		case to < from && p >= to && p < from:
			return p + 1
		}
		return p
	})
	return nil
}

// SetMuted mutes or unmutes the middle filter at position.
func (c *Chain) SetMuted(position int, muted bool) error {
	if !c.isMiddle(position) {
		return fmt.Errorf("mute filter: %w: %d", ErrPosition, position)
	}
	if muted {
		c.muted[position] = struct{}{}
	} else {
		delete(c.muted, position)
	}
	return nil
}

// IsMuted reports whether position is muted.
func (c *Chain) IsMuted(position int) bool {
	_, ok := c.muted[position]
	return ok
}

// Muted returns the muted positions in ascending order.
func (c *Chain) Muted() []int {
	out := make([]int, 0, len(c.muted))
	for p := range c.muted {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

func (c *Chain) isMiddle(position int) bool {
	return position >= 1 && position < len(c.filters)-1
}

func (c *Chain) remapMutes(fn func(int) int) {
	next := make(map[int]struct{}, len(c.muted))
	for p := range c.muted {
		next[fn(p)] = struct{}{}
	}
	c.muted = next
}

// Graph builds a fresh linear graph from the current list.
func (c *Chain) Graph() (*dag.Graph, error) {
	nodes := make([]dag.Filter, 0, len(c.filters))
	for _, f := range c.filters {
		nodes = append(nodes, f)
	}
	g := &dag.Graph{}
	if err := g.BuildLinearChain(nodes); err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("validate graph: %w", err)
	}
	return g, nil
}

// Positions maps each filter id to its current position.
func (c *Chain) Positions() map[int]int {
	out := make(map[int]int, len(c.filters))
	for i, f := range c.filters {
		if _, seen := out[f.ID()]; !seen {
			out[f.ID()] = i
		}
	}
	return out
}

// FilterComplex compiles the chain into a -filter_complex expression.
func (c *Chain) FilterComplex() filtercomplex.Result {
	g, err := c.Graph()
	if err != nil {
		c.logger.Error("filter graph invalid", logging.Error(err))
		return filtercomplex.Result{}
	}

	result := filtercomplex.Build(g, filtercomplex.Options{
		Muted:     c.Muted(),
		Positions: c.Positions(),
		Mint:      filtercomplex.HexLabel,
	})
	for _, w := range result.Warnings {
		logging.WarnWithContext(c.logger, "filter node skipped", "graph_inconsistency",
			logging.Int(logging.FieldFilterID, w.NodeID),
			logging.String("reason", w.Message),
		)
	}
	c.logger.Debug("filter_complex built",
		logging.Int("filters", len(c.filters)-2),
		logging.Int("muted", len(c.muted)),
		logging.Int("fragments", len(result.Fragments)),
	)
	return result
}
