package chainfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"ffab/internal/chain"
	"ffab/internal/filters"
)

//go:embed sample_chain.toml
var sampleChain string

// Param is one ordered key/value option of an ffmpeg filter entry.
type Param struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Output holds the OUTPUT sentinel's encoding settings.
type Output struct {
	Codec      string   `toml:"codec,omitempty"`
	SampleRate int      `toml:"sample_rate,omitempty"`
	Channels   int      `toml:"channels,omitempty"`
	Extra      []string `toml:"extra,omitempty"`
}

// Entry is one middle filter. Which fields apply depends on Type.
type Entry struct {
	Type  string `toml:"type"`
	Muted bool   `toml:"muted,omitempty"`

	Decibels float64 `toml:"decibels,omitempty"`

	Name              string  `toml:"name,omitempty"`
	Params            []Param `toml:"params,omitempty"`
	AdditionalOutputs bool    `toml:"additional_outputs,omitempty"`

	Command            string `toml:"command,omitempty"`
	ManualOutputLabels bool   `toml:"manual_output_labels,omitempty"`
}

// Document is the on-disk form of a chain.
type Document struct {
	Output  *Output `toml:"output,omitempty"`
	Filters []Entry `toml:"filter"`
}

// Sample returns the commented example chain file.
func Sample() string {
	return sampleChain
}

// Load reads and decodes the chain file at path.
func Load(path string, opts ...chain.Option) (*chain.Chain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chain file: %w", err)
	}
	c, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a chain document. Unknown keys are rejected so typos surface
// instead of silently producing a different graph.
func Parse(data []byte, opts ...chain.Option) (*chain.Chain, error) {
	var doc Document
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("parse chain: %s", strings.TrimSpace(strict.String()))
		}
		return nil, fmt.Errorf("parse chain: %w", err)
	}
	return doc.Build(opts...)
}

// Build materializes the document into a chain.
func (d Document) Build(opts ...chain.Option) (*chain.Chain, error) {
	c := chain.New(opts...)
	if d.Output != nil {
		out := filters.NewOutput()
		if d.Output.Codec != "" {
			out.Codec = d.Output.Codec
		}
		if d.Output.SampleRate != 0 {
			out.SampleRate = d.Output.SampleRate
		}
		out.Channels = d.Output.Channels
		out.Extra = append([]string(nil), d.Output.Extra...)
		if out.SampleRate < 0 || out.Channels < 0 {
			return nil, errors.New("output: sample_rate and channels must not be negative")
		}
		c.SetOutput(out)
	}

	for i, entry := range d.Filters {
		f, err := entry.filter()
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i+1, err)
		}
		pos, err := c.Add(f, -1)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i+1, err)
		}
		if entry.Muted {
			if err := c.SetMuted(pos, true); err != nil {
				return nil, fmt.Errorf("filter %d: %w", i+1, err)
			}
		}
	}
	return c, nil
}

func (e Entry) filter() (filters.Filter, error) {
	switch strings.ToLower(strings.TrimSpace(e.Type)) {
	case filters.TypeVolume:
		return filters.NewVolume(e.Decibels), nil
	case filters.TypeFFmpeg:
		if strings.TrimSpace(e.Name) == "" {
			return nil, errors.New("ffmpeg filter requires a name")
		}
		params := make([]filters.Param, 0, len(e.Params))
		for _, p := range e.Params {
			params = append(params, filters.Param{Key: p.Key, Value: p.Value})
		}
		f := filters.NewFFmpeg(e.Name, params...)
		f.AdditionalOutputs = e.AdditionalOutputs
		return f, nil
	case filters.TypeCustom:
		if strings.TrimSpace(e.Command) == "" {
			return nil, errors.New("custom filter requires a command")
		}
		f := filters.NewCustom(e.Command)
		f.Manual = e.ManualOutputLabels
		return f, nil
	case filters.TypeInput, filters.TypeOutput:
		return nil, fmt.Errorf("%s is implicit and cannot be listed", e.Type)
	case "":
		return nil, errors.New("type is required")
	}
	return nil, fmt.Errorf("%w %q", filters.ErrUnknownType, e.Type)
}

// FromChain captures a chain as a document.
func FromChain(c *chain.Chain) Document {
	var doc Document
	out := c.Output()
	doc.Output = &Output{
		Codec:      out.Codec,
		SampleRate: out.SampleRate,
		Channels:   out.Channels,
		Extra:      append([]string(nil), out.Extra...),
	}

	for pos, f := range c.Filters() {
		entry := Entry{Type: f.Type(), Muted: c.IsMuted(pos)}
		switch v := f.(type) {
		case *filters.Volume:
			entry.Decibels = v.Decibels
		case *filters.FFmpeg:
			entry.Name = v.Name
			entry.AdditionalOutputs = v.AdditionalOutputs
			for _, p := range v.Params {
				entry.Params = append(entry.Params, Param{Key: p.Key, Value: p.Value})
			}
		case *filters.Custom:
			entry.Command = v.Command
			entry.ManualOutputLabels = v.Manual
		default:
			continue
		}
		doc.Filters = append(doc.Filters, entry)
	}
	return doc
}

// Save writes c to path while holding an exclusive lock on path + ".lock".
// The file is replaced atomically.
func Save(path string, c *chain.Chain) error {
	data, err := toml.Marshal(FromChain(c))
	if err != nil {
		return fmt.Errorf("encode chain: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chain directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire chain lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return writeAtomic(path, data)
}

// WriteSample writes the example chain to path. Existing files are kept
// unless overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("chain file %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create chain directory: %w", err)
	}
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire chain lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	return writeAtomic(path, []byte(sampleChain))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp chain file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write chain file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close chain file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod chain file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace chain file: %w", err)
	}
	return nil
}
