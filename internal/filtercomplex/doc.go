// Package filtercomplex compiles a linear dag.Graph into the semicolon-joined
// expression ffmpeg accepts for -filter_complex.
//
// Build walks the graph's topological order once, skipping the INPUT/OUTPUT
// sentinels, muted positions, and filters with empty fragments, and threads a
// single "current chain input" label through the surviving filters:
//
//   - the first surviving filter reads the primary input [0:a]
//   - every non-final filter writes a label minted from its id
//   - the last surviving filter writes the sink label [out]
//
// Filters that produce additional outputs always write a minted label and
// never become the next chain input. Filters with manual output labels are
// emitted after input substitution only.
//
// Build is a pure function of its inputs. Missing node lookups are skipped
// and reported as warnings rather than errors.
package filtercomplex
