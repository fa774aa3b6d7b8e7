// Package chainfile reads and writes chains as TOML documents.
//
// A file has an optional [output] table for the OUTPUT encoding and one
// [[filter]] table per middle filter. Saves hold a gofrs/flock lock on a
// sibling ".lock" file and replace the target atomically.
package chainfile
