// Package filters provides the concrete filter variants a chain is built from.
//
// Every variant satisfies Filter, which extends dag.Filter with a type name
// and display name. Input and Output are the structural sentinels bounding a
// chain; Volume, FFmpeg, and Custom contribute fragments. Custom is the only
// variant that can opt out of automatic output labels.
package filters
