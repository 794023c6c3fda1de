// Package store persists simulation artifacts.
//
// Two sinks:
//
//   - Raw binary dumps: headerless little-endian float64 streams for the
//     coordinate table (.cluster), the walk tensor (.walks) and the
//     analysis table (.data). Shapes are implied by the run
//     configuration, so readers must supply them; this matches the raw
//     binary convention of scientific array dumps.
//   - RunStore: a SQLite index of runs (modernc pure-Go driver) keyed by
//     a UUID, recording the full configuration as JSON, summary numbers
//     and the artifact paths, so past runs can be listed and reproduced.
//
// The numeric core never imports this package; it is the sink side of
// the pipeline.
package store
