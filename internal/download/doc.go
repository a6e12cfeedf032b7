package download

// Package download implements the core download orchestration on top of the
// external engine adapters. It drives the single-item state machine (info
// fetch, quality/trim/destination resolution, request build, delegation) and
// playlist index-range iteration with bounded parallelism and per-item
// failure isolation.
