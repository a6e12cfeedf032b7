package model

// Package model defines domain data structures used across the app: media
// metadata, format descriptors, quality/trim specifications, download
// requests/results, and task status enums with explicit state transitions.
