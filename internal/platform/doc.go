package platform

// Package platform contains OS/platform integration glue: filename
// sanitizing, output path resolution, and default download locations.
