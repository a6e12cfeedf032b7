// Package catalog classifies engine-reported renditions for selection and
// presentation.
package catalog

import "github.com/ytget/ytfetch/internal/model"

// Catalog groups renditions by capability. Both groups keep the
// engine-reported order; re-sorting and truncation belong to the caller.
type Catalog struct {
	Video []model.FormatDescriptor // anything with a video track, muxed included
	Audio []model.FormatDescriptor // audio-only renditions
}

// Classify splits descriptors into video-capable and audio-only groups.
// A descriptor with neither a video nor an audio track is invalid and is
// dropped.
func Classify(formats []model.FormatDescriptor) Catalog {
	var c Catalog
	for _, f := range formats {
		switch {
		case f.HasVideo():
			c.Video = append(c.Video, f)
		case f.AudioOnly():
			c.Audio = append(c.Audio, f)
		}
	}
	return c
}
