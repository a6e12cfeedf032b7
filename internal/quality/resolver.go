// Package quality maps user quality tokens onto engine format selections.
package quality

import (
	"regexp"
	"strconv"

	"github.com/ytget/ytfetch/internal/model"
)

// Keyword quality tokens.
const (
	Best  = "best"
	Worst = "worst"
)

var resolutionToken = regexp.MustCompile(`^(\d+)p$`)

// Resolve maps a quality token plus a download type into a QualitySpec.
// Pure rules, no I/O:
//
//   - audio requests always want the best audio-only rendition; a resolution
//     token like "720p" has no audio meaning and is ignored
//   - "best"/"worst" are extremal selections over video+muxed candidates
//   - "<digits>p" caps the vertical resolution; the orchestrator clamps the
//     requested against the actual catalog before the selector is rendered
//   - any other literal is treated as an explicit format id and passed
//     through verbatim; the engine is the authority on which ids exist, so
//     unknown literals never fail here
func Resolve(token string, typ model.DownloadType) model.QualitySpec {
	if typ == model.TypeAudio {
		return model.QualitySpec{Want: model.WantAudio}
	}

	want := model.WantVideo
	if typ == model.TypeBoth {
		want = model.WantBoth
	}

	switch token {
	case Best, "":
		return model.QualitySpec{Want: want}
	case Worst:
		return model.QualitySpec{Want: want, Worst: true}
	}

	if m := resolutionToken.FindStringSubmatch(token); m != nil {
		height, err := strconv.Atoi(m[1])
		if err == nil && height > 0 {
			return model.QualitySpec{Want: want, Height: height}
		}
	}

	return model.QualitySpec{Want: want, FormatID: token}
}

// NearestHeight resolves a requested resolution cap against the renditions
// actually on offer: the greatest available height not exceeding the cap. An
// exact match wins; when everything on offer is above the cap, the smallest
// available height is used so the request still resolves deterministically.
// A cap of zero, or an empty video group, is returned unchanged.
func NearestHeight(requested int, video []model.FormatDescriptor) int {
	if requested <= 0 {
		return requested
	}

	below, above := 0, 0
	for _, f := range video {
		if f.Height <= 0 {
			continue
		}
		if f.Height <= requested && f.Height > below {
			below = f.Height
		}
		if f.Height > requested && (above == 0 || f.Height < above) {
			above = f.Height
		}
	}

	if below > 0 {
		return below
	}
	if above > 0 {
		return above
	}
	return requested
}
