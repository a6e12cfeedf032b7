package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/ytfetch/internal/model"
)

func TestResolveVideo(t *testing.T) {
	tests := []struct {
		token    string
		selector string
	}{
		{"best", "bestvideo+bestaudio/best"},
		{"", "bestvideo+bestaudio/best"},
		{"worst", "worstvideo+worstaudio/worst"},
		{"720p", "bestvideo[height<=720]+bestaudio/best[height<=720]"},
		{"1080p", "bestvideo[height<=1080]+bestaudio/best[height<=1080]"},
	}

	for _, test := range tests {
		spec := Resolve(test.token, model.TypeVideo)
		assert.Equal(t, model.WantVideo, spec.Want, "token %q", test.token)
		assert.Equal(t, test.selector, spec.Selector(), "token %q", test.token)
	}
}

func TestResolveAudioIgnoresResolutionTokens(t *testing.T) {
	for _, token := range []string{"best", "worst", "720p", "137", ""} {
		spec := Resolve(token, model.TypeAudio)
		assert.Equal(t, model.WantAudio, spec.Want, "token %q", token)
		assert.Equal(t, "bestaudio/best", spec.Selector(), "token %q", token)
	}
}

func TestResolveBothKeepsCapLogic(t *testing.T) {
	spec := Resolve("480p", model.TypeBoth)
	assert.Equal(t, model.WantBoth, spec.Want)
	assert.Equal(t, 480, spec.Height)
	assert.Equal(t, "bestvideo[height<=480]+bestaudio/best[height<=480]", spec.Selector())
}

func TestResolvePassesUnknownLiteralsThrough(t *testing.T) {
	// Validation of format ids is the engine's job, not ours.
	for _, token := range []string{"137", "bestvideo[fps>30]", "22+140", "nonsense"} {
		spec := Resolve(token, model.TypeVideo)
		assert.Equal(t, token, spec.FormatID, "token %q", token)
		assert.Equal(t, token, spec.Selector(), "token %q", token)
	}
}

func TestNearestHeight(t *testing.T) {
	video := []model.FormatDescriptor{
		{ID: "v1", VCodec: "avc1", Height: 1080},
		{ID: "v2", VCodec: "avc1", Height: 720},
		{ID: "v3", VCodec: "vp9", Height: 360},
		{ID: "a1", ACodec: "opus"}, // no height, ignored
	}

	tests := []struct {
		requested int
		expected  int
	}{
		{720, 720},   // exact match
		{2160, 1080}, // above catalog max falls back to the max
		{480, 360},   // nearest not exceeding the cap
		{144, 360},   // nothing at or below: smallest available
		{0, 0},       // uncapped stays uncapped
	}

	for _, test := range tests {
		got := NearestHeight(test.requested, video)
		assert.Equal(t, test.expected, got, "requested %d", test.requested)
	}
}

func TestNearestHeightEmptyCatalog(t *testing.T) {
	assert.Equal(t, 720, NearestHeight(720, nil))
}
