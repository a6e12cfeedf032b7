package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/ytfetch/internal/common"
	"github.com/ytget/ytfetch/internal/model"
)

const sampleDump = `{
	"id": "dQw4w9WgXcQ",
	"title": "Example Video",
	"duration": 212.0,
	"uploader": "Example Channel",
	"view_count": 1234567,
	"formats": [
		{"format_id": "140", "ext": "m4a", "vcodec": "none", "acodec": "mp4a.40.2", "filesize": 3400000},
		{"format_id": "137", "ext": "mp4", "vcodec": "avc1", "acodec": "none", "height": 1080, "format_note": "1080p", "filesize_approx": 52000000.0},
		{"format_id": "22", "ext": "mp4", "vcodec": "avc1", "acodec": "mp4a.40.2", "height": 720, "resolution": "1280x720"}
	]
}`

func TestMediaJSONDecoding(t *testing.T) {
	var raw mediaJSON
	require.NoError(t, json.Unmarshal([]byte(sampleDump), &raw))

	assert.Equal(t, "dQw4w9WgXcQ", raw.ID)
	assert.Equal(t, "Example Video", raw.Title)
	assert.Equal(t, 212.0, raw.Duration)
	assert.Equal(t, int64(1234567), raw.ViewCount)
	require.Len(t, raw.Formats, 3)
}

func TestMapFormats(t *testing.T) {
	var raw mediaJSON
	require.NoError(t, json.Unmarshal([]byte(sampleDump), &raw))

	formats := mapFormats(raw.Formats)
	require.Len(t, formats, 3)

	audio := formats[0]
	assert.Equal(t, "140", audio.ID)
	assert.Equal(t, model.CodecNone, audio.VCodec)
	assert.Equal(t, "audio only", audio.Resolution)
	assert.Equal(t, int64(3400000), audio.Filesize)
	assert.True(t, audio.AudioOnly())

	video := formats[1]
	assert.Equal(t, "137", video.ID)
	assert.Equal(t, 1080, video.Height)
	assert.Equal(t, "1080p", video.Resolution)
	assert.Equal(t, "1080p", video.Quality)
	assert.Equal(t, int64(52000000), video.Filesize, "approximate size used when exact one is absent")
	assert.True(t, video.HasVideo())

	muxed := formats[2]
	assert.Equal(t, "1280x720", muxed.Resolution)
	assert.Equal(t, int64(0), muxed.Filesize, "unknown size stays zero")
}

func TestMapFormatsMissingCodecsDefaultToNone(t *testing.T) {
	formats := mapFormats([]formatJSON{{FormatID: "x"}})
	require.Len(t, formats, 1)
	assert.Equal(t, model.CodecNone, formats[0].VCodec)
	assert.Equal(t, model.CodecNone, formats[0].ACodec)
}

func TestFinalPathFallback(t *testing.T) {
	e := NewYTDLP(testLogger())

	videoReq := &model.DownloadRequest{
		Quality:  model.QualitySpec{Want: model.WantVideo},
		DestBase: "out/clip",
	}
	assert.Equal(t, "out/clip.mp4", e.finalPath(nil, videoReq))

	audioReq := &model.DownloadRequest{
		Quality:  model.QualitySpec{Want: model.WantAudio},
		DestBase: "out/track",
	}
	assert.Equal(t, "out/track.mp3", e.finalPath(nil, audioReq))
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.youtube.com/playlist?list=PL123abc", "PL123abc"},
		{"https://www.youtube.com/watch?v=abc&list=PLxyz", "PLxyz"},
		{"https://m.youtube.com/playlist?list=PL999&index=4", "PL999"},
	}

	for _, test := range tests {
		id, err := extractPlaylistID(test.url)
		require.NoError(t, err, "url %q", test.url)
		assert.Equal(t, test.expected, id, "url %q", test.url)
	}
}

func TestExtractPlaylistIDRejectsNonPlaylistURLs(t *testing.T) {
	for _, raw := range []string{
		"https://www.youtube.com/watch?v=abc",
		"not a url",
		"",
	} {
		_, err := extractPlaylistID(raw)
		require.Error(t, err, "url %q", raw)
		assert.ErrorIs(t, err, common.ErrMediaUnavailable, "url %q", raw)
	}
}
