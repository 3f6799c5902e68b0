package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Realistic ffprobe JSON for an H.264 landscape MP4 with AAC audio and
// attached cover art (which must not be picked as the primary video stream).
const sampleLandscape = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "pix_fmt": "yuvj444p",
      "disposition": { "default": 0, "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "pix_fmt": "yuv420p",
      "disposition": { "default": 1, "attached_pic": 0 }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "disposition": { "default": 1, "attached_pic": 0 }
    }
  ],
  "format": {
    "filename": "/media/clips/intro.mp4",
    "duration": "12.480000"
  }
}`

// Portrait phone clip without audio.
const samplePortrait = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "hevc",
      "codec_type": "video",
      "width": 1080,
      "height": 1920,
      "pix_fmt": "yuv420p10le",
      "disposition": { "default": 1, "attached_pic": 0 }
    }
  ],
  "format": { "duration": "7.2" }
}`

// Audio-only file: no usable video stream.
const sampleAudioOnly = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mp3",
      "codec_type": "audio",
      "disposition": { "default": 1 }
    }
  ],
  "format": { "duration": "180.0" }
}`

func TestParseJSON_Landscape(t *testing.T) {
	info, err := ParseJSON([]byte(sampleLandscape))
	require.NoError(t, err)

	assert.Equal(t, 1920, info.Width)
	assert.Equal(t, 1080, info.Height)
	assert.Equal(t, "h264", info.Codec)
	assert.Equal(t, "yuv420p", info.PixFmt)
	assert.True(t, info.HasAudio)
	assert.InDelta(t, 12.48, info.Duration, 0.001)
	assert.Equal(t, "1920x1080", info.Resolution())
}

func TestParseJSON_Portrait(t *testing.T) {
	info, err := ParseJSON([]byte(samplePortrait))
	require.NoError(t, err)

	assert.Equal(t, 1080, info.Width)
	assert.Equal(t, 1920, info.Height)
	assert.False(t, info.HasAudio)
}

func TestParseJSON_NoVideoStream(t *testing.T) {
	_, err := ParseJSON([]byte(sampleAudioOnly))
	assert.ErrorIs(t, err, ErrNoVideoStream)
}

func TestParseJSON_EmptyStreams(t *testing.T) {
	_, err := ParseJSON([]byte(`{"streams":[],"format":{}}`))
	assert.ErrorIs(t, err, ErrNoVideoStream)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON([]byte(`{not json`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoVideoStream)
}

func TestResolution_Degenerate(t *testing.T) {
	m := &MediaInfo{Width: 0, Height: 1080}
	assert.Equal(t, "unknown", m.Resolution())
}
