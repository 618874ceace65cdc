package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sound is an undecoded sound file. Decoding happens when a player is made,
// since it needs the audio context's sample rate.
type Sound struct {
	Name string
	Path string
	Data []byte
}

// Format returns the lower-case file extension without the dot.
func (s *Sound) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(s.Path)), ".")
}

// Decode returns a PCM stream resampled to sampleRate.
func (s *Sound) Decode(sampleRate int) (io.ReadSeeker, error) {
	reader := bytes.NewReader(s.Data)
	switch s.Format() {
	case "wav":
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", s.Name, err)
		}
		return stream, nil
	case "mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode mp3 %q: %w", s.Name, err)
		}
		return stream, nil
	case "ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode ogg %q: %w", s.Name, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("assets: unsupported sound format %q for %q", s.Format(), s.Name)
	}
}

// Player decodes the sound and wraps it in a player on ctx. Data in an
// unknown format is assumed to already be PCM in the context's format.
func (s *Sound) Player(ctx *audio.Context) (*audio.Player, error) {
	switch s.Format() {
	case "wav", "mp3", "ogg":
		stream, err := s.Decode(ctx.SampleRate())
		if err != nil {
			return nil, err
		}
		return ctx.NewPlayer(stream)
	default:
		return ctx.NewPlayerFromBytes(s.Data), nil
	}
}
