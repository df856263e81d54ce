// Package sound plays short generated tones for match events.
package sound

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"ebiten-pong/ecs"
	"ebiten-pong/systems"
)

const sampleRate = 44100

// Tone frequencies in Hz
const (
	toneGoal  = 880.0
	toneServe = 440.0
)

// SoundSystem plays a blip whenever a point is scored or the ball is served
type SoundSystem struct {
	audioContext *audio.Context
	goal         []byte
	serve        []byte
	volume       float64
	logger       *zap.Logger
}

// NewSoundSystem creates a sound system. Only one audio context may exist per process.
func NewSoundSystem(volume float64, logger *zap.Logger) *SoundSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SoundSystem{
		audioContext: audio.NewContext(sampleRate),
		goal:         tonePCM(toneGoal, 0.15),
		serve:        tonePCM(toneServe, 0.08),
		logger:       logger,
	}
	s.SetVolume(volume)
	return s
}

// Observe subscribes to game events on q
func (s *SoundSystem) Observe(q *ecs.EventQueue) {
	q.Subscribe(systems.EventGainPoint, func(ecs.Event) { s.play(s.goal) })
	q.Subscribe(systems.EventResetBall, func(ecs.Event) { s.play(s.serve) })
}

// SetVolume sets the playback volume (0.0 to 1.0)
func (s *SoundSystem) SetVolume(volume float64) {
	s.volume = min(max(volume, 0), 1)
}

func (s *SoundSystem) play(pcm []byte) {
	if s.volume <= 0 {
		return
	}
	player := s.audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(s.volume)
	player.Play()
}

// tonePCM renders a sine tone with a linear fade-out as 16-bit little-endian stereo
func tonePCM(freq, seconds float64) []byte {
	samples := int(seconds * sampleRate)
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		fade := 1 - float64(i)/float64(samples)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * fade * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
