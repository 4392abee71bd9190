// Package audio plays the background music and sound effects.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// stream is a decoded 16-bit stereo PCM stream of known length.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// MaxEffectVoices caps how many copies of the sound effect play at once.
const MaxEffectVoices = 8

// voice is the part of *audio.Player the mixer drives.
type voice interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	Close() error
}

// Mixer owns the audio context, one looping music track and one
// retriggerable sound effect.
type Mixer struct {
	ctx         *audio.Context
	sampleRate  int
	musicVolume float64
	soundVolume float64

	music  voice
	effect []byte // Decoded PCM, replayed from memory on every trigger

	newEffect func() voice
	effects   []voice // Effect players that may still be sounding
}

// NewMixer creates the audio context. ebiten allows only one context per
// process, so only one Mixer may exist.
func NewMixer(sampleRate int, musicVolume, soundVolume float64) *Mixer {
	m := &Mixer{
		ctx:         audio.NewContext(sampleRate),
		sampleRate:  sampleRate,
		musicVolume: musicVolume,
		soundVolume: soundVolume,
	}
	m.newEffect = func() voice {
		player := m.ctx.NewPlayerFromBytes(m.effect)
		player.SetVolume(m.soundVolume)
		return player
	}
	return m
}

// LoadMusic decodes a music file and prepares it to loop forever.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (m *Mixer) LoadMusic(path string) error {
	s, err := decodeFile(path, m.sampleRate)
	if err != nil {
		return err
	}

	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return fmt.Errorf("failed to create music player for %s: %w", path, err)
	}
	player.SetVolume(m.musicVolume)

	if m.music != nil {
		m.music.Close()
	}
	m.music = player
	log.Printf("[Audio] Loaded music %s", path)
	return nil
}

// LoadEffect decodes a sound effect fully into memory.
func (m *Mixer) LoadEffect(path string) error {
	s, err := decodeFile(path, m.sampleRate)
	if err != nil {
		return err
	}

	pcm, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("failed to read sound effect %s: %w", path, err)
	}
	m.effect = pcm
	log.Printf("[Audio] Loaded sound effect %s (%d bytes)", path, len(pcm))
	return nil
}

// PlayMusic starts the music from the top.
func (m *Mixer) PlayMusic() {
	if m.music == nil {
		return
	}
	if err := m.music.Rewind(); err != nil {
		log.Printf("[Audio] Failed to rewind music: %v", err)
	}
	m.music.Play()
}

// PauseMusic stops the music where it is.
func (m *Mixer) PauseMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
}

// PlayEffect plays the sound effect once. Every call gets its own player, so
// rapid triggers overlap rather than cutting each other off. Once
// MaxEffectVoices are sounding, further triggers are dropped until one ends.
func (m *Mixer) PlayEffect() {
	if m.effect == nil {
		return
	}
	m.reapEffects()
	if len(m.effects) >= MaxEffectVoices {
		return
	}
	player := m.newEffect()
	player.Play()
	m.effects = append(m.effects, player)
}

// reapEffects closes and forgets effect players that have finished.
func (m *Mixer) reapEffects() {
	live := m.effects[:0]
	for _, p := range m.effects {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("[Audio] Failed to close effect player: %v", err)
		}
	}
	clear(m.effects[len(live):])
	m.effects = live
}

func decodeFile(path string, sampleRate int) (stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	s, err := decode(filepath.Ext(path), data, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return s, nil
}

// decode picks a decoder by file extension and resamples to sampleRate.
func decode(ext string, data []byte, sampleRate int) (stream, error) {
	reader := bytes.NewReader(data)

	var (
		s   stream
		err error
	)
	switch strings.ToLower(ext) {
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(sampleRate, reader)
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(sampleRate, reader)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(sampleRate, reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %q (supported: .mp3, .ogg, .wav)", ext)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
