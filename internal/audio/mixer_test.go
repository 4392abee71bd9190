package audio

import (
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/alienpatrol/internal/placeholders"
)

func TestDecodeWAV(t *testing.T) {
	samples := placeholders.MoveBlip(44100)
	data, err := placeholders.EncodeWAV(samples, 44100)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}

	s, err := decode(".WAV", data, 44100)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	// Mono 16-bit input is widened to 16-bit stereo
	if want := int64(len(samples) * 4); s.Length() != want {
		t.Errorf("Expected stream length %d, got %d", want, s.Length())
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	if _, err := decode(".flac", []byte("fLaC"), 44100); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := decodeFile(filepath.Join(t.TempDir(), "missing.wav"), 44100); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDecodeFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	if err := os.WriteFile(path, []byte("not a wav file"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := decodeFile(path, 44100); err == nil {
		t.Error("Expected error for corrupt file")
	}
}

// fakeVoice stands in for an *audio.Player.
type fakeVoice struct {
	playing bool
	rewinds int
	closed  bool
}

func (v *fakeVoice) Play() { v.playing = true }

func (v *fakeVoice) Pause() { v.playing = false }

func (v *fakeVoice) IsPlaying() bool { return v.playing }

func (v *fakeVoice) Close() error {
	v.closed = true
	v.playing = false
	return nil
}

func (v *fakeVoice) Rewind() error {
	v.rewinds++
	return nil
}

// newTestMixer builds a mixer without an audio context. Effect players come
// from the returned slice pointer.
func newTestMixer() (*Mixer, *[]*fakeVoice) {
	var made []*fakeVoice
	m := &Mixer{
		effect: []byte{0, 0, 0, 0},
		newEffect: func() voice {
			v := &fakeVoice{}
			made = append(made, v)
			return v
		},
	}
	return m, &made
}

func TestPlayAndPauseMusic(t *testing.T) {
	m, _ := newTestMixer()
	music := &fakeVoice{}
	m.music = music

	m.PlayMusic()
	if !music.playing {
		t.Fatal("Expected music to be playing")
	}
	if music.rewinds != 1 {
		t.Errorf("Expected music to restart from the top, got %d rewinds", music.rewinds)
	}

	m.PauseMusic()
	if music.playing {
		t.Error("Expected music to be paused")
	}

	m.PlayMusic()
	if !music.playing || music.rewinds != 2 {
		t.Errorf("Expected music restarted, playing=%v rewinds=%d", music.playing, music.rewinds)
	}
}

func TestMixerWithoutTracksIsSilent(t *testing.T) {
	m := &Mixer{}

	// None of these may panic before anything is loaded
	m.PlayMusic()
	m.PauseMusic()
	m.PlayEffect()

	if len(m.effects) != 0 {
		t.Errorf("Expected no effect players, got %d", len(m.effects))
	}
}

func TestPlayEffectOverlaps(t *testing.T) {
	m, made := newTestMixer()

	m.PlayEffect()
	m.PlayEffect()

	if len(*made) != 2 {
		t.Fatalf("Expected a player per trigger, got %d", len(*made))
	}
	for i, v := range *made {
		if !v.playing {
			t.Errorf("Expected effect player %d to be playing", i)
		}
	}
}

func TestPlayEffectCapsLiveVoices(t *testing.T) {
	m, made := newTestMixer()

	for range MaxEffectVoices + 3 {
		m.PlayEffect()
	}
	if len(*made) != MaxEffectVoices {
		t.Fatalf("Expected %d players at the cap, got %d", MaxEffectVoices, len(*made))
	}

	// One finishes, which frees a slot for the next trigger
	(*made)[0].playing = false
	m.PlayEffect()

	if len(*made) != MaxEffectVoices+1 {
		t.Errorf("Expected a new player after one finished, got %d", len(*made))
	}
	if !(*made)[0].closed {
		t.Error("Expected the finished player to be closed")
	}
	if len(m.effects) != MaxEffectVoices {
		t.Errorf("Expected %d live players, got %d", MaxEffectVoices, len(m.effects))
	}
}
