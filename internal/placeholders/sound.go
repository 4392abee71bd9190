package placeholders

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// WAV file header for 16-bit PCM (44 bytes)
type wavHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // 36 + data size
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

// WriteWAV writes mono 16-bit PCM samples as a WAV file.
func WriteWAV(w io.Writer, samples []int16, sampleRate int) error {
	dataSize := uint32(len(samples) * 2)
	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("failed to write WAV samples: %w", err)
	}
	return nil
}

// Tone synthesizes a sine wave with a short linear fade at both ends so
// notes join without clicks.
func Tone(freq, seconds, amplitude float64, sampleRate int) []int16 {
	n := int(seconds * float64(sampleRate))
	fade := sampleRate / 200
	samples := make([]int16, n)

	for i := range samples {
		gain := amplitude
		if i < fade {
			gain *= float64(i) / float64(fade)
		} else if n-i < fade {
			gain *= float64(n-i) / float64(fade)
		}
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		samples[i] = int16(v * gain * math.MaxInt16)
	}
	return samples
}

// Melody plays notes back to back. A zero frequency is a rest.
func Melody(notes []float64, noteSeconds, amplitude float64, sampleRate int) []int16 {
	var samples []int16
	for _, freq := range notes {
		if freq == 0 {
			samples = append(samples, make([]int16, int(noteSeconds*float64(sampleRate)))...)
			continue
		}
		samples = append(samples, Tone(freq, noteSeconds, amplitude, sampleRate)...)
	}
	return samples
}

// A short minor arpeggio that loops cleanly.
var backgroundNotes = []float64{
	220.00, 261.63, 329.63, 261.63,
	196.00, 246.94, 293.66, 246.94,
	174.61, 220.00, 261.63, 220.00,
	164.81, 207.65, 246.94, 0,
}

// BackgroundMusic synthesizes the looping placeholder tune.
func BackgroundMusic(sampleRate int) []int16 {
	return Melody(backgroundNotes, 0.25, 0.3, sampleRate)
}

// MoveBlip synthesizes the short footstep blip.
func MoveBlip(sampleRate int) []int16 {
	return Tone(880, 0.05, 0.5, sampleRate)
}

// EncodeWAV returns samples as WAV file bytes.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, samples, sampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveWAV writes samples to a WAV file, creating parent directories.
func SaveWAV(samples []int16, sampleRate int, path string) error {
	data, err := EncodeWAV(samples, sampleRate)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}
