package audio

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// Soundtrack plays background music once the model is visible
type Soundtrack interface {
	Play(volume float64) error
	Close() error
}

// ebiten allows a single audio context per process
var (
	contextOnce   sync.Once
	sharedContext *ebitenaudio.Context
)

func audioContext() *ebitenaudio.Context {
	contextOnce.Do(func() {
		sharedContext = ebitenaudio.NewContext(sampleRate)
	})
	return sharedContext
}

// Player streams an MP3 file through the ebiten audio context
type Player struct {
	path string

	mu     sync.Mutex
	player *ebitenaudio.Player
}

// NewPlayer creates a player for the MP3 at path. Nothing is read until Play.
func NewPlayer(path string) *Player {
	return &Player{path: path}
}

// Play decodes the file and starts playback at volume (0..1). Calling Play
// again while a track is loaded restarts it with the new volume.
func (p *Player) Play(volume float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player == nil {
		data, err := os.ReadFile(p.path)
		if err != nil {
			return fmt.Errorf("could not read soundtrack: %w", err)
		}
		stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("could not decode soundtrack: %w", err)
		}
		player, err := audioContext().NewPlayer(stream)
		if err != nil {
			return fmt.Errorf("could not create audio player: %w", err)
		}
		p.player = player
	} else if err := p.player.Rewind(); err != nil {
		return fmt.Errorf("could not rewind soundtrack: %w", err)
	}

	p.player.SetVolume(volume)
	p.player.Play()
	return nil
}

// Close stops playback and releases the player
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	return err
}

// Nop is a silent soundtrack
type Nop struct{}

func (Nop) Play(float64) error { return nil }
func (Nop) Close() error { return nil }
