package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPlayMissingFile(t *testing.T) {
	p := NewPlayer(filepath.Join(t.TempDir(), "soundtrack.mp3"))
	err := p.Play(0.1)
	if err == nil {
		t.Fatal("Expected error for missing soundtrack")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestCloseWithoutPlay(t *testing.T) {
	p := NewPlayer("unused.mp3")
	if err := p.Close(); err != nil {
		t.Errorf("Close before Play should be a no-op, got %v", err)
	}
}

func TestNopSatisfiesSoundtrack(t *testing.T) {
	var s Soundtrack = Nop{}
	if err := s.Play(0.1); err != nil {
		t.Errorf("Nop.Play returned %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Nop.Close returned %v", err)
	}
}

var _ Soundtrack = (*Player)(nil)
