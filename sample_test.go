package main

import (
	"testing"
)

func TestSamplePlayerPlayOnce(t *testing.T) {
	p := NewSamplePlayer([]Smp{0.5, -0.25, 1})
	want := []Smp{0.5, -0.25, 1, 0, 0}
	for i, w := range want {
		if got := p.PlayOnce(); got != w {
			t.Errorf("PlayOnce() #%d = %v, want %v", i, got, w)
		}
	}
	if !p.Done() {
		t.Error("Done() = false after end of buffer")
	}
	if p.Position() != p.Len() {
		t.Errorf("Position() = %d past the end, want %d", p.Position(), p.Len())
	}
}

func TestSamplePlayerRetrigger(t *testing.T) {
	p := NewSamplePlayer([]Smp{1, 2, 3, 4})
	p.PlayOnce()
	p.PlayOnce()
	p.Trigger()
	if got := p.PlayOnce(); got != 1 {
		t.Errorf("PlayOnce() after Trigger = %v, want 1", got)
	}
	for range 10 {
		p.PlayOnce()
	}
	p.Trigger()
	if p.Done() {
		t.Error("Done() = true after Trigger")
	}
	if got := p.PlayOnce(); got != 1 {
		t.Errorf("PlayOnce() after exhausted Trigger = %v, want 1", got)
	}
}

func TestSamplePlayerEmpty(t *testing.T) {
	p := NewSamplePlayer(nil)
	p.Trigger()
	if got := p.PlayOnce(); got != 0 {
		t.Errorf("PlayOnce() = %v, want 0", got)
	}
}
