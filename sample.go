package main

// SamplePlayer plays a mono sample from a cursor without looping.
type SamplePlayer struct {
	samples []Smp
	cursor  int
}

func NewSamplePlayer(samples []Smp) *SamplePlayer {
	return &SamplePlayer{samples: samples}
}

// Trigger rewinds the cursor, cutting off any playback in progress.
func (p *SamplePlayer) Trigger() {
	p.cursor = 0
}

// PlayOnce returns the sample under the cursor and advances it. Past the
// end it returns 0 until the next Trigger.
func (p *SamplePlayer) PlayOnce() Smp {
	if p.cursor >= len(p.samples) {
		return 0
	}
	smp := p.samples[p.cursor]
	p.cursor++
	return smp
}

func (p *SamplePlayer) Position() int {
	return p.cursor
}

func (p *SamplePlayer) Len() int {
	return len(p.samples)
}

func (p *SamplePlayer) Done() bool {
	return p.cursor >= len(p.samples)
}
