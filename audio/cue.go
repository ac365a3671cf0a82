package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies a short feedback sound
type Cue uint8

const (
	CuePlacement Cue = iota
	CueBoundsHit
)

func (c Cue) String() string {
	switch c {
	case CuePlacement:
		return "placement"
	case CueBoundsHit:
		return "bounds"
	default:
		return "unknown"
	}
}

// CuePlayer mixes camera feedback cues onto the speaker
// Without an audio device it stays silent; the frame loop never sees an error from Play
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferPeriod)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer and releases the speaker
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// ToggleMute flips mute state and returns the new value
func (p *CuePlayer) ToggleMute() bool {
	for {
		old := p.muted.Load()
		if p.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Play queues a cue, returns false when not played
func (p *CuePlayer) Play(c Cue) bool {
	if p.muted.Load() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}

	s, err := cueStreamer(c, sampleRate)
	if err != nil {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// HandleEvent maps camera events to cues, usable as a World listener
func (p *CuePlayer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventPlacementResolved:
		p.Play(CuePlacement)
	case event.EventCameraClamped:
		p.Play(CueBoundsHit)
	}
}

// cueStreamer builds a finite attenuated streamer for c
func cueStreamer(c Cue, sr beep.SampleRate) (beep.Streamer, error) {
	var s beep.Streamer
	switch c {
	case CuePlacement:
		root, err := generators.SineTone(sr, parameter.CuePlacementFreq)
		if err != nil {
			return nil, err
		}
		fifth, err := generators.SineTone(sr, parameter.CuePlacementFreq*parameter.CuePlacementInterval)
		if err != nil {
			return nil, err
		}
		n := sr.N(parameter.CuePlacementDuration)
		s = beep.Seq(beep.Take(n, root), beep.Take(n, fifth))
	case CueBoundsHit:
		tone, err := generators.SineTone(sr, parameter.CueBoundsFreq)
		if err != nil {
			return nil, err
		}
		s = beep.Take(sr.N(parameter.CueBoundsDuration), tone)
	default:
		return nil, fmt.Errorf("unknown cue %d", c)
	}

	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   parameter.CueVolume,
	}, nil
}
