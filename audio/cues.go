package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/system"
)

const SampleRate = beep.SampleRate(44100)

// Cue names a short synthesized sound tied to a gameplay event.
type Cue int

const (
	CueNone Cue = iota
	CuePortal
	CueAlert
	CueRetreat
)

func (c Cue) String() string {
	switch c {
	case CuePortal:
		return "portal"
	case CueAlert:
		return "alert"
	case CueRetreat:
		return "retreat"
	default:
		return "none"
	}
}

// CueFor maps a world event to its cue. Events without a sound report false.
func CueFor(evt ecs.Event) (Cue, bool) {
	switch evt.Type {
	case system.EventPortalTriggered:
		return CuePortal, true
	case system.EventMobTarget:
		return CueAlert, true
	case system.EventMobReturning:
		return CueRetreat, true
	}
	return CueNone, false
}

// Sound builds the streamer for a cue.
func Sound(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CuePortal:
		return withVolume(beep.Seq(
			Tone(523.25, 80*time.Millisecond, WaveSine, rate),
			Tone(783.99, 140*time.Millisecond, WaveSine, rate),
		), 0.5)
	case CueAlert:
		return withVolume(Tone(220, 90*time.Millisecond, WaveSquare, rate), 0.25)
	case CueRetreat:
		return withVolume(Tone(164.81, 120*time.Millisecond, WaveSine, rate), 0.3)
	}
	return beep.Silence(0)
}

// Cues plays event sounds through the system speaker. A Cues that was never
// opened drops every sound, so headless runs can share the same wiring.
type Cues struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	open   bool
	played map[Cue]int
}

func NewCues() *Cues {
	return &Cues{mixer: &beep.Mixer{}, played: map[Cue]int{}}
}

// Open initializes the speaker. It is safe to call more than once.
func (c *Cues) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.open {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.open = true
	return nil
}

// Handle plays the cue for evt, if any.
func (c *Cues) Handle(evt ecs.Event) {
	cue, ok := CueFor(evt)
	if !ok {
		return
	}
	c.mu.Lock()
	c.played[cue]++
	open := c.open
	c.mu.Unlock()
	if !open {
		return
	}
	speaker.Lock()
	c.mixer.Add(Sound(cue, SampleRate))
	speaker.Unlock()
}

// Played reports how many times cue was requested.
func (c *Cues) Played(cue Cue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played[cue]
}

func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.open = false
}
