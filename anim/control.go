package anim

// TickRate is the fixed simulation rate clips are timed against.
const TickRate = 60.0

// Clip is a named run of sprite sheet indices.
type Clip struct {
	Name   string
	Frames []int
	FPS    float64
	Loop   bool
}

// Control plays one clip. A fresh control starts at the first frame.
type Control struct {
	id      ID
	clip    *Clip
	frame   int
	timer   int
	playing bool
}

// NewLooping starts clip from its first frame and repeats it.
func NewLooping(id ID, clip *Clip) *Control {
	c := &Control{id: id, clip: clip, playing: true}
	if clip != nil {
		looped := *clip
		looped.Loop = true
		c.clip = &looped
	}
	return c
}

func (c *Control) ID() ID {
	if c == nil {
		return None
	}
	return c.id
}

func (c *Control) Playing() bool {
	return c != nil && c.playing
}

func (c *Control) Frame() int {
	if c == nil {
		return 0
	}
	return c.frame
}

func (c *Control) Stop() {
	if c != nil {
		c.playing = false
	}
}

// Advance moves the playhead by one simulation tick.
func (c *Control) Advance() {
	if c == nil || !c.playing || c.clip == nil || len(c.clip.Frames) == 0 {
		return
	}
	ticksPerFrame := 1
	if c.clip.FPS > 0 {
		ticksPerFrame = max(1, int(TickRate/c.clip.FPS))
	}

	c.timer++
	if c.timer < ticksPerFrame {
		return
	}
	c.timer = 0
	c.frame++
	if c.frame >= len(c.clip.Frames) {
		if c.clip.Loop {
			c.frame = 0
			return
		}
		c.frame = len(c.clip.Frames) - 1
		c.playing = false
	}
}

// SpriteIndex is the sheet index of the current frame, or -1 when there is
// nothing to show.
func (c *Control) SpriteIndex() int {
	if c == nil || c.clip == nil || len(c.clip.Frames) == 0 {
		return -1
	}
	return c.clip.Frames[c.frame]
}
