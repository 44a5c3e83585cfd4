package anim

import "testing"

func TestSelect(t *testing.T) {
	cases := []struct {
		h, v float64
		want ID
	}{
		{0, 0, Idle},
		{1, 0, GoRight},
		{-1, 0, GoLeft},
		{0, 1, GoForward},
		{0, -1, GoBackward},
		{1, 1, GoRightForward},
		{1, -1, GoRightBackward},
		{-1, -1, GoLeftBackward},
		{-1, 1, GoLeftForward},
		{0.2, -0.7, GoRightBackward},
	}

	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			if got := Select(c.h, c.v); got != c.want {
				t.Fatalf("Select(%v, %v): expected %v, got %v", c.h, c.v, c.want, got)
			}
		})
	}
}

func TestParseRoundTripsNames(t *testing.T) {
	if len(All()) != Count {
		t.Fatalf("expected %d animations, got %d", Count, len(All()))
	}
	for _, id := range All() {
		got, ok := Parse(id.String())
		if !ok || got != id {
			t.Fatalf("Parse(%q): expected %v, got %v (ok=%v)", id.String(), id, got, ok)
		}
	}
	if _, ok := Parse("none"); ok {
		t.Fatalf("none is not a selectable animation")
	}
}

func TestControlAdvanceLoops(t *testing.T) {
	c := NewLooping(GoRight, &Clip{Name: "go_right", Frames: []int{4, 5, 6}, FPS: 30})
	if c.SpriteIndex() != 4 {
		t.Fatalf("expected first frame, got %d", c.SpriteIndex())
	}

	var seen []int
	for range 6 {
		c.Advance()
		seen = append(seen, c.SpriteIndex())
	}
	want := []int{4, 5, 5, 6, 6, 4}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("tick %d: expected sprite %d, got %d (all %v)", i, want[i], seen[i], seen)
		}
	}
	if !c.Playing() {
		t.Fatalf("looping control should keep playing")
	}
}

func TestControlStop(t *testing.T) {
	c := NewLooping(Idle, &Clip{Frames: []int{0, 1}, FPS: 60})
	c.Stop()
	c.Advance()
	if c.Frame() != 0 {
		t.Fatalf("stopped control should not advance, at frame %d", c.Frame())
	}

	var empty *Control
	if empty.SpriteIndex() != -1 || empty.ID() != None {
		t.Fatalf("nil control should report nothing")
	}
}
