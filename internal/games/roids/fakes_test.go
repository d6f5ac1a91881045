package roids

import (
	"github.com/vovakirdan/tui-roids/internal/config"
)

type recordingRenderer struct {
	next     Handle
	live     map[Handle]Sprite
	frames   map[Handle]Frame
	released int
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		live:   make(map[Handle]Sprite),
		frames: make(map[Handle]Frame),
	}
}

func (r *recordingRenderer) Acquire(s Sprite) Handle {
	r.next++
	r.live[r.next] = s
	return r.next
}

func (r *recordingRenderer) Release(h Handle) {
	if _, ok := r.live[h]; !ok {
		panic("release of unknown handle")
	}
	delete(r.live, h)
	delete(r.frames, h)
	r.released++
}

func (r *recordingRenderer) Draw(h Handle, f Frame) {
	if _, ok := r.live[h]; !ok {
		panic("draw of unknown handle")
	}
	r.frames[h] = f
}

func (r *recordingRenderer) count(k Kind) int {
	n := 0
	for _, s := range r.live {
		if s.Kind == k {
			n++
		}
	}
	return n
}

type recordingScore struct {
	calls [][]uint8
}

func (s *recordingScore) ShowScore(glyphs []uint8) {
	s.calls = append(s.calls, append([]uint8(nil), glyphs...))
}

type recordingAudio struct {
	played []Effect
}

func (a *recordingAudio) Play(e Effect) {
	a.played = append(a.played, e)
}

func (a *recordingAudio) count(e Effect) int {
	n := 0
	for _, p := range a.played {
		if p == e {
			n++
		}
	}
	return n
}

// scriptedInput returns script entries in order, then idle input.
type scriptedInput struct {
	script []Input
	polls  int
}

func (s *scriptedInput) Poll() Input {
	s.polls++
	if len(s.script) == 0 {
		return Input{}
	}
	in := s.script[0]
	s.script = s.script[1:]
	return in
}

// heldInput returns the same sample forever.
type heldInput struct {
	in    Input
	polls int
}

func (h *heldInput) Poll() Input {
	h.polls++
	return h.in
}

type testRig struct {
	game     *Game
	renderer *recordingRenderer
	score    *recordingScore
	audio    *recordingAudio
}

func newTestRig(cfg config.RoidsConfig, input InputSource) *testRig {
	rig := &testRig{
		renderer: newRecordingRenderer(),
		score:    &recordingScore{},
		audio:    &recordingAudio{},
	}
	rig.game = New(cfg, Options{
		Renderer: rig.renderer,
		Score:    rig.score,
		Audio:    rig.audio,
		Input:    input,
	})
	return rig
}

func (r *testRig) tick(n int) {
	for range n {
		r.game.Tick()
	}
}
