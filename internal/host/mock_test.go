package host

import (
	"iter"

	"github.com/retroenv/retrochip8/internal/display"
)

// mockMachine records the calls of the runner.
type mockMachine struct {
	ticks      int
	frameTicks int
	waitAfter  int // start waiting after this many ticks, 0 never waits
	err        error
	errAfter   int

	keysDown []byte
	keysUp   []byte
	display  *display.Display
}

func newMockMachine() *mockMachine {
	return &mockMachine{display: display.New()}
}

func (m *mockMachine) Tick() error {
	m.ticks++
	if m.err != nil && m.ticks >= m.errAfter {
		return m.err
	}
	return nil
}

func (m *mockMachine) Waiting() bool {
	return m.waitAfter > 0 && m.ticks >= m.waitAfter && len(m.keysUp) == 0
}

func (m *mockMachine) OnFrameTick() {
	m.frameTicks++
}

func (m *mockMachine) Pixels() iter.Seq[display.Pixel] {
	return m.display.Pixels()
}

func (m *mockMachine) SoundActive() bool {
	return false
}

func (m *mockMachine) KeyDown(key byte) {
	m.keysDown = append(m.keysDown, key)
}

func (m *mockMachine) KeyUp(key byte) {
	m.keysUp = append(m.keysUp, key)
}

// mockFrontend returns queued key events and counts rendered frames.
type mockFrontend struct {
	rendered int
	lit      int
	events   [][]KeyEvent
	quitAt   int // request quit on this poll, 0 never quits
	polls    int
	closed   bool
}

func (f *mockFrontend) Render(pixels iter.Seq[display.Pixel], _ bool) error {
	f.rendered++
	f.lit = 0
	for p := range pixels {
		if p.IsOn() {
			f.lit++
		}
	}
	return nil
}

func (f *mockFrontend) Poll() ([]KeyEvent, bool) {
	f.polls++
	var events []KeyEvent
	if len(f.events) > 0 {
		events = f.events[0]
		f.events = f.events[1:]
	}
	return events, f.quitAt > 0 && f.polls >= f.quitAt
}

func (f *mockFrontend) Close() error {
	f.closed = true
	return nil
}
