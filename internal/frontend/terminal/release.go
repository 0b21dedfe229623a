package terminal

import "github.com/retroenv/retrochip8/internal/host"

// releaser synthesizes key release events. Terminals only report key presses,
// a key is considered released after it has not been pressed again for the
// configured number of frames. Auto repeat of a held key refreshes the hold time.
type releaser struct {
	hold    int
	pending map[byte]int // remaining frames per held key
}

func newReleaser(hold int) *releaser {
	return &releaser{
		hold:    max(hold, 1),
		pending: make(map[byte]int),
	}
}

// press registers a key press and returns the press event if the key was not held already.
func (r *releaser) press(key byte) []host.KeyEvent {
	_, held := r.pending[key]
	r.pending[key] = r.hold
	if held {
		return nil
	}
	return []host.KeyEvent{{Key: key, Pressed: true}}
}

// frame advances the hold time of all keys and returns the release events of expired keys.
func (r *releaser) frame() []host.KeyEvent {
	var events []host.KeyEvent
	for key := byte(0); key < 16; key++ {
		remaining, ok := r.pending[key]
		if !ok {
			continue
		}
		remaining--
		if remaining > 0 {
			r.pending[key] = remaining
			continue
		}
		delete(r.pending, key)
		events = append(events, host.KeyEvent{Key: key, Pressed: false})
	}
	return events
}
