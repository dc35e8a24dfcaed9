package vector

import (
	"github.com/pkg/errors"
)

var errInjected = errors.New("injected failure")

// ledger counts lifecycle events of the elements that share it.
type ledger struct {
	live      int
	destroyed int
	copies    int
	moves     int

	// failCopyAt and failMoveAt make the n-th copy or move fail (1-based).
	failCopyAt int
	failMoveAt int
}

// tracked is copyable and movable without failure and counts destructions.
type tracked struct {
	id  int
	led *ledger
}

func newTracked(led *ledger, id int) tracked {
	led.live++
	return tracked{id: id, led: led}
}

func (e *tracked) Destroy() {
	if e.led == nil {
		return
	}
	e.led.live--
	e.led.destroyed++
}

func (e *tracked) Copy() (tracked, error) {
	e.led.copies++
	e.led.live++
	return tracked{id: e.id, led: e.led}, nil
}

// flaky has a move that can fail, so growth relocates it by copy.
type flaky struct {
	id    int
	moved bool
	led   *ledger
}

func newFlaky(led *ledger, id int) flaky {
	led.live++
	return flaky{id: id, led: led}
}

func (e *flaky) Copy() (flaky, error) {
	e.led.copies++
	if e.led.copies == e.led.failCopyAt {
		return flaky{}, errInjected
	}
	e.led.live++
	return flaky{id: e.id, led: e.led}, nil
}

func (e *flaky) Move() (flaky, error) {
	e.led.moves++
	if e.led.moves == e.led.failMoveAt {
		return flaky{}, errInjected
	}
	e.led.live++
	out := flaky{id: e.id, led: e.led}
	e.moved = true
	return out, nil
}

func (e *flaky) Destroy() {
	if e.led == nil {
		return
	}
	e.led.live--
	e.led.destroyed++
}

// handle cannot be copied; moving it is a plain transfer.
type handle struct {
	fd int
}

func (*handle) MoveOnly() {}

// fragileHandle cannot be copied and its move can fail.
type fragileHandle struct {
	fd  int
	led *ledger
}

func (*fragileHandle) MoveOnly() {}

func (h *fragileHandle) Move() (fragileHandle, error) {
	h.led.moves++
	if h.led.moves == h.led.failMoveAt {
		return fragileHandle{}, errInjected
	}
	out := *h
	h.fd = -1
	return out, nil
}

// defaulted has a non-zero default value and a construction that can be
// made to fail.
type defaulted struct {
	n int
}

var defaultedBudget = -1

func (d *defaulted) Construct() error {
	if defaultedBudget == 0 {
		return errInjected
	}
	if defaultedBudget > 0 {
		defaultedBudget--
	}
	d.n = 7
	return nil
}

func ids[T interface{ tracked | flaky }](v *Vector[T]) []int {
	var out []int
	for _, e := range v.All() {
		switch e := any(e).(type) {
		case tracked:
			out = append(out, e.id)
		case flaky:
			out = append(out, e.id)
		}
	}
	return out
}
