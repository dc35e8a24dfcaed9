package vector

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraitsOf(t *testing.T) {
	tests := []struct {
		name   string
		got    traits
		want   traits
		byMove bool
	}{
		{"plain", traitsOf[int](), traits{}, true},
		{"pointer", traitsOf[*tracked](), traits{}, true},
		{"tracked", traitsOf[tracked](), traits{destroy: true, copier: true}, true},
		{"flaky", traitsOf[flaky](), traits{destroy: true, copier: true, mover: true}, false},
		{"move-only", traitsOf[handle](), traits{moveOnly: true}, true},
		{"fragile move-only", traitsOf[fragileHandle](), traits{mover: true, moveOnly: true}, true},
		{"defaulted", traitsOf[defaulted](), traits{construct: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			assert.Equal(t, tt.byMove, tt.got.relocateByMove())
		})
	}
}

func TestConstructRangeRollsBack(t *testing.T) {
	defaultedBudget = 2
	defer func() { defaultedBudget = -1 }()

	s := make([]defaulted, 4)
	err := constructRange(traitsOf[defaulted](), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errInjected))
	assert.Equal(t, make([]defaulted, 4), s, "constructed prefix should be cleared")
}

func TestMoveOutClearsSource(t *testing.T) {
	led := &ledger{}
	src := newTracked(led, 3)

	got, err := moveOut(traitsOf[tracked](), &src)
	require.NoError(t, err)
	assert.Equal(t, 3, got.id)
	assert.Equal(t, tracked{}, src)
	assert.Equal(t, 1, led.live, "a transfer neither creates nor destroys")
}

func TestMoveAssignKeepsDestinationOnFailure(t *testing.T) {
	led := &ledger{failMoveAt: 1}
	dst, src := newFlaky(led, 1), newFlaky(led, 2)
	tr := traitsOf[flaky]()

	err := moveAssign(tr, &dst, &src)
	require.ErrorIs(t, err, errInjected)
	assert.Equal(t, 1, dst.id)
	assert.Equal(t, 0, led.destroyed)

	require.NoError(t, moveAssign(tr, &dst, &src))
	assert.Equal(t, 2, dst.id)
	assert.True(t, src.moved)
	assert.Equal(t, 1, led.destroyed, "previous destination value destroyed")
}

func TestCopyOfMoveOnly(t *testing.T) {
	h := handle{fd: 3}
	_, err := copyOf(traitsOf[handle](), &h)
	assert.ErrorIs(t, err, ErrNotCopyable)
}

func TestRelocateCopyFailureLeavesSource(t *testing.T) {
	led := &ledger{}
	src := []flaky{newFlaky(led, 1), newFlaky(led, 2), newFlaky(led, 3)}
	dst := make([]flaky, 3)
	led.failCopyAt = 3

	err := relocate(traitsOf[flaky](), dst, src, 0)
	require.ErrorIs(t, err, errInjected)
	assert.Contains(t, err.Error(), "relocate element 2")
	assert.Equal(t, make([]flaky, 3), dst)
	for i, e := range src {
		assert.Equal(t, i+1, e.id)
		assert.False(t, e.moved)
	}
	assert.Equal(t, 3, led.live)
}
