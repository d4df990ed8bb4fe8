package rays

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/occlusion/internal/core/shadows"
)

var testEmitter = shadows.Circle{Center: shadows.Point{X: 200, Y: 400}, R: 60}

func newTestSet(t *testing.T, count int, alloc Allocator) *Set {
	t.Helper()
	s := NewSet(DefaultLimits(), alloc)
	require.NoError(t, s.Resize(count, testEmitter))
	return s
}

func TestSetResize(t *testing.T) {
	s := newTestSet(t, 300, nil)
	assert.Equal(t, 300, s.Count())
	assert.Equal(t, Generate(testEmitter, 300), s.Rays())

	require.NoError(t, s.Resize(20, testEmitter))
	assert.Equal(t, 20, s.Count())
	assert.Equal(t, Generate(testEmitter, 20), s.Rays())
}

func TestSetResizeOutOfRange(t *testing.T) {
	s := newTestSet(t, 300, nil)
	before := s.Rays()

	err := s.Resize(5, testEmitter)
	assert.ErrorIs(t, err, ErrCountOutOfRange)

	err = s.Resize(1_000_010, testEmitter)
	assert.ErrorIs(t, err, ErrCountOutOfRange)

	assert.Equal(t, 300, s.Count())
	assert.Same(t, &before[0], &s.Rays()[0])
}

func TestSetResizeFailureKeepsPriorBuffer(t *testing.T) {
	fail := false
	alloc := func(n int) ([]Ray, error) {
		if fail {
			return nil, ErrAllocation
		}
		return make([]Ray, n), nil
	}

	s := newTestSet(t, 300, alloc)
	before := s.Rays()
	snapshot := append([]Ray(nil), before...)

	fail = true
	err := s.Resize(310, testEmitter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAllocation))

	assert.Equal(t, 300, s.Count())
	assert.Same(t, &before[0], &s.Rays()[0])
	assert.Equal(t, snapshot, s.Rays())
}

func TestSetResizeRejectsShortAllocation(t *testing.T) {
	s := NewSet(DefaultLimits(), func(n int) ([]Ray, error) {
		return make([]Ray, n/2), nil
	})

	err := s.Resize(20, testEmitter)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 0, s.Count())
}

func TestBudgetAllocator(t *testing.T) {
	alloc := BudgetAllocator(100 * rayBytes)

	buf, err := alloc(100)
	require.NoError(t, err)
	assert.Len(t, buf, 100)

	_, err = alloc(101)
	assert.ErrorIs(t, err, ErrAllocation)

	_, err = alloc(-1)
	assert.ErrorIs(t, err, ErrAllocation)

	unbounded := BudgetAllocator(0)
	buf, err = unbounded(1000)
	require.NoError(t, err)
	assert.Len(t, buf, 1000)
}

func TestSetIncreaseDecrease(t *testing.T) {
	s := newTestSet(t, 300, nil)

	changed, err := s.Increase(testEmitter)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 310, s.Count())

	changed, err = s.Decrease(testEmitter)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 300, s.Count())
}

func TestSetFloor(t *testing.T) {
	s := newTestSet(t, 10, nil)

	changed, err := s.Decrease(testEmitter)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 10, s.Count())
}

func TestSetCeiling(t *testing.T) {
	s := newTestSet(t, 1_000_000, nil)

	changed, err := s.Increase(testEmitter)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1_000_000, s.Count())
}

func TestSetCapsUnalignedCounts(t *testing.T) {
	s := newTestSet(t, 999_995, nil)

	changed, err := s.Increase(testEmitter)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1_000_000, s.Count())
}

func TestSetRegenerate(t *testing.T) {
	s := newTestSet(t, 40, nil)
	moved := shadows.Circle{Center: shadows.Point{X: 500, Y: 120}, R: 60}

	s.Regenerate(moved)
	assert.Equal(t, Generate(moved, 40), s.Rays())
}

func TestSetDirection(t *testing.T) {
	s := newTestSet(t, 40, nil)
	assert.Equal(t, shadows.Direction(7, 40), s.Direction(7))
}
