package rays

import (
	"errors"
	"fmt"
	"unsafe"

	"chosenoffset.com/occlusion/internal/core/shadows"
)

var (
	// ErrAllocation is returned when the ray buffer cannot be (re)allocated.
	ErrAllocation = errors.New("ray buffer allocation failed")
	// ErrCountOutOfRange is returned for counts outside the configured limits.
	ErrCountOutOfRange = errors.New("ray count out of range")
)

// rayBytes is the storage cost of one ray.
const rayBytes = int64(unsafe.Sizeof(Ray{}))

// Limits bounds the ray count and the memory the buffer may claim.
type Limits struct {
	Min  int
	Max  int
	Step int
	// MaxBytes caps the buffer size; zero means no cap.
	MaxBytes int64
}

// DefaultLimits returns 10..1,000,000 rays in steps of 10 with no byte cap.
func DefaultLimits() Limits {
	return Limits{Min: 10, Max: 1_000_000, Step: 10}
}

// Allocator produces storage for n rays or reports why it cannot.
type Allocator func(n int) ([]Ray, error)

// BudgetAllocator allocates ray storage, refusing requests that exceed
// maxBytes. A maxBytes of zero disables the cap. Runtime allocation panics
// for impossible lengths are turned into ErrAllocation.
func BudgetAllocator(maxBytes int64) Allocator {
	return func(n int) (buf []Ray, err error) {
		if n < 0 {
			return nil, fmt.Errorf("%w: negative length %d", ErrAllocation, n)
		}
		if maxBytes > 0 && int64(n)*rayBytes > maxBytes {
			return nil, fmt.Errorf("%w: %d rays need %d bytes, budget is %d",
				ErrAllocation, n, int64(n)*rayBytes, maxBytes)
		}
		defer func() {
			if r := recover(); r != nil {
				buf = nil
				err = fmt.Errorf("%w: %v", ErrAllocation, r)
			}
		}()
		return make([]Ray, n), nil
	}
}

// Set is the ray buffer owned by the frame loop.
// It is rebuilt as a whole whenever the emitter moves or the count changes;
// resizing either fully succeeds or leaves the previous rays untouched.
type Set struct {
	limits Limits
	alloc  Allocator
	rays   []Ray
}

// NewSet creates an empty set. A nil alloc uses BudgetAllocator(limits.MaxBytes).
func NewSet(limits Limits, alloc Allocator) *Set {
	if alloc == nil {
		alloc = BudgetAllocator(limits.MaxBytes)
	}
	return &Set{limits: limits, alloc: alloc}
}

// Limits returns the bounds the set was created with.
func (s *Set) Limits() Limits {
	return s.limits
}

// Count returns the current number of rays.
func (s *Set) Count() int {
	return len(s.rays)
}

// Rays returns the live ray storage. Callers must not retain it across a
// Resize or Regenerate.
func (s *Set) Rays() []Ray {
	return s.rays
}

// Direction returns the unit direction of ray i at the current count.
func (s *Set) Direction(i int) shadows.Point {
	return shadows.Direction(i, len(s.rays))
}

// Regenerate recomputes every origin for the emitter's current position.
func (s *Set) Regenerate(emitter shadows.Circle) {
	Fill(s.rays, emitter)
}

// Resize replaces the buffer with count freshly generated rays.
// On error the previous buffer and count are left exactly as they were.
func (s *Set) Resize(count int, emitter shadows.Circle) error {
	if count < s.limits.Min || count > s.limits.Max {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCountOutOfRange, count, s.limits.Min, s.limits.Max)
	}

	buf, err := s.alloc(count)
	if err != nil {
		return fmt.Errorf("resize to %d rays: %w", count, err)
	}
	if len(buf) != count {
		return fmt.Errorf("resize to %d rays: %w: allocator returned %d", count, ErrAllocation, len(buf))
	}

	Fill(buf, emitter)
	s.rays = buf
	return nil
}

// Increase grows the set by one step, capped at the maximum.
// It reports whether the count changed.
func (s *Set) Increase(emitter shadows.Circle) (bool, error) {
	if s.Count() >= s.limits.Max {
		return false, nil
	}
	next := min(s.Count()+s.limits.Step, s.limits.Max)
	if err := s.Resize(next, emitter); err != nil {
		return false, err
	}
	return true, nil
}

// Decrease shrinks the set by one step, floored at the minimum.
// It reports whether the count changed.
func (s *Set) Decrease(emitter shadows.Circle) (bool, error) {
	if s.Count() <= s.limits.Min {
		return false, nil
	}
	next := max(s.Count()-s.limits.Step, s.limits.Min)
	if err := s.Resize(next, emitter); err != nil {
		return false, err
	}
	return true, nil
}
