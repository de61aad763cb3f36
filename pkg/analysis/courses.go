package analysis

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/artem13815/cooked/pkg/classify"
)

const (
	DefaultMaxCourses = 4
	MaxCoursesLimit   = 8
)

// CoursePicker draws a random subset of a course list.
type CoursePicker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCoursePicker(seed uint64) *CoursePicker {
	return &CoursePicker{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewTimeSeededCoursePicker seeds the picker from the wall clock.
func NewTimeSeededCoursePicker() *CoursePicker {
	return NewCoursePicker(uint64(time.Now().UnixNano()))
}

// Pick shuffles a copy of courses and keeps the first n. The input slice is
// left untouched.
func (p *CoursePicker) Pick(courses []classify.Course, n int) []classify.Course {
	out := append([]classify.Course(nil), courses...)
	p.mu.Lock()
	p.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	p.mu.Unlock()
	if n < len(out) {
		out = out[:n]
	}
	if out == nil {
		out = []classify.Course{}
	}
	return out
}

// clampCourses maps a requested course count into 1..8, 0 meaning default.
func clampCourses(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxCourses
	case n > MaxCoursesLimit:
		return MaxCoursesLimit
	}
	return n
}
