package core

import (
	"math/rand"
	"time"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

type rectCall struct {
	minX, maxX, minY, maxY float64
	color                  string
}

type textCall struct {
	value string
	x, y  float64
}

// fakeSink records every draw call so tests can assert on redraw counts
type fakeSink struct {
	rects  []rectCall
	texts  []textCall
	frames int
}

func (f *fakeSink) DrawRectangle(minX, maxX, minY, maxY float64, color string) {
	f.rects = append(f.rects, rectCall{minX, maxX, minY, maxY, color})
}

func (f *fakeSink) DrawText(value string, x, y float64, font string, size int) {
	f.texts = append(f.texts, textCall{value, x, y})
}

func (f *fakeSink) PresentFrame() {
	f.frames += 1
}

func (f *fakeSink) reset() {
	f.rects = nil
	f.texts = nil
	f.frames = 0
}

// fakeInput captures key bindings and lets tests fire press/release events
type fakeInput struct {
	bindings map[string][2]func()
}

func newFakeInput() *fakeInput {
	return &fakeInput{bindings: map[string][2]func(){}}
}

func (f *fakeInput) Bind(key string, onDown func(), onUp func()) {
	f.bindings[key] = [2]func(){onDown, onUp}
}

func (f *fakeInput) press(key string) {
	f.bindings[key][0]()
}

func (f *fakeInput) release(key string) {
	f.bindings[key][1]()
}

// fakeFreezer records serve delay requests from the ball
type fakeFreezer struct {
	calls []time.Duration
}

func (f *fakeFreezer) Freeze(d time.Duration) {
	f.calls = append(f.calls, d)
}
