package core

import "strconv"

// Scorekeeper 進球計分，分數只增不減
type Scorekeeper struct {
	X, Y    float64
	Score   int
	Changed bool

	font string
	size int
	sink RenderSink
}

func NewScorekeeper(sink RenderSink, x, y float64, font string, size int) *Scorekeeper {
	return &Scorekeeper{
		X:       x,
		Y:       y,
		Changed: true,
		font:    font,
		size:    size,
		sink:    sink,
	}
}

func (s *Scorekeeper) Scored() {
	s.Score += 1
	s.Changed = true
}

func (s *Scorekeeper) Update() {
	if !s.Changed {
		return
	}
	s.sink.DrawText(strconv.Itoa(s.Score), s.X, s.Y, s.font, s.size)
	s.Changed = false
}

func (s *Scorekeeper) Invalidate() {
	s.Changed = true
}
