package core

// GoalInset 球門線距離上下牆壁的距離
const GoalInset = 10.0

// Arena 固定大小的球場，原點在正中央
type Arena struct {
	Width  float64
	Height float64
}

func (a Arena) Left() float64 {
	return -a.Width / 2
}

func (a Arena) Right() float64 {
	return a.Width / 2
}

func (a Arena) Top() float64 {
	return a.Height / 2
}

func (a Arena) Bottom() float64 {
	return -a.Height / 2
}
