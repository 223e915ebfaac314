package core

// PaddleDriver 在每個tick開頭決定球拍的移動意圖(玩家按鍵或AI)
type PaddleDriver interface {
	Drive(p *Paddle)
}

type Paddle struct {
	Sprite
	Shift       float64
	MovingLeft  bool
	MovingRight bool

	arena  Arena
	margin float64
	driver PaddleDriver
}

func NewPaddle(sink RenderSink, arena Arena, width, height, x, y, speed, margin float64, color string, driver PaddleDriver) *Paddle {
	return &Paddle{
		Sprite: newSprite(sink, width, height, x, y, color),
		Shift:  speed,
		arena:  arena,
		margin: margin,
		driver: driver,
	}
}

// BindKeys 玩家球拍的按鍵綁定，按下/放開只改意圖不做幾何運算
func (p *Paddle) BindKeys(input InputSource, leftKey, rightKey string) {
	input.Bind(leftKey, p.StartLeft, p.StopLeft)
	input.Bind(rightKey, p.StartRight, p.StopRight)
}

func (p *Paddle) StartLeft() {
	p.MovingLeft = true
}

func (p *Paddle) StopLeft() {
	p.MovingLeft = false
}

func (p *Paddle) StartRight() {
	p.MovingRight = true
}

func (p *Paddle) StopRight() {
	p.MovingRight = false
}

// Update 左右意圖各自獨立判斷，兩邊都成立時位移會互相抵銷
func (p *Paddle) Update() {
	if p.driver != nil {
		p.driver.Drive(p)
	}
	if p.MovingLeft {
		p.left()
		p.Changed = true
	}
	if p.MovingRight {
		p.right()
		p.Changed = true
	}
	p.Refresh()
}

func (p *Paddle) left() {
	if p.Hitbox.MinX > p.arena.Left()+p.margin {
		p.X -= p.Shift
	}
}

func (p *Paddle) right() {
	if p.Hitbox.MaxX < p.arena.Right()-p.margin {
		p.X += p.Shift
	}
}
