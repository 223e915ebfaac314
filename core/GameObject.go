package core

// Sprite 所有畫面物件共用的基底：中心座標、長寬、碰撞範圍與重繪旗標
type Sprite struct {
	X, Y          float64
	Width, Height float64
	Hitbox        Hitbox
	Changed       bool
	Color         string

	sink RenderSink
}

func newSprite(sink RenderSink, width, height, x, y float64, color string) Sprite {
	s := Sprite{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Changed: true,
		Color:   color,
		sink:    sink,
	}
	s.UpdateHitbox()
	return s
}

func (s *Sprite) UpdateHitbox() {
	s.Hitbox = HitboxAround(s.X, s.Y, s.Width, s.Height)
}

// Refresh 有異動才重算hitbox並重繪，一個tick最多畫一次
func (s *Sprite) Refresh() {
	if !s.Changed {
		return
	}
	s.UpdateHitbox()
	s.sink.DrawRectangle(s.Hitbox.MinX, s.Hitbox.MaxX, s.Hitbox.MinY, s.Hitbox.MaxY, s.Color)
	s.Changed = false
}

func (s *Sprite) Invalidate() {
	s.Changed = true
}
