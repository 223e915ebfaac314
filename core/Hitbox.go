package core

// Hitbox 以中心點與長寬推導出的碰撞範圍 [minX, maxX, minY, maxY]
type Hitbox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func HitboxAround(x, y, width, height float64) Hitbox {
	return Hitbox{
		MinX: x - width/2,
		MaxX: x + width/2,
		MinY: y - height/2,
		MaxY: y + height/2,
	}
}

func (h Hitbox) Overlaps(other Hitbox) bool {
	return h.MinX <= other.MaxX && h.MaxX >= other.MinX &&
		h.MinY <= other.MaxY && h.MaxY >= other.MinY
}

func (h Hitbox) Width() float64 {
	return h.MaxX - h.MinX
}

func (h Hitbox) Height() float64 {
	return h.MaxY - h.MinY
}
