package core

import (
	"math"
	"math/rand"
)

// AiDriver 看得到球就追球，看不到就隨機亂晃
type AiDriver struct {
	SeesBall bool

	ball       *Ball
	baseSpeed  float64
	visibility float64
	rng        *rand.Rand
	randDirSet bool
}

func NewAiDriver(baseSpeed, visibility float64, rng *rand.Rand) *AiDriver {
	return &AiDriver{
		SeesBall:   true,
		baseSpeed:  baseSpeed,
		visibility: visibility,
		rng:        rng,
	}
}

// SetBall 給AI一個球的參照(不擁有)，用來追蹤位置
func (d *AiDriver) SetBall(b *Ball) {
	d.ball = b
}

func (d *AiDriver) Drive(p *Paddle) {
	d.SeesBall = math.Abs(p.Y-d.ball.Y) < d.visibility

	if d.SeesBall {
		p.Shift = d.baseSpeed
		d.track(p)
		d.randDirSet = false
		return
	}
	//看不到球時只擲一次骰，避免每個tick都換方向
	if !d.randDirSet {
		d.wander(p)
		d.randDirSet = true
	}
}

// track 距離球太近就當作已對齊(shift歸零)，否則往球的方向移動
func (d *AiDriver) track(p *Paddle) {
	if math.Abs(p.X-d.ball.X) < 1.5*d.baseSpeed {
		p.Shift = 0
	} else if p.X > d.ball.X {
		p.StartLeft()
		p.StopRight()
	} else {
		p.StartRight()
		p.StopLeft()
	}
}

func (d *AiDriver) wander(p *Paddle) {
	p.Shift = float64(d.rng.Intn(int(d.baseSpeed) + 1))
	if d.rng.Intn(2) == 1 {
		p.StartLeft()
		p.StopRight()
	} else {
		p.StartRight()
		p.StopLeft()
	}
}
