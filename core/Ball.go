package core

import (
	"math"
	"math/rand"
	"time"

	"PongSolo/logger"
)

// Freezer 球進球重置後要求暫停整場比賽(發球延遲)
type Freezer interface {
	Freeze(d time.Duration)
}

type Ball struct {
	Sprite
	Dir       float64
	BaseSpeed float64
	Shift     float64
	Bounces   int

	arena         Arena
	speedIncrease float64
	sharpness     float64
	randFactor    int
	serveDelay    time.Duration

	//球只借用球拍與計分板的參照，生命週期由Match管理
	paddles   []*Paddle
	scores    []*Scorekeeper
	rng       *rand.Rand
	scheduler Freezer
}

func NewBall(sink RenderSink, cfg MatchConfig, paddles []*Paddle, scores []*Scorekeeper, rng *rand.Rand, scheduler Freezer) *Ball {
	b := &Ball{
		Sprite:        newSprite(sink, cfg.BallSize, cfg.BallSize, 0, 0, cfg.BallColor),
		BaseSpeed:     cfg.BallSpeed,
		Shift:         cfg.BallSpeed,
		arena:         Arena{Width: cfg.ArenaWidth, Height: cfg.ArenaHeight},
		speedIncrease: cfg.SpeedIncrease,
		sharpness:     cfg.BounceSharpness,
		randFactor:    cfg.BounceRandFactor,
		serveDelay:    cfg.ServeDelay,
		paddles:       paddles,
		scores:        scores,
		rng:           rng,
		scheduler:     scheduler,
	}
	b.randDir()
	return b
}

// randDir 開球方向取[25,155]度，一半機率再加180度，保證不會貼著水平線發球
func (b *Ball) randDir() {
	b.Dir = float64(b.rng.Intn(131) + 25)
	if b.rng.Intn(2) == 1 {
		b.Dir += 180
	}
}

func (b *Ball) reset() {
	b.X = 0
	b.Y = 0
	b.Bounces = 0
	b.Shift = b.BaseSpeed
	b.randDir()
	b.UpdateHitbox()
	b.Changed = true
	if b.scheduler != nil {
		b.scheduler.Freeze(b.serveDelay)
	}
}

// Update 先用上個tick的位置做碰撞判斷，再更新速度與位置
func (b *Ball) Update() {
	b.checkCollisions()
	b.Shift = b.BaseSpeed + float64(b.Bounces)*b.speedIncrease
	b.X += b.Shift * math.Cos(b.Dir*math.Pi/180)
	b.Y += b.Shift * math.Sin(b.Dir*math.Pi/180)
	b.Changed = true
	b.Refresh()
}

func (b *Ball) checkCollisions() {
	if b.Hitbox.MinX <= b.arena.Left() || b.Hitbox.MaxX >= b.arena.Right() {
		//左右牆壁反彈
		b.Dir = 180 - math.Mod(b.Dir, 360)
	} else if b.Hitbox.MinY <= b.arena.Bottom()+GoalInset {
		//下方球門
		b.Dir = 360 - math.Mod(b.Dir, 360)
		b.scores[0].Scored()
		logger.Log.Infof(logger.GoalScoredMsg, 0, b.scores[0].Score)
		b.reset()
	} else if b.Hitbox.MaxY >= b.arena.Top()-GoalInset {
		//上方球門
		b.Dir = 360 - math.Mod(b.Dir, 360)
		b.scores[1].Scored()
		logger.Log.Infof(logger.GoalScoredMsg, 1, b.scores[1].Score)
		b.reset()
	}

	for _, paddle := range b.paddles {
		if b.touchesPaddleTop(paddle) {
			b.bounceOff(paddle)
		}
	}
}

// touchesPaddleTop 球的範圍要跨過球拍的頂緣並且左右有重疊
func (b *Ball) touchesPaddleTop(p *Paddle) bool {
	return b.Hitbox.MinY <= p.Hitbox.MaxY && b.Hitbox.MaxY >= p.Hitbox.MaxY &&
		b.Hitbox.MinX <= p.Hitbox.MaxX && b.Hitbox.MaxX >= p.Hitbox.MinX
}

// bounceOff 反彈角度由擊球點偏移量決定，再加上隨機角度
func (b *Ball) bounceOff(p *Paddle) {
	b.Bounces += 1
	jitter := float64(b.rng.Intn(2*b.randFactor+1) - b.randFactor)
	offset := b.sharpness * ((p.X - b.X) / 2) / (p.Width / 2)
	if p.Y < 0 {
		b.Dir = 90 + offset + jitter
	} else {
		b.Dir = 270 - offset + jitter
	}
	logger.Log.Debugf(logger.BallBouncedMsg, math.Round(b.Dir*10)/10, b.Shift, b.Bounces)
}
