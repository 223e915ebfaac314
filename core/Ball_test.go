package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ballFixture struct {
	sink    *fakeSink
	ball    *Ball
	paddles []*Paddle
	scores  []*Scorekeeper
	freezer *fakeFreezer
}

func newBallFixture(paddles ...*Paddle) *ballFixture {
	sink := &fakeSink{}
	cfg := DefaultMatchConfig()
	scores := []*Scorekeeper{
		NewScorekeeper(sink, -250, 100, cfg.ScoreFont, cfg.ScoreSize),
		NewScorekeeper(sink, -250, -100, cfg.ScoreFont, cfg.ScoreSize),
	}
	freezer := &fakeFreezer{}
	ball := NewBall(sink, cfg, paddles, scores, testRNG(), freezer)
	return &ballFixture{sink: sink, ball: ball, paddles: paddles, scores: scores, freezer: freezer}
}

// 置中往正上方打，一個tick後應該在(0, 10)
func TestBallMovesStraightUp(t *testing.T) {
	f := newBallFixture()
	f.ball.Dir = 90

	f.ball.Update()

	assert.InDelta(t, 0.0, f.ball.X, 1e-9)
	assert.InDelta(t, 10.0, f.ball.Y, 1e-9)
}

func TestBallSpeedScalesWithBounces(t *testing.T) {
	f := newBallFixture()
	f.ball.Dir = 90
	f.ball.Bounces = 8

	f.ball.Update()

	assert.Equal(t, 12.0, f.ball.Shift)
}

func TestBallWallBounceReflectsAngle(t *testing.T) {
	f := newBallFixture()
	f.ball.X = -295
	f.ball.Dir = 135
	f.ball.UpdateHitbox()

	f.ball.Update()

	//左右牆反彈：dir = 180 - (dir mod 360)，垂直分量不變
	assert.Equal(t, 45.0, f.ball.Dir)
	assert.Greater(t, math.Sin(f.ball.Dir*math.Pi/180), 0.0)
}

func TestBallRightWallBounce(t *testing.T) {
	f := newBallFixture()
	f.ball.X = 295
	f.ball.Dir = 45
	f.ball.UpdateHitbox()

	f.ball.Update()

	assert.Equal(t, 135.0, f.ball.Dir)
}

func TestBallBottomGoalCreditsScorekeeperZero(t *testing.T) {
	f := newBallFixture()
	f.ball.Y = -285
	f.ball.Dir = 270
	f.ball.Bounces = 4
	f.ball.UpdateHitbox()

	f.ball.Update()

	require.Equal(t, 1, f.scores[0].Score)
	assert.Equal(t, 0, f.scores[1].Score)
	assert.Equal(t, 0, f.ball.Bounces)

	//重置回原點後這個tick還是會照新方向走一步
	dist := math.Hypot(f.ball.X, f.ball.Y)
	assert.InDelta(t, f.ball.BaseSpeed, dist, 1e-9)
}

// 球底緣在BOTTOM+5，還在球門線內，算進球不算牆壁反彈
func TestBallInsideGoalThresholdIsGoal(t *testing.T) {
	f := newBallFixture()
	f.ball.Y = -289
	f.ball.UpdateHitbox()

	f.ball.Update()

	assert.Equal(t, 1, f.scores[0].Score)
}

func TestBallTopGoalCreditsScorekeeperOne(t *testing.T) {
	f := newBallFixture()
	f.ball.Y = 285
	f.ball.Dir = 90
	f.ball.UpdateHitbox()

	f.ball.Update()

	require.Equal(t, 1, f.scores[1].Score)
	assert.Equal(t, 0, f.scores[0].Score)
}

func TestBallGoalRequestsServeDelay(t *testing.T) {
	f := newBallFixture()
	f.ball.Y = -285
	f.ball.UpdateHitbox()

	f.ball.Update()

	require.Len(t, f.freezer.calls, 1)
	assert.Equal(t, DefaultMatchConfig().ServeDelay, f.freezer.calls[0])
}

func TestBallPaddleBounce(t *testing.T) {
	sink := &fakeSink{}
	paddle := NewPaddle(sink, testArena(), 80, 10, 0, -250, 5, 5, "white", nil)
	f := newBallFixture(paddle)
	f.ball.Y = -245
	f.ball.Dir = 270
	f.ball.UpdateHitbox()

	f.ball.Update()

	require.Equal(t, 1, f.ball.Bounces)
	//正中央擊球沒有偏移量，只剩隨機角度：90 ± 25
	assert.GreaterOrEqual(t, f.ball.Dir, 65.0)
	assert.LessOrEqual(t, f.ball.Dir, 115.0)
	//反彈當下球速就要增加
	assert.Equal(t, 10.25, f.ball.Shift)
}

func TestBallTopPaddleBounceMirrorsConvention(t *testing.T) {
	sink := &fakeSink{}
	paddle := NewPaddle(sink, testArena(), 80, 10, 0, 250, 8, 5, "white", nil)
	f := newBallFixture(paddle)
	f.ball.Y = 252
	f.ball.Dir = 90
	f.ball.UpdateHitbox()

	f.ball.Update()

	require.Equal(t, 1, f.ball.Bounces)
	//上方球拍把球往下打：270 ± 25
	assert.GreaterOrEqual(t, f.ball.Dir, 245.0)
	assert.LessOrEqual(t, f.ball.Dir, 295.0)
}

func TestBallBounceCounterMonotoneWithinLife(t *testing.T) {
	sink := &fakeSink{}
	paddle := NewPaddle(sink, testArena(), 80, 10, 0, -250, 5, 5, "white", nil)
	f := newBallFixture(paddle)

	f.ball.Bounces = 3
	f.ball.Y = -245
	f.ball.UpdateHitbox()
	f.ball.Update()
	require.Equal(t, 4, f.ball.Bounces)

	//進球才歸零
	f.ball.Y = -285
	f.ball.UpdateHitbox()
	f.ball.Update()
	assert.Equal(t, 0, f.ball.Bounces)
}

// 開球方向在[25,155]或加180度後的[205,335]，不會貼著水平線
func TestBallRandDirAvoidsHorizontal(t *testing.T) {
	f := newBallFixture()

	for i := 0; i < 200; i++ {
		f.ball.randDir()
		lower := f.ball.Dir >= 25 && f.ball.Dir <= 155
		upper := f.ball.Dir >= 205 && f.ball.Dir <= 335
		require.True(t, lower || upper, "direction %v too close to horizontal", f.ball.Dir)
	}
}

func TestBallDrawsOncePerTick(t *testing.T) {
	f := newBallFixture()
	f.ball.Dir = 90

	f.ball.Update()
	f.ball.Update()

	assert.Len(t, f.sink.rects, 2)
}
