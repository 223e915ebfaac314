package core

import (
	"fmt"
	"time"
)

// MatchConfig 一場比賽所有可調的參數，程式啟動後不再變動
type MatchConfig struct {
	ArenaWidth  float64
	ArenaHeight float64

	BallSize      float64
	BallSpeed     float64
	SpeedIncrease float64 //每次反彈增加的球速
	BallColor     string

	PaddleWidth          float64
	PaddleHeight         float64
	PaddleSpeed          float64
	PaddleDistFromBorder float64
	PaddleBoundary       float64 //球拍離牆壁的最小距離
	PaddleColor          string

	BounceSharpness  float64 //反彈角度最大偏移量
	BounceRandFactor int     //反彈時的最大隨機角度

	AiVisibilityRange float64 //球要多近AI才追得到
	AiPaddleSpeed     float64

	ScoreFont string
	ScoreSize int

	WinningScore int
	ServeDelay   time.Duration
	TickInterval time.Duration

	LeftKey  string
	RightKey string
}

func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		ArenaWidth:  600,
		ArenaHeight: 600,

		BallSize:      12,
		BallSpeed:     10,
		SpeedIncrease: 0.25,
		BallColor:     "white",

		PaddleWidth:          80,
		PaddleHeight:         10,
		PaddleSpeed:          8,
		PaddleDistFromBorder: 50,
		PaddleBoundary:       5,
		PaddleColor:          "white",

		BounceSharpness:  90,
		BounceRandFactor: 25,

		AiVisibilityRange: 600 / 1.8,
		AiPaddleSpeed:     5,

		ScoreFont: "Courier New",
		ScoreSize: 40,

		WinningScore: 9,
		ServeDelay:   500 * time.Millisecond,
		TickInterval: 30 * time.Millisecond,

		LeftKey:  "Left",
		RightKey: "Right",
	}
}

// Validate 不合法的設定直接擋在建構階段，避免進到碰撞運算才出事
func (c MatchConfig) Validate() error {
	if c.ArenaWidth <= 0 || c.ArenaHeight <= 0 {
		return fmt.Errorf("arena size must be positive, got %.0fx%.0f", c.ArenaWidth, c.ArenaHeight)
	}
	if c.BallSize <= 0 {
		return fmt.Errorf("ball size must be positive, got %.1f", c.BallSize)
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("paddle size must be positive, got %.0fx%.0f", c.PaddleWidth, c.PaddleHeight)
	}
	if c.BallSpeed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %.1f", c.BallSpeed)
	}
	if c.SpeedIncrease < 0 {
		return fmt.Errorf("speed increase must not be negative, got %.2f", c.SpeedIncrease)
	}
	if c.PaddleSpeed <= 0 || c.AiPaddleSpeed <= 0 {
		return fmt.Errorf("paddle speed must be positive, got %.1f / %.1f", c.PaddleSpeed, c.AiPaddleSpeed)
	}
	if c.BounceRandFactor < 0 {
		return fmt.Errorf("bounce rand factor must not be negative, got %d", c.BounceRandFactor)
	}
	if c.AiVisibilityRange <= 0 {
		return fmt.Errorf("ai visibility range must be positive, got %.1f", c.AiVisibilityRange)
	}
	if c.WinningScore <= 0 {
		return fmt.Errorf("winning score must be positive, got %d", c.WinningScore)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.ServeDelay < 0 {
		return fmt.Errorf("serve delay must not be negative, got %s", c.ServeDelay)
	}
	return nil
}
