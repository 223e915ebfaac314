package core

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"PongSolo/logger"
)

// ReadMatchProperties 從match.properties讀取比賽設定，檔案不存在就用預設值
func ReadMatchProperties() MatchConfig {
	cfg := DefaultMatchConfig()

	v := viper.New()
	v.SetConfigName("match")
	v.SetConfigType("properties")
	v.AddConfigPath("./")

	err := v.ReadInConfig()
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.ConfigFallbackMsg, err))
		return cfg
	}

	v.SetDefault("arenaWidth", cfg.ArenaWidth)
	v.SetDefault("arenaHeight", cfg.ArenaHeight)
	v.SetDefault("ballSize", cfg.BallSize)
	v.SetDefault("ballSpeed", cfg.BallSpeed)
	v.SetDefault("speedIncrease", cfg.SpeedIncrease)
	v.SetDefault("paddleWidth", cfg.PaddleWidth)
	v.SetDefault("paddleHeight", cfg.PaddleHeight)
	v.SetDefault("paddleSpeed", cfg.PaddleSpeed)
	v.SetDefault("paddleDistFromBorder", cfg.PaddleDistFromBorder)
	v.SetDefault("paddleBoundary", cfg.PaddleBoundary)
	v.SetDefault("bounceSharpness", cfg.BounceSharpness)
	v.SetDefault("bounceRandFactor", cfg.BounceRandFactor)
	v.SetDefault("aiVisibilityRange", cfg.AiVisibilityRange)
	v.SetDefault("aiPaddleSpeed", cfg.AiPaddleSpeed)
	v.SetDefault("winningScore", cfg.WinningScore)
	v.SetDefault("serveDelayMs", cfg.ServeDelay.Milliseconds())
	v.SetDefault("tickIntervalMs", cfg.TickInterval.Milliseconds())
	v.SetDefault("leftKey", cfg.LeftKey)
	v.SetDefault("rightKey", cfg.RightKey)

	cfg.ArenaWidth = cast.ToFloat64(v.Get("arenaWidth"))
	cfg.ArenaHeight = cast.ToFloat64(v.Get("arenaHeight"))
	cfg.BallSize = cast.ToFloat64(v.Get("ballSize"))
	cfg.BallSpeed = cast.ToFloat64(v.Get("ballSpeed"))
	cfg.SpeedIncrease = cast.ToFloat64(v.Get("speedIncrease"))
	cfg.PaddleWidth = cast.ToFloat64(v.Get("paddleWidth"))
	cfg.PaddleHeight = cast.ToFloat64(v.Get("paddleHeight"))
	cfg.PaddleSpeed = cast.ToFloat64(v.Get("paddleSpeed"))
	cfg.PaddleDistFromBorder = cast.ToFloat64(v.Get("paddleDistFromBorder"))
	cfg.PaddleBoundary = cast.ToFloat64(v.Get("paddleBoundary"))
	cfg.BounceSharpness = cast.ToFloat64(v.Get("bounceSharpness"))
	cfg.BounceRandFactor = cast.ToInt(v.Get("bounceRandFactor"))
	cfg.AiVisibilityRange = cast.ToFloat64(v.Get("aiVisibilityRange"))
	cfg.AiPaddleSpeed = cast.ToFloat64(v.Get("aiPaddleSpeed"))
	cfg.WinningScore = cast.ToInt(v.Get("winningScore"))
	cfg.ServeDelay = time.Duration(cast.ToInt64(v.Get("serveDelayMs"))) * time.Millisecond
	cfg.TickInterval = time.Duration(cast.ToInt64(v.Get("tickIntervalMs"))) * time.Millisecond
	cfg.LeftKey = cast.ToString(v.Get("leftKey"))
	cfg.RightKey = cast.ToString(v.Get("rightKey"))

	return cfg
}
