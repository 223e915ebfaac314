package core

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"PongSolo/logger"
)

// Match 持有一場比賽的所有物件，每個tick依固定順序更新：球 -> 球拍 -> 計分板
type Match struct {
	Config MatchConfig
	Id     string

	ball     *Ball
	player   *Paddle
	aiPaddle *Paddle
	ai       *AiDriver
	scores   []*Scorekeeper
	entities []Entity

	sink        RenderSink
	fullRedraw  bool
	frozenUntil time.Time
	now         func() time.Time
}

func NewMatch(cfg MatchConfig, sink RenderSink, input InputSource, rng *rand.Rand) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	m := &Match{
		Config: cfg,
		Id:     uuid.NewString(),
		sink:   sink,
		now:    time.Now,
	}

	arena := Arena{Width: cfg.ArenaWidth, Height: cfg.ArenaHeight}
	topPaddleY := arena.Top() - cfg.PaddleDistFromBorder

	//玩家在上方，AI在下方
	m.player = NewPaddle(sink, arena, cfg.PaddleWidth, cfg.PaddleHeight,
		0, topPaddleY, cfg.PaddleSpeed, cfg.PaddleBoundary, cfg.PaddleColor, nil)
	if input != nil {
		m.player.BindKeys(input, cfg.LeftKey, cfg.RightKey)
	}

	m.ai = NewAiDriver(cfg.AiPaddleSpeed, cfg.AiVisibilityRange, rng)
	m.aiPaddle = NewPaddle(sink, arena, cfg.PaddleWidth, cfg.PaddleHeight,
		0, -topPaddleY, cfg.AiPaddleSpeed, cfg.PaddleBoundary, cfg.PaddleColor, m.ai)

	m.scores = []*Scorekeeper{
		NewScorekeeper(sink, arena.Left()+50, 100, cfg.ScoreFont, cfg.ScoreSize),
		NewScorekeeper(sink, arena.Left()+50, -100, cfg.ScoreFont, cfg.ScoreSize),
	}

	paddles := []*Paddle{m.player, m.aiPaddle}
	m.ball = NewBall(sink, cfg, paddles, m.scores, rng, m)
	m.ai.SetBall(m.ball)

	m.entities = []Entity{m.ball, m.player, m.aiPaddle, m.scores[0], m.scores[1]}

	logger.Log.Infof(logger.MatchStartMsg, m.Id)
	return m, nil
}

// Freeze 發球延遲：設定恢復時間，凍結期間整場比賽都不更新
func (m *Match) Freeze(d time.Duration) {
	m.frozenUntil = m.now().Add(d)
}

// SetFullRedraw 給每幀都會清空畫面的輸出端(終端機)用，每個tick強制全部重繪
func (m *Match) SetFullRedraw(on bool) {
	m.fullRedraw = on
}

// Tick 一個模擬週期，每個物件只會被更新一次
func (m *Match) Tick() {
	if m.now().Before(m.frozenUntil) {
		m.sink.PresentFrame()
		return
	}
	if m.fullRedraw {
		for _, e := range m.entities {
			e.Invalidate()
		}
	}
	for _, e := range m.entities {
		e.Update()
	}
	m.sink.PresentFrame()
}

// Winner 回傳達到獲勝分數的計分板索引，還沒分出勝負回傳-1
func (m *Match) Winner() int {
	for i, s := range m.scores {
		if s.Score >= m.Config.WinningScore {
			return i
		}
	}
	return -1
}

// Run 跑到分出勝負為止
func (m *Match) Run() int {
	for {
		m.Tick()
		if winner := m.Winner(); winner >= 0 {
			logger.Log.Infof(logger.MatchOverMsg, m.Id, winner, m.scores[winner].Score)
			return winner
		}
		time.Sleep(m.Config.TickInterval)
	}
}
