package logger

const MatchStartMsg = "比賽開始 Match id:%s"
const MatchOverMsg = "比賽結束 Match id:%s 獲勝者:%d 分數:%d"

const GoalScoredMsg = "進球！計分板 %d 得分 目前分數:%d"
const BallBouncedMsg = "Direction: %v  Speed: %v  Bounces: %d"

const ConfigFallbackMsg = "讀不到match.properties 使用預設值: %v"
