package main

import (
	"PongSolo/logger"
)

func main() {
	logger.Log.Init()
	startLocalGame()
}
