package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"PongSolo/core"
)

func startLocalGame() {
	cfg := core.ReadMatchProperties()
	term := newTerminalScreen(core.Arena{Width: cfg.ArenaWidth, Height: cfg.ArenaHeight})

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	match, err := core.NewMatch(cfg, term, term, rng)
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	//終端機每幀都會清空畫面，所以每個tick全部重繪
	match.SetFullRedraw(true)

	winner := match.Run()
	term.Fini()

	if winner == 0 {
		fmt.Println("你贏了！")
	} else {
		fmt.Println("AI獲勝！")
	}
}
