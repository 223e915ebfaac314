package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell"

	"PongSolo/core"
)

const PaddleSymbol = 0x2588 // 球拍符號
const KeyHoldTicks = 3

type keyBinding struct {
	onDown func()
	onUp   func()
}

// terminalScreen 把core的世界座標(原點在中央 y向上)換算成終端機的格子
type terminalScreen struct {
	screen    tcell.Screen
	arena     core.Arena
	inputChan chan string
	bindings  map[string]keyBinding
	heldUntil map[string]int
	tick      int
}

func newTerminalScreen(arena core.Arena) *terminalScreen {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if e := screen.Init(); e != nil {
		fmt.Fprintf(os.Stderr, "%v\n", e)
		os.Exit(1)
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)

	t := &terminalScreen{
		screen:    screen,
		arena:     arena,
		inputChan: make(chan string, 16),
		bindings:  map[string]keyBinding{},
		heldUntil: map[string]int{},
	}

	//建立一個goroutine去監聽鍵盤的事件
	go t.pollEvents()
	return t
}

func (t *terminalScreen) pollEvents() {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				t.screen.Fini()
				os.Exit(0)
			}
			t.inputChan <- ev.Name()
		}
	}
}

func (t *terminalScreen) Bind(key string, onDown func(), onUp func()) {
	t.bindings[key] = keyBinding{onDown: onDown, onUp: onUp}
}

func (t *terminalScreen) toCell(x, y float64) (int, int) {
	cols, rows := t.screen.Size()
	col := int((x + t.arena.Width/2) / t.arena.Width * float64(cols))
	row := int((t.arena.Height/2 - y) / t.arena.Height * float64(rows))
	return col, row
}

func (t *terminalScreen) DrawRectangle(minX, maxX, minY, maxY float64, color string) {
	left, bottom := t.toCell(minX, minY)
	right, top := t.toCell(maxX, maxY)
	style := tcell.StyleDefault.Foreground(toTcellColor(color))
	for row := top; row <= bottom; row++ {
		for col := left; col <= right; col++ {
			t.screen.SetContent(col, row, PaddleSymbol, nil, style)
		}
	}
}

func (t *terminalScreen) DrawText(value string, x, y float64, font string, size int) {
	//終端機沒有字型跟字級可以選
	col, row := t.toCell(x, y)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range value {
		t.screen.SetContent(col+i, row, ch, nil, style)
	}
}

func (t *terminalScreen) PresentFrame() {
	t.screen.Show()
	t.screen.Clear()
	t.pumpInput()
}

// pumpInput 終端機收不到放開按鍵的事件，幾個tick沒再收到同一個按鍵就視為放開
func (t *terminalScreen) pumpInput() {
	for {
		var key string
		select {
		case key = <-t.inputChan:
		default:
		}
		if key == "" {
			break
		}
		binding, ok := t.bindings[key]
		if !ok {
			continue
		}
		if _, held := t.heldUntil[key]; !held {
			binding.onDown()
		}
		t.heldUntil[key] = t.tick + KeyHoldTicks
	}

	for key, until := range t.heldUntil {
		if t.tick >= until {
			t.bindings[key].onUp()
			delete(t.heldUntil, key)
		}
	}
	t.tick += 1
}

func (t *terminalScreen) Fini() {
	t.screen.Fini()
}

func toTcellColor(color string) tcell.Color {
	switch color {
	case "white":
		return tcell.ColorWhite
	case "blue":
		return tcell.ColorBlue
	case "red":
		return tcell.ColorRed
	case "green":
		return tcell.ColorGreen
	default:
		return tcell.ColorWhite
	}
}
