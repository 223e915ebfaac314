package core

// RenderSink 畫面輸出的外部介面，每個tick最後要呼叫一次PresentFrame
type RenderSink interface {
	DrawRectangle(minX, maxX, minY, maxY float64, color string)
	DrawText(value string, x, y float64, font string, size int)
	PresentFrame()
}

// InputSource 鍵盤事件的外部介面，onDown/onUp只會去改球拍的移動意圖
type InputSource interface {
	Bind(key string, onDown func(), onUp func())
}

// Entity 每個tick被Match更新一次的遊戲物件
type Entity interface {
	Update()
	Invalidate()
}
