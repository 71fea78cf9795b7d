package app

import "context"

// Component 抽象「可啟動 / 可關閉」的長生命週期元件。
//   - Run 應阻塞直到元件停止（正常或錯誤）。
//   - Shutdown 要求優雅關閉；實作方應尊重 ctx 的 deadline/cancel。
//
// randlab 裡的典型實例是 HTTP server（netsvr.ChiAdapter）；
// 介面保持最小，之後要掛背景工作（排程量測、結果匯出）也能直接納管。
type Component interface {
	Run() error
	Shutdown(ctx context.Context) error
}
