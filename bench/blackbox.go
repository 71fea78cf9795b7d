package bench

// 光學屏障（black box）：量測迴圈的天敵是編譯器把整圈工作摺疊掉。
// Opaque 是編譯器不可見的恆等函式——包住邊界值可擋常數摺疊，
// 包住迭代器可擋前處理抬升；Keep 讓每輪結果保持可觀測。

// Sink 收集所有場景的輸出，防止結果被判定為死碼。
var Sink uint64

//go:noinline
func Opaque[T any](v T) T {
	return v
}

//go:noinline
func Keep(v uint64) {
	Sink += v
}
