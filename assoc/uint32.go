package assoc

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// Uint32Constraint 是 u32 的約束紀錄。
//
// Bounded 時三個欄位滿足：
//   - width > 0
//   - zone 是不超過 2^32−1 的最大 width 倍數（zone 可被 width 整除）
//
// low 以無號像存放；輸出為 low +wrap (v mod width)。
type Uint32Constraint struct {
	full  bool
	low   uint32
	width uint32
	zone  uint32
}

// Uint32Full 回傳涵蓋整個 u32 值域的約束。
func Uint32Full() Uint32Constraint {
	return Uint32Constraint{full: true}
}

// Uint32Span 建構半開區間 [lo, hi) 的約束；lo ≥ hi 回傳 ErrEmptyInterval。
func Uint32Span(lo, hi uint32) (Uint32Constraint, error) {
	if lo >= hi {
		return Uint32Constraint{}, dist.ErrEmptyInterval
	}
	w := hi - lo
	return Uint32Constraint{low: lo, width: w, zone: sampler.Zone32(w)}, nil
}

// Uint32From 建構 [lo, 2^32−1] 的約束。
// lo == 0 時整段範圍就是整個值域，直接化約成 Full 路徑（跳過拒絕迴圈）。
func Uint32From(lo uint32) Uint32Constraint {
	if lo == 0 {
		return Uint32Full()
	}
	w := sampler.WidthFromU32(lo)
	return Uint32Constraint{low: lo, width: w, zone: sampler.Zone32(w)}
}

// Uint32To 建構 [0, hi) 的約束，等價於 Uint32Span(0, hi)。
func Uint32To(hi uint32) (Uint32Constraint, error) {
	return Uint32Span(0, hi)
}

// ConstrainUint32 把任意範圍描述子消化成 u32 約束紀錄。
// 這是描述子 → 約束的唯一轉換入口；width/zone 只在這裡計算一次。
func ConstrainUint32(d dist.Desc) (Uint32Constraint, error) {
	switch d := d.(type) {
	case dist.Full:
		return Uint32Full(), nil
	case dist.Span[uint32]:
		return Uint32Span(d.Lo, d.Hi)
	case dist.From[uint32]:
		return Uint32From(d.Lo), nil
	case dist.To[uint32]:
		return Uint32To(d.Hi)
	default:
		return Uint32Constraint{}, dist.ErrUnsupportedRange
	}
}

// Gen 依約束紀錄抽出一個值。抽樣期永不失敗。
func (c Uint32Constraint) Gen(r core.RAND) uint32 {
	if c.full {
		return r.Uint32()
	}
	return sampler.Draw32(r, c.low, c.width, c.zone)
}

// GenUint32 單次抽樣：消化描述子後立即抽一個值。
// 重複抽樣請改用 ConstrainUint32 + Gen 或 IterUint32，避免重付轉換成本。
func GenUint32(r core.RAND, d dist.Desc) (uint32, error) {
	c, err := ConstrainUint32(d)
	if err != nil {
		return 0, err
	}
	return c.Gen(r), nil
}
