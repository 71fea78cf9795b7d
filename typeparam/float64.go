package typeparam

import (
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/sampler"
)

// FullFloat64 回傳熵來源的原生 [0,1) 輸出。
func FullFloat64(r core.RAND) float64 {
	return r.Float64()
}

// SpanFloat64 抽出 [lo, hi) 的均勻值。
// lo < hi 不成立（含 NaN）回傳 ErrEmptyInterval。
func SpanFloat64(r core.RAND, lo, hi float64) (float64, error) {
	if !(lo < hi) {
		return 0, dist.ErrEmptyInterval
	}
	return sampler.DrawFloat(r, lo, hi), nil
}

// GenFloat64 依描述子抽一個值。浮點只支援 Full 與 Span。
func GenFloat64(r core.RAND, d dist.Desc) (float64, error) {
	switch d := d.(type) {
	case dist.Full:
		return FullFloat64(r), nil
	case dist.Span[float64]:
		return SpanFloat64(r, d.Lo, d.Hi)
	default:
		return 0, dist.ErrUnsupportedRange
	}
}
