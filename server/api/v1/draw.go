package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/dist"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// DrawResponse 是一次抽樣請求的回應。
type DrawResponse struct {
	Type   string `json:"type"`
	Shape  string `json:"shape"`
	Seed   int64  `json:"seed"`
	Count  int    `json:"count"`
	Values any    `json:"values"`
}

// Draw 依 query 參數抽 n 個值：
//
//	type  : u32 | i64 | f64（預設 u32）
//	shape : full | span | from | to（預設 full）
//	lo,hi : 依 shape 需要；span 要兩個、from 要 lo、to 要 hi
//	n     : 抽樣個數（預設 1，上限 DrawMax）
//	seed  : 指定則可重現；省略由 Lab 的種子生成器發放
func (c *DrawHandler) Draw(w http.ResponseWriter, q *http.Request) {
	// 請求方法校驗
	if q.Method != http.MethodGet && q.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	typ := param(q, "type", "u32")
	shape := param(q, "shape", "full")

	n, err := strconv.Atoi(param(q, "n", "1"))
	if err != nil || n < 1 {
		http.Error(w, "n must be a positive integer", http.StatusBadRequest)
		return
	}
	if n > c.drawMax {
		n = c.drawMax
	}

	var s *randlab.Session
	if raw := q.URL.Query().Get("seed"); raw != "" {
		seed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			http.Error(w, "seed must be an integer", http.StatusBadRequest)
			return
		}
		s = c.lab.NewSessionWithSeed(seed)
	} else {
		s = c.lab.NewSession()
	}

	resp := DrawResponse{Type: typ, Shape: shape, Seed: s.Seed(), Count: n}
	switch typ {
	case "u32":
		resp.Values, err = c.drawUint32(s, q, shape, n)
	case "i64":
		resp.Values, err = c.drawInt64(s, q, shape, n)
	case "f64":
		resp.Values, err = c.drawFloat64(s, q, shape, n)
	default:
		http.Error(w, "type must be u32, i64 or f64", http.StatusBadRequest)
		return
	}
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		httperr.Errs(w, err)
		return
	}
}

func (c *DrawHandler) drawUint32(s *randlab.Session, q *http.Request, shape string, n int) ([]uint32, error) {
	var d dist.Desc
	switch shape {
	case "full":
		d = dist.Full{}
	case "span":
		lo, err := parseU32(q, "lo")
		if err != nil {
			return nil, err
		}
		hi, err := parseU32(q, "hi")
		if err != nil {
			return nil, err
		}
		d = dist.Span[uint32]{Lo: lo, Hi: hi}
	case "from":
		lo, err := parseU32(q, "lo")
		if err != nil {
			return nil, err
		}
		d = dist.From[uint32]{Lo: lo}
	case "to":
		hi, err := parseU32(q, "hi")
		if err != nil {
			return nil, err
		}
		d = dist.To[uint32]{Hi: hi}
	default:
		return nil, errShape
	}
	it, err := s.IterUint32(d)
	if err != nil {
		return nil, err
	}
	return it.Take(n), nil
}

func (c *DrawHandler) drawInt64(s *randlab.Session, q *http.Request, shape string, n int) ([]int64, error) {
	var d dist.Desc
	switch shape {
	case "full":
		d = dist.Full{}
	case "span":
		lo, err := parseI64(q, "lo")
		if err != nil {
			return nil, err
		}
		hi, err := parseI64(q, "hi")
		if err != nil {
			return nil, err
		}
		d = dist.Span[int64]{Lo: lo, Hi: hi}
	case "from":
		lo, err := parseI64(q, "lo")
		if err != nil {
			return nil, err
		}
		d = dist.From[int64]{Lo: lo}
	case "to":
		hi, err := parseI64(q, "hi")
		if err != nil {
			return nil, err
		}
		d = dist.To[int64]{Hi: hi}
	default:
		return nil, errShape
	}
	it, err := s.IterInt64(d)
	if err != nil {
		return nil, err
	}
	return it.Take(n), nil
}

func (c *DrawHandler) drawFloat64(s *randlab.Session, q *http.Request, shape string, n int) ([]float64, error) {
	var d dist.Desc
	switch shape {
	case "full":
		d = dist.Full{}
	case "span":
		lo, err := parseF64(q, "lo")
		if err != nil {
			return nil, err
		}
		hi, err := parseF64(q, "hi")
		if err != nil {
			return nil, err
		}
		d = dist.Span[float64]{Lo: lo, Hi: hi}
	default:
		// 浮點只支援 full / span
		return nil, dist.ErrUnsupportedRange
	}
	it, err := s.IterFloat64(d)
	if err != nil {
		return nil, err
	}
	return it.Take(n), nil
}

// ============================================================
// ** DrawHandler **
// ============================================================

type DrawHandler struct {
	lab     *randlab.Lab
	drawMax int
}

func NewDrawHandler(sCfg *svrcfg.SvrCfg) *DrawHandler {
	return &DrawHandler{lab: sCfg.Lab, drawMax: sCfg.DrawMax}
}

var errShape = errs.NewWarn("shape must be full, span, from or to")

func param(q *http.Request, key, def string) string {
	if v := q.URL.Query().Get(key); v != "" {
		return v
	}
	return def
}

func parseU32(q *http.Request, key string) (uint32, error) {
	raw := q.URL.Query().Get(key)
	if raw == "" {
		return 0, errs.NewWarn(key + " is required for this shape")
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		// strconv 錯誤是呼叫端輸入問題，降為 Warn 讓邊界回 400
		e := errs.Wrap(err, key+" must be a u32")
		e.ErrLv = errs.Warn
		return 0, e
	}
	return uint32(v), nil
}

func parseI64(q *http.Request, key string) (int64, error) {
	raw := q.URL.Query().Get(key)
	if raw == "" {
		return 0, errs.NewWarn(key + " is required for this shape")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		e := errs.Wrap(err, key+" must be an i64")
		e.ErrLv = errs.Warn
		return 0, e
	}
	return v, nil
}

func parseF64(q *http.Request, key string) (float64, error) {
	raw := q.URL.Query().Get(key)
	if raw == "" {
		return 0, errs.NewWarn(key + " is required for this shape")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		e := errs.Wrap(err, key+" must be an f64")
		e.ErrLv = errs.Warn
		return 0, e
	}
	return v, nil
}
