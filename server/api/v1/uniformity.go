package v1

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/server/httperr"
	"github.com/zintix-labs/randlab/server/svrcfg"
	"github.com/zintix-labs/randlab/stats"
)

// UniformResponse 是一次均勻性檢定的回應。
type UniformResponse struct {
	Type  string    `json:"type"`
	Lo    string    `json:"lo"`
	Hi    string    `json:"hi"`
	N     int       `json:"n"`
	Alpha float64   `json:"alpha"`
	GOF   stats.GOF `json:"gof"`
	Pass  bool      `json:"pass"`
}

// Uniformity 對 [lo, hi) 的抽樣跑卡方均勻性檢定：
//
//	type  : u32 | i64（預設 u32）
//	lo,hi : 區間端點（預設 [0, 1024)）
//	n     : 抽樣個數（預設 1_000_000，上限 CheckMax）
//	alpha : 顯著水準（預設 0.001）
//	seed  : 指定則可重現
func (c *UniformHandler) Uniformity(w http.ResponseWriter, q *http.Request) {
	if q.Method != http.MethodGet && q.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	typ := param(q, "type", "u32")

	n, err := strconv.Atoi(param(q, "n", "1000000"))
	if err != nil || n < 1 {
		http.Error(w, "n must be a positive integer", http.StatusBadRequest)
		return
	}
	if n > c.checkMax {
		n = c.checkMax
	}

	alpha, err := strconv.ParseFloat(param(q, "alpha", "0.001"), 64)
	if err != nil || alpha <= 0 || alpha >= 1 {
		http.Error(w, "alpha must be in (0, 1)", http.StatusBadRequest)
		return
	}

	var r core.PRNG
	if raw := q.URL.Query().Get("seed"); raw != "" {
		seed, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			http.Error(w, "seed must be an integer", http.StatusBadRequest)
			return
		}
		r = c.lab.NewCoreWithSeed(seed)
	} else {
		r = c.lab.NewCore()
	}

	resp := UniformResponse{Type: typ, N: n, Alpha: alpha}
	switch typ {
	case "u32":
		lo, perr := parseU32Def(q, "lo", 0)
		if perr != nil {
			httperr.Errs(w, perr)
			return
		}
		hi, perr := parseU32Def(q, "hi", 1024)
		if perr != nil {
			httperr.Errs(w, perr)
			return
		}
		resp.Lo = strconv.FormatUint(uint64(lo), 10)
		resp.Hi = strconv.FormatUint(uint64(hi), 10)
		resp.GOF, err = stats.UniformCheckUint32(r, lo, hi, n)
	case "i64":
		lo, perr := parseI64Def(q, "lo", 0)
		if perr != nil {
			httperr.Errs(w, perr)
			return
		}
		hi, perr := parseI64Def(q, "hi", 1024)
		if perr != nil {
			httperr.Errs(w, perr)
			return
		}
		resp.Lo = strconv.FormatInt(lo, 10)
		resp.Hi = strconv.FormatInt(hi, 10)
		resp.GOF, err = stats.UniformCheckInt64(r, lo, hi, n)
	default:
		http.Error(w, "type must be u32 or i64", http.StatusBadRequest)
		return
	}
	if err != nil {
		httperr.Errs(w, err)
		return
	}
	resp.Pass = resp.GOF.Pass(alpha)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		httperr.Errs(w, err)
		return
	}
}

// ============================================================
// ** UniformHandler **
// ============================================================

type UniformHandler struct {
	lab      *randlab.Lab
	checkMax int
}

func NewUniformHandler(sCfg *svrcfg.SvrCfg) *UniformHandler {
	return &UniformHandler{lab: sCfg.Lab, checkMax: sCfg.CheckMax}
}

func parseU32Def(q *http.Request, key string, def uint32) (uint32, error) {
	raw := q.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return parseU32(q, key)
}

func parseI64Def(q *http.Request, key string, def int64) (int64, error) {
	raw := q.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return parseI64(q, key)
}
