package v1

import (
	"encoding/json"
	"net/http"

	"github.com/zintix-labs/randlab/bench"
	"github.com/zintix-labs/randlab/server/httperr"
)

// 伺服端跑 bench 的資源上限；超過就夾到上限，不回錯誤。
const (
	benchMaxRounds = 200
	benchMaxReps   = 1_000
)

// BenchResponse 是一次量測請求的回應。
type BenchResponse struct {
	Results []bench.Result `json:"results"`
	UsedMs  int64          `json:"used_ms"`
}

// Bench 以 JSON body 的 bench 設定執行一輪量測並回傳結果表。
// body 省略欄位走預設值；progress 一律關閉（伺服端沒有主控台）。
func Bench(w http.ResponseWriter, q *http.Request) {
	// Post方法限定
	if q.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cfg := new(bench.Config)
	if q.Body != nil {
		if err := json.NewDecoder(q.Body).Decode(cfg); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	cfg.Progress = false
	if cfg.Rounds > benchMaxRounds {
		cfg.Rounds = benchMaxRounds
	}
	if cfg.Reps > benchMaxReps {
		cfg.Reps = benchMaxReps
	}

	results, used, err := bench.Run(cfg)
	if err != nil {
		httperr.Errs(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(BenchResponse{
		Results: results,
		UsedMs:  used.Milliseconds(),
	}); err != nil {
		httperr.Errs(w, err)
		return
	}
}
