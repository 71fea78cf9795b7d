package middleware

import (
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"
)

// Recover 攔截 handler panic，回 500 並印出 backtrace。
// 抽樣期不會失敗是核心的不變量；真的 panic 代表有 bug，讓它留在 log 裡。
func Recover(next http.Handler) http.Handler {
	return chimid.Recoverer(next)
}
