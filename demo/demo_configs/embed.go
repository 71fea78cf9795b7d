package demo_configs

import (
	"embed"
)

// FS 內嵌展示用的預設設定 YAML，給 demo 與外部使用者取用。
//
//go:embed *.yaml
var FS embed.FS
