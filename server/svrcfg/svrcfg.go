// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svrcfg

import (
	"log/slog"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/logger"
)

type SvrCfg struct {
	Log      *slog.Logger
	DrawMax  int          // 單一請求可抽的最大個數
	CheckMax int          // 均勻性檢定可抽的最大個數
	Lab      *randlab.Lab // 抽樣入口
}

func (sc *SvrCfg) Vaild() error {
	if sc.Log != nil {
		if ah, ok := sc.Log.Handler().(*logger.AsyncHandler); ok && !ah.Ready() {
			return errs.NewFatal("nil default log handler: async handler is nil")
		}
	} else {
		// 保持安靜、合法
		sc.Log, _ = logger.NewAsync(1024, logger.ModeDev)
	}

	// 1 <= sc.DrawMax <= 100_000
	// for 資源管理
	if sc.DrawMax == 0 {
		sc.DrawMax = 10_000
	}
	sc.DrawMax = max(1, sc.DrawMax)
	sc.DrawMax = min(100_000, sc.DrawMax)

	// 1_000 <= sc.CheckMax <= 10_000_000
	if sc.CheckMax == 0 {
		sc.CheckMax = 1_000_000
	}
	sc.CheckMax = max(1_000, sc.CheckMax)
	sc.CheckMax = min(10_000_000, sc.CheckMax)

	if sc.Lab == nil {
		return errs.NewFatal("lab is required")
	}
	return nil
}
