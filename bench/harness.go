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

package bench

import (
	"crypto/rand"
	"io"
	"math"
	"math/big"
	"time"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/zintix-labs/randlab/core"
)

// Result 是一個（編碼 × 場景）的量測結果。
type Result struct {
	Encoding  string  `json:"Encoding"`
	Scenario  string  `json:"Scenario"`
	NsPerIter float64 `json:"NsPerIter"` // 每 iteration 的平均耗時（奈秒）
	Std       float64 `json:"Std"`       // 輪間標準差（奈秒）
	Rounds    int     `json:"Rounds"`
}

// Run 依設定執行整張場景表並回傳結果與總用時。
//
// 量測方式：每個場景跑 warmup + rounds 輪；每輪從同一個 base 核心
// Clone 一份新來源（每輪消費完全相同的原始字序列），連續執行 reps 次
// 場景閉包後取平均為該輪樣本。輪間樣本做 mean / stddev。
func Run(c *Config) ([]Result, time.Duration, error) {
	if err := c.init(); err != nil {
		return nil, 0, err
	}
	seed := c.Seed
	if seed == 0 {
		s, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			return nil, 0, err
		}
		seed = s.Int64()
	}
	cf := c.coreFactory()

	var table []Scenario
	for _, enc := range c.Encodings {
		scs, err := Scenarios(enc)
		if err != nil {
			return nil, 0, err
		}
		for _, sc := range scs {
			if c.wantScenario(sc.Name) {
				table = append(table, sc)
			}
		}
	}

	total := len(table) * (c.Warmup + c.Rounds)
	bar := pb.StartNew(total)
	if !c.Progress {
		bar.SetWriter(io.Discard)
	}

	results := make([]Result, 0, len(table))
	for _, sc := range table {
		base := cf.New(seed)
		samples := make([]float64, 0, c.Rounds)
		for round := 0; round < c.Warmup+c.Rounds; round++ {
			r := base.Clone()
			start := time.Now()
			for rep := 0; rep < c.Reps; rep++ {
				sc.Run(r)
			}
			elapsed := time.Since(start)
			if round >= c.Warmup {
				samples = append(samples, float64(elapsed.Nanoseconds())/float64(c.Reps))
			}
			bar.Increment()
		}
		// stat.StdDev 對單一樣本回傳 NaN，rounds=1 時以 0 表示無離散度
		std := 0.0
		if len(samples) > 1 {
			std = stat.StdDev(samples, nil)
		}
		results = append(results, Result{
			Encoding:  sc.Encoding,
			Scenario:  sc.Name,
			NsPerIter: stat.Mean(samples, nil),
			Std:       std,
			Rounds:    c.Rounds,
		})
	}
	used := time.Since(bar.StartTime())
	bar.Finish()

	return results, used, nil
}

func (c *Config) coreFactory() core.CoreFactory {
	if c.Core == "pcg32" {
		return &core.PCG32Factory{}
	}
	return core.Default()
}
