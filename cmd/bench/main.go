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

// 主控台量測入口：跑完整的（編碼 × 場景）表並輸出 ns/iter 表格。
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/zintix-labs/randlab/bench"
	"github.com/zintix-labs/randlab/perf"
)

//go:embed bench.yaml
var defaultConfig []byte

func main() {
	var (
		cfgPath = flag.String("config", "", "bench config yaml (default: embedded)")
		seed    = flag.Int64("seed", 0, "override seed (0 = keep config)")
		rounds  = flag.Int("rounds", 0, "override rounds (0 = keep config)")
		core    = flag.String("core", "", "override core: xsr128|pcg32 (empty = keep config)")
		pmode   = flag.String("pprof", "", "profile the run: cpu|heap|allocs (empty = off)")
	)
	flag.Parse()

	raw := defaultConfig
	if *cfgPath != "" {
		b, err := os.ReadFile(*cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		raw = b
	}
	cfg, err := bench.GetConfigByYAML(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}
	if *core != "" {
		cfg.Core = *core
	}

	var (
		results []bench.Result
		used    time.Duration
	)
	perf.RunPProf(func() {
		results, used, err = bench.Run(cfg)
	}, *pmode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	bench.StdOut(results, used)
}
