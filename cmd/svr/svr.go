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

package main

import (
	"flag"
	"fmt"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/server"
	"github.com/zintix-labs/randlab/server/logger"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

// This command is intentionally a "lab server" entrypoint for the randlab repo.
// For production deployments, use a separate scaffold project and run ModeProd.
func main() {
	cfg, err := loadConfigFromFlags()
	if err != nil {
		fmt.Println(err)
		return
	}
	server.Run(cfg)
}

type config struct {
	LogMode string
	Seed    int64
	DrawMax int
}

func loadConfigFromFlags() (*svrcfg.SvrCfg, error) {
	cfg := new(config)
	flag.StringVar(&cfg.LogMode, "log-mode", "ModeDev", "log mode: ModeDev|ModeProd|ModeSilence")
	flag.Int64Var(&cfg.Seed, "seed", 0, "lab init seed (0 = random)")
	flag.IntVar(&cfg.DrawMax, "draw-max", 10_000, "max values per draw request")

	flag.Parse()

	log, _ := logger.NewAsync(4096, cfg.norm())

	var (
		lab *randlab.Lab
		err error
	)
	if cfg.Seed != 0 {
		lab, err = randlab.NewWithSeed(core.Default(), cfg.Seed)
	} else {
		lab, err = randlab.New(core.Default())
	}
	if err != nil {
		return nil, err
	}
	sCfg := &svrcfg.SvrCfg{
		Log:     log,
		DrawMax: cfg.DrawMax,
		Lab:     lab,
	}
	return sCfg, nil
}

func (cfg *config) norm() logger.LogMode {
	switch cfg.LogMode {
	case "ModeDev":
		return logger.ModeDev
	case "ModeProd":
		return logger.ModeProd
	case "ModeSilence":
		return logger.ModeSilence
	default:
		return logger.ModeDev
	}
}
