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

// Package demo 提供開箱即用的展示設定：固定種子的 Lab + 伺服器設定，
// 讓 cmd/dev 不帶任何旗標就能跑起一個可重現的抽樣服務。
package demo

import (
	"gopkg.in/yaml.v3"

	"github.com/zintix-labs/randlab"
	"github.com/zintix-labs/randlab/core"
	"github.com/zintix-labs/randlab/demo/demo_configs"
	"github.com/zintix-labs/randlab/errs"
	"github.com/zintix-labs/randlab/server/logger"
	"github.com/zintix-labs/randlab/server/svrcfg"
)

type demoCfg struct {
	Seed     int64 `yaml:"seed"`
	DrawMax  int   `yaml:"draw_max"`
	CheckMax int   `yaml:"check_max"`
}

// NewLab 以內嵌設定的固定種子建立 Lab。
func NewLab() (*randlab.Lab, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	return randlab.NewWithSeed(core.Default(), cfg.Seed)
}

// NewServerConfig 組出完整的伺服器設定（ModeDev logger + 展示 Lab）。
func NewServerConfig() (*svrcfg.SvrCfg, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}
	lab, err := randlab.NewWithSeed(core.Default(), cfg.Seed)
	if err != nil {
		return nil, errs.NewFatal("new lab failed:" + err.Error())
	}
	log, _ := logger.NewAsync(4096, logger.ModeDev)
	return &svrcfg.SvrCfg{
		Log:      log,
		DrawMax:  cfg.DrawMax,
		CheckMax: cfg.CheckMax,
		Lab:      lab,
	}, nil
}

func load() (*demoCfg, error) {
	raw, err := demo_configs.FS.ReadFile("demo.yaml")
	if err != nil {
		return nil, errs.Wrap(err, "read demo.yaml failed")
	}
	cfg := &demoCfg{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshall yaml")
	}
	return cfg, nil
}
