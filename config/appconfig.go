// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"github.com/barkimedes/go-deepcopy"
)

type AppConfig struct {
	DarkTheme bool `yaml:",omitempty"`
	Chart     ChartConfig
	Viewer    ViewerConfig
}

type ViewerConfig struct {
	ListenAddr string `yaml:",omitempty"`
}

const defaultListenAddr = "localhost:8080"

func NewAppConfig() AppConfig {
	return AppConfig{
		Chart: NewChartConfig(),
		Viewer: ViewerConfig{
			ListenAddr: defaultListenAddr,
		},
	}
}

func (a *AppConfig) deepCopy() AppConfig {
	c, err := deepcopy.Anything(a)
	if err != nil {
		panic(err)
	}
	return *c.(*AppConfig)
}

func (a *AppConfig) Sanitize() {
	a.RestoreDefaults()
	a.Chart.sanitize()
}

// We do not want to store certain default values in the configuration file,
// so that changed defaults of a new release are picked up.
func (a *AppConfig) RemoveDefaults() {
	a.Chart.removeDefaults()
	if a.Viewer.ListenAddr == defaultListenAddr {
		a.Viewer.ListenAddr = ""
	}
}

// Restore default values which are not stored in the configuration file.
func (a *AppConfig) RestoreDefaults() {
	a.Chart.restoreDefaults()
	if len(a.Viewer.ListenAddr) == 0 {
		a.Viewer.ListenAddr = defaultListenAddr
	}
}
