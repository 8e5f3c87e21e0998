// Copyright (c) 2024-2025, The RFSIM Authors.
// All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
// 1. Redistributions of source code must retain the above copyright
//    notice, this list of conditions and the following disclaimer.
// 2. Redistributions in binary form must reproduce the above copyright
//    notice, this list of conditions and the following disclaimer in the
//    documentation and/or other materials provided with the distribution.
// 3. Neither the name of the copyright holder nor the
//    names of its contributors may be used to endorse or promote products
//    derived from this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/rfsimtools/rfsim/coding"
	"github.com/rfsimtools/rfsim/environment"
	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/material"
	"github.com/rfsimtools/rfsim/medium"
	"github.com/rfsimtools/rfsim/prng"
	"github.com/rfsimtools/rfsim/types"
)

type pathLossConfig struct {
	Model        string  `yaml:"model"` // freeSpace or logDistance
	Alpha        float64 `yaml:"alpha"`
	SystemLossDb float64 `yaml:"systemLossDb"`
	ExponentDb   float64 `yaml:"exponentDb"`
	FixedLossDb  float64 `yaml:"fixedLossDb"`
}

type obstacleLossConfig struct {
	Model string `yaml:"model"` // dielectric, ideal or none
}

type noiseConfig struct {
	PowerDbm float64 `yaml:"powerDbm"`
}

type fadingConfig struct {
	SigmaDb float64 `yaml:"sigmaDb"`
	Seed    uint64  `yaml:"seed"`
}

type radioDefaultsConfig struct {
	TxPowerDbm              float64 `yaml:"txPowerDbm"`
	CenterFrequency         float64 `yaml:"centerFrequency"`
	Bandwidth               float64 `yaml:"bandwidth"`
	Bitrate                 float64 `yaml:"bitrate"`
	RxSensitivityDbm        float64 `yaml:"rxSensitivityDbm"`
	MinInterferencePowerDbm float64 `yaml:"minInterferencePowerDbm"`
	SnirThresholdDb         float64 `yaml:"snirThresholdDb"`
	AntennaGainDb           float64 `yaml:"antennaGainDb"`
}

type radioSpec struct {
	Mac  string  `yaml:"mac"`
	Mode string  `yaml:"mode"` // off, rx, tx or trx
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
}

type objectSpec struct {
	Name     string     `yaml:"name"`
	Material string     `yaml:"material"`
	Position [3]float64 `yaml:"position"`
	Size     [3]float64 `yaml:"size"`
}

type fileConfig struct {
	LogLevel    string `yaml:"logLevel"`
	MetricsAddr string `yaml:"metricsAddr"`

	Medium        medium.Config       `yaml:"medium"`
	PathLoss      pathLossConfig      `yaml:"pathLoss"`
	ObstacleLoss  obstacleLossConfig  `yaml:"obstacleLoss"`
	Noise         *noiseConfig        `yaml:"backgroundNoise"`
	Fading        *fadingConfig       `yaml:"fading"`
	Codec         *coding.Config      `yaml:"codec"`
	MacAgingSec   float64             `yaml:"macTableAgingSeconds"`
	RadioDefaults radioDefaultsConfig `yaml:"radioDefaults"`
	Radios        []radioSpec         `yaml:"radios"`
	Objects       []objectSpec        `yaml:"objects"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		LogLevel: "info",
		PathLoss: pathLossConfig{Model: "freeSpace", Alpha: 2},
		RadioDefaults: radioDefaultsConfig{
			TxPowerDbm:              20,
			CenterFrequency:         2.4e9,
			Bandwidth:               20e6,
			Bitrate:                 1e6,
			RxSensitivityDbm:        -85,
			MinInterferencePowerDbm: -100,
			SnirThresholdDb:         4,
		},
		MacAgingSec: 300,
	}
}

func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading configuration")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(types.ErrInvalidConfiguration, "parsing %s: %v", path, err)
	}
	return cfg, nil
}

func (cfg *fileConfig) buildPathLoss() (medium.PathLoss, error) {
	switch cfg.PathLoss.Model {
	case "", "freeSpace":
		pl := medium.NewFreeSpacePathLoss()
		if cfg.PathLoss.Alpha > 0 {
			pl.Alpha = cfg.PathLoss.Alpha
		}
		pl.SystemLossDb = cfg.PathLoss.SystemLossDb
		return pl, nil
	case "logDistance":
		return &medium.LogDistancePathLoss{
			ExponentDb:  cfg.PathLoss.ExponentDb,
			FixedLossDb: cfg.PathLoss.FixedLossDb,
		}, nil
	default:
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "unknown path loss model %q", cfg.PathLoss.Model)
	}
}

func (cfg *fileConfig) buildEnvironment() (*environment.PhysicalEnvironment, error) {
	env := environment.New()
	for _, spec := range cfg.Objects {
		mat, ok := material.Get(spec.Material)
		if !ok {
			return nil, errors.Wrapf(types.ErrInvalidConfiguration, "unknown material %q", spec.Material)
		}
		shape, err := geom.NewCuboid(geom.Coord{X: spec.Size[0], Y: spec.Size[1], Z: spec.Size[2]})
		if err != nil {
			return nil, err
		}
		env.AddObject(&environment.PhysicalObject{
			Name:     spec.Name,
			Position: geom.Coord{X: spec.Position[0], Y: spec.Position[1], Z: spec.Position[2]},
			Shape:    shape,
			Material: mat,
		})
	}
	return env, nil
}

func (cfg *fileConfig) buildModels() (medium.Models, error) {
	pathLoss, err := cfg.buildPathLoss()
	if err != nil {
		return medium.Models{}, err
	}
	attenuation := &medium.ScalarAttenuation{PathLoss: pathLoss}
	switch cfg.ObstacleLoss.Model {
	case "", "none":
	case "dielectric", "ideal":
		env, err := cfg.buildEnvironment()
		if err != nil {
			return medium.Models{}, err
		}
		if cfg.ObstacleLoss.Model == "dielectric" {
			attenuation.ObstacleLoss = &medium.DielectricObstacleLoss{Env: env}
		} else {
			attenuation.ObstacleLoss = &medium.IdealObstacleLoss{Env: env}
		}
	default:
		return medium.Models{}, errors.Wrapf(types.ErrInvalidConfiguration,
			"unknown obstacle loss model %q", cfg.ObstacleLoss.Model)
	}
	if cfg.Fading != nil {
		attenuation.Fading = prng.NewShadowFading(cfg.Fading.Seed, cfg.Fading.SigmaDb)
	}
	models := medium.Models{
		Propagation:   medium.NewConstantSpeedPropagation(),
		PathLoss:      pathLoss,
		Attenuation:   attenuation,
		NeighborCache: &medium.LinearNeighborCache{},
	}
	if cfg.Noise != nil {
		models.BackgroundNoise = &medium.IsotropicBackgroundNoise{PowerDbm: cfg.Noise.PowerDbm}
	}
	return models, nil
}

func (cfg *fileConfig) radioConfig(spec radioSpec) (medium.RadioConfig, error) {
	d := cfg.RadioDefaults
	rc := medium.RadioConfig{
		Mode:                    types.RadioModeTransceiver,
		Position:                geom.Coord{X: spec.X, Y: spec.Y, Z: spec.Z},
		TxPowerDbm:              d.TxPowerDbm,
		CenterFrequency:         d.CenterFrequency,
		Bandwidth:               d.Bandwidth,
		Bitrate:                 d.Bitrate,
		RxSensitivityDbm:        d.RxSensitivityDbm,
		MinInterferencePowerDbm: d.MinInterferencePowerDbm,
		SnirThresholdDb:         d.SnirThresholdDb,
	}
	if d.AntennaGainDb != 0 {
		rc.Antenna = medium.ConstantGainAntenna{GainDb: d.AntennaGainDb}
	}
	switch spec.Mode {
	case "", "trx":
		rc.Mode = types.RadioModeTransceiver
	case "rx":
		rc.Mode = types.RadioModeReceiver
	case "tx":
		rc.Mode = types.RadioModeTransmitter
	case "off":
		rc.Mode = types.RadioModeOff
	default:
		return rc, errors.Wrapf(types.ErrInvalidConfiguration, "unknown radio mode %q", spec.Mode)
	}
	if spec.Mac != "" {
		mac, err := types.ParseMacAddress(spec.Mac)
		if err != nil {
			return rc, err
		}
		rc.MacAddress = mac
	}
	return rc, nil
}
