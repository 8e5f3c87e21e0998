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

// rfsim is the interactive console around the radio medium simulator core.
package main

import (
	"context"
	"flag"
	"math"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rfsimtools/rfsim/cli"
	"github.com/rfsimtools/rfsim/cli/runcli"
	"github.com/rfsimtools/rfsim/coding"
	"github.com/rfsimtools/rfsim/kernel"
	"github.com/rfsimtools/rfsim/logger"
	"github.com/rfsimtools/rfsim/mactable"
	"github.com/rfsimtools/rfsim/medium"
	"github.com/rfsimtools/rfsim/progctx"
	"github.com/rfsimtools/rfsim/types"
	"github.com/rfsimtools/rfsim/visualize"
)

var logLevels = map[string]logger.Level{
	"trace": logger.TraceLevel,
	"debug": logger.DebugLevel,
	"info":  logger.InfoLevel,
	"warn":  logger.WarnLevel,
	"error": logger.ErrorLevel,
	"off":   logger.OffLevel,
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	logLevel := flag.String("log", "", "log level (trace, debug, info, warn, error, off)")
	flag.Parse()

	cfg, err := loadFileConfig(*configPath)
	logger.PanicIfError(err)

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	if lv, ok := logLevels[level]; ok {
		logger.SetLevel(lv)
	}

	pctx := progctx.New(context.Background())
	sim := kernel.New()

	models, err := cfg.buildModels()
	logger.PanicIfError(err)
	if cfg.Medium.DisplayCommunication || cfg.Medium.LeaveCommunicationTrail {
		models.Visualizer = visualize.NewCommunicationVisualizer()
	}
	m, err := medium.NewRadioMedium(sim, cfg.Medium, models)
	logger.PanicIfError(err)
	pctx.Defer(func() {
		logger.PanicIfError(m.Close())
	})

	// fail fast on a bad codec parameterization
	if cfg.Codec != nil {
		_, err := coding.NewConvolutionalCoder(*cfg.Codec)
		logger.PanicIfError(err)
	}

	// the bridge table learns transmitter "ports" from successful receptions
	agingTime := types.Duration(math.Round(cfg.MacAgingSec * float64(types.Second)))
	bridge := mactable.New(agingTime, sim.Now)

	radioDefault, err := cfg.radioConfig(radioSpec{Mode: "trx"})
	logger.PanicIfError(err)

	for _, spec := range cfg.Radios {
		rc, err := cfg.radioConfig(spec)
		logger.PanicIfError(err)
		r := medium.NewRadio(rc)
		m.AddRadio(r)
		receiver := r
		r.OnFrame = func(frame *medium.Frame) {
			packet, ok := m.ReceivePacket(receiver, frame)
			if !ok {
				return
			}
			bridge.Learn(frame.Transmission.TransmitterId, packet.Source, 0)
			logger.Infof("radio %d received %d bits from %s",
				receiver.Id(), packet.BitLength, packet.Source)
		}
	}

	if cfg.MetricsAddr != "" {
		registry := prometheus.NewRegistry()
		logger.PanicIfError(registry.Register(medium.NewStatsCollector(m)))
		server := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}
		pctx.WaitAdd(1)
		go func() {
			defer pctx.WaitDone()
			logger.Infof("metrics listening on %s", cfg.MetricsAddr)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				logger.Errorf("metrics server: %v", err)
			}
		}()
		pctx.Defer(func() {
			_ = server.Close()
		})
	}

	runner, err := cli.NewCmdRunner(sim, m, radioDefault)
	logger.PanicIfError(err)
	err = runcli.RunCli(runner)

	stats := m.Stats()
	logger.Infof("medium statistics: %d transmissions, %d sends", stats.TransmissionCount, stats.SendCount)
	pctx.Cancel(err)
	pctx.Wait()
}
