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

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/alecthomas/participle"
	"github.com/mitchellh/go-wordwrap"
	"github.com/pkg/errors"

	"github.com/rfsimtools/rfsim/geom"
	"github.com/rfsimtools/rfsim/kernel"
	"github.com/rfsimtools/rfsim/medium"
	"github.com/rfsimtools/rfsim/types"
)

const helpText = "add <x> <y> [z] - attach a radio at the position; " +
	"del <id> - detach a radio; " +
	"move <id> <x> <y> - move a radio; " +
	"radio <id> off|rx|tx|trx - set the radio mode; " +
	"tx <id> [bits] - transmit a broadcast packet; " +
	"go <seconds> - advance the simulation; " +
	"time - print the simulated clock; " +
	"radios - list the attached radios; " +
	"transmissions - list the live transmissions; " +
	"stats - print the medium statistics; " +
	"exit - leave the console."

// CmdRunner executes console commands against a simulator and its radio
// medium.
type CmdRunner struct {
	sim          *kernel.Simulator
	medium       *medium.RadioMedium
	radioDefault medium.RadioConfig
	parser       *participle.Parser
	radios       map[types.RadioId]*medium.Radio
}

func NewCmdRunner(sim *kernel.Simulator, m *medium.RadioMedium, radioDefault medium.RadioConfig) (*CmdRunner, error) {
	parser, err := newCommandParser()
	if err != nil {
		return nil, err
	}
	return &CmdRunner{
		sim:          sim,
		medium:       m,
		radioDefault: radioDefault,
		parser:       parser,
		radios:       map[types.RadioId]*medium.Radio{},
	}, nil
}

func (cr *CmdRunner) GetPrompt() string {
	return "rfsim> "
}

func (cr *CmdRunner) HandleCommand(line string, output io.Writer) error {
	var cmd Command
	if err := cr.parser.ParseString(line, &cmd); err != nil {
		return errors.Wrapf(err, "unrecognized command %q", line)
	}
	switch {
	case cmd.Add != nil:
		return cr.executeAdd(cmd.Add, output)
	case cmd.Del != nil:
		return cr.executeDel(cmd.Del, output)
	case cmd.Exit != nil:
		return io.EOF
	case cmd.Go != nil:
		return cr.executeGo(cmd.Go, output)
	case cmd.Help != nil:
		fmt.Fprintln(output, wordwrap.WrapString(helpText, 78))
		return nil
	case cmd.Move != nil:
		return cr.executeMove(cmd.Move, output)
	case cmd.Radio != nil:
		return cr.executeRadio(cmd.Radio, output)
	case cmd.Radios != nil:
		return cr.executeRadios(output)
	case cmd.Stats != nil:
		return cr.executeStats(output)
	case cmd.Time != nil:
		fmt.Fprintf(output, "%.6fs\n", float64(cr.sim.Now())/float64(types.Second))
		return nil
	case cmd.Transmissions != nil:
		return cr.executeTransmissions(output)
	case cmd.Tx != nil:
		return cr.executeTx(cmd.Tx, output)
	default:
		return errors.Wrapf(types.ErrNotApplicable, "command %q not handled", line)
	}
}

func (cr *CmdRunner) lookupRadio(id int) (*medium.Radio, error) {
	r, ok := cr.radios[id]
	if !ok {
		return nil, errors.Errorf("radio %d not found", id)
	}
	return r, nil
}

func (cr *CmdRunner) executeAdd(cmd *AddCmd, output io.Writer) error {
	cfg := cr.radioDefault
	cfg.Position = geom.Coord{X: cmd.X, Y: cmd.Y}
	if cmd.Z != nil {
		cfg.Position.Z = *cmd.Z
	}
	r := medium.NewRadio(cfg)
	cr.medium.AddRadio(r)
	cr.radios[r.Id()] = r
	fmt.Fprintf(output, "radio %d\n", r.Id())
	return nil
}

func (cr *CmdRunner) executeDel(cmd *DelCmd, output io.Writer) error {
	r, err := cr.lookupRadio(cmd.Id)
	if err != nil {
		return err
	}
	cr.medium.RemoveRadio(r)
	delete(cr.radios, cmd.Id)
	fmt.Fprintf(output, "removed radio %d\n", cmd.Id)
	return nil
}

func (cr *CmdRunner) executeMove(cmd *MoveCmd, output io.Writer) error {
	r, err := cr.lookupRadio(cmd.Id)
	if err != nil {
		return err
	}
	r.SetPosition(geom.Coord{X: cmd.X, Y: cmd.Y})
	fmt.Fprintf(output, "radio %d at (%g, %g)\n", cmd.Id, cmd.X, cmd.Y)
	return nil
}

func (cr *CmdRunner) executeRadio(cmd *RadioCmd, output io.Writer) error {
	r, err := cr.lookupRadio(cmd.Id)
	if err != nil {
		return err
	}
	modes := map[string]types.RadioMode{
		"off": types.RadioModeOff,
		"rx":  types.RadioModeReceiver,
		"tx":  types.RadioModeTransmitter,
		"trx": types.RadioModeTransceiver,
	}
	r.SetMode(modes[cmd.Mode])
	fmt.Fprintf(output, "radio %d mode %s\n", cmd.Id, r.Mode())
	return nil
}

func (cr *CmdRunner) executeTx(cmd *TxCmd, output io.Writer) error {
	r, err := cr.lookupRadio(cmd.Id)
	if err != nil {
		return err
	}
	bits := 1000
	if cmd.Bits != nil {
		bits = *cmd.Bits
	}
	frame := cr.medium.TransmitPacket(r, &medium.MacPacket{
		Source:      r.MacAddress(),
		Destination: types.BroadcastMacAddress,
		BitLength:   bits,
	})
	fmt.Fprintf(output, "transmission %d (%d bits)\n", frame.Transmission.Id, bits)
	return nil
}

func (cr *CmdRunner) executeGo(cmd *GoCmd, output io.Writer) error {
	if cmd.Seconds <= 0 || math.IsNaN(cmd.Seconds) {
		return errors.Wrapf(types.ErrInvalidInput, "bad duration %v", cmd.Seconds)
	}
	until := cr.sim.Now() + types.Duration(cmd.Seconds*float64(types.Second))
	cr.sim.RunUntil(until)
	fmt.Fprintf(output, "now %.6fs\n", float64(cr.sim.Now())/float64(types.Second))
	return nil
}

func (cr *CmdRunner) executeRadios(output io.Writer) error {
	for _, r := range cr.medium.Radios() {
		pos := r.Position(cr.sim.Now())
		fmt.Fprintf(output, "radio %d %s %s (%g, %g, %g)\n",
			r.Id(), r.Mode(), r.MacAddress(), pos.X, pos.Y, pos.Z)
	}
	return nil
}

func (cr *CmdRunner) executeTransmissions(output io.Writer) error {
	for _, tx := range cr.medium.LiveTransmissions() {
		fmt.Fprintf(output, "transmission %d from radio %d [%d, %d] %g dBm\n",
			tx.Id, tx.TransmitterId, tx.StartTime, tx.EndTime, tx.PowerDbm)
	}
	return nil
}

func (cr *CmdRunner) executeStats(output io.Writer) error {
	s := cr.medium.Stats()
	fmt.Fprintf(output, "transmissions %d sends %d\n", s.TransmissionCount, s.SendCount)
	fmt.Fprintf(output, "computations reception %d interference %d sync %d recv %d listening %d\n",
		s.ReceptionComputationCount, s.InterferenceComputationCount,
		s.SynchronizationDecisionComputationCount, s.ReceptionDecisionComputationCount,
		s.ListeningDecisionComputationCount)
	fmt.Fprintf(output, "cache arrival %d/%d listening %d/%d reception %d/%d interference %d/%d sync %d/%d recv %d/%d\n",
		s.CacheArrival.HitCount, s.CacheArrival.GetCount,
		s.CacheListening.HitCount, s.CacheListening.GetCount,
		s.CacheReception.HitCount, s.CacheReception.GetCount,
		s.CacheInterference.HitCount, s.CacheInterference.GetCount,
		s.CacheSyncDecision.HitCount, s.CacheSyncDecision.GetCount,
		s.CacheRecvDecision.HitCount, s.CacheRecvDecision.GetCount)
	return nil
}
