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

package medium

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// communicationLog records one line per transmission and reception event in
// a plain text .tlog file.
//
// Line formats:
//
//	T <time> <transmitterId> <transmissionId> <destination> <bits>
//	S <time> <transmissionId> <receiverId>
//	R <time> <transmissionId> <receiverId> <attempted> <successful>
type communicationLog struct {
	f *os.File
	w *bufio.Writer
}

func openCommunicationLog(resultDir, configName string, runNumber int) (*communicationLog, error) {
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating communication log directory")
	}
	name := filepath.Join(resultDir, fmt.Sprintf("%s-%d.tlog", configName, runNumber))
	f, err := os.Create(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening communication log")
	}
	return &communicationLog{f: f, w: bufio.NewWriter(f)}, nil
}

func (l *communicationLog) transmission(tx *Transmission) {
	fmt.Fprintf(l.w, "T %d %d %d %s %d\n",
		tx.StartTime, tx.TransmitterId, tx.Id, tx.Packet.Destination, tx.Packet.BitLength)
}

func (l *communicationLog) send(tx *Transmission, receiver *Radio, arrival *Arrival) {
	fmt.Fprintf(l.w, "S %d %d %d\n", arrival.StartTime, tx.Id, receiver.Id())
}

func (l *communicationLog) reception(now uint64, tx *Transmission, receiver *Radio, decision *Decision) {
	fmt.Fprintf(l.w, "R %d %d %d %t %t\n", now, tx.Id, receiver.Id(), decision.Attempted, decision.Successful)
}

func (l *communicationLog) close() error {
	if err := l.w.Flush(); err != nil {
		return err
	}
	return l.f.Close()
}
