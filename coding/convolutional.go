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

// Package coding implements a feedforward (k/n) convolutional encoder and a
// hard-decision Viterbi decoder with Hamming-distance metric and optional
// puncturing.
package coding

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"

	"github.com/rfsimtools/rfsim/bitvec"
	"github.com/rfsimtools/rfsim/types"
)

// Config describes a convolutional code. The transfer function matrix rows
// correspond to the k input streams, the columns to the n output streams;
// entries are generator polynomials in octal, leftmost tap applied to the
// current input bit. An empty puncturing matrix means no puncturing.
type Config struct {
	CodeRate          string     `yaml:"codeRate"`          // "k/n"
	ConstraintLengths []int      `yaml:"constraintLengths"` // one per input stream
	TransferFunction  [][]string `yaml:"transferFunction"`  // k x n octal literals
	Puncturing        [][]int    `yaml:"puncturing"`        // n x period, 0 means omit
	DecodingMode      string     `yaml:"decodingMode"`      // "truncated" or "terminated"
}

// DefaultConfig is the industry-standard rate 1/2, constraint length 7 code
// used by the IEEE 802.11 PHY.
func DefaultConfig() Config {
	return Config{
		CodeRate:          "1/2",
		ConstraintLengths: []int{7},
		TransferFunction:  [][]string{{"133", "171"}},
		DecodingMode:      "terminated",
	}
}

const (
	DecodingModeTruncated  = "truncated"
	DecodingModeTerminated = "terminated"
)

const maxMemorySizeSum = 24

// ConvolutionalCoder holds the trellis tables derived from a Config. All
// tables are computed at construction and read-only afterwards.
type ConvolutionalCoder struct {
	k, n              int
	constraintLengths []int
	memorySizes       []int // constraintLengths[i] - 1
	memorySizeSum     int
	streamOffsets     []int // bit offset of stream i's register within a state
	numStates         int
	numInputSymbols   int
	numOutputSymbols  int
	transferFunction  [][]bitvec.ShortBitVector
	puncturing        [][]bool // n rows x period columns
	puncturingPeriod  int
	decodingMode      string

	// stateTransitions[state][inSym] is the successor state.
	stateTransitions [][]int
	// outputSymbols[state][inSym] is the emitted n-bit output symbol.
	outputSymbols [][]bitvec.ShortBitVector
	// inputSymbols[state][outSym] is the input symbol producing outSym from
	// state, or -1 when no input does.
	inputSymbols [][]int
}

func NewConvolutionalCoder(cfg Config) (*ConvolutionalCoder, error) {
	c := &ConvolutionalCoder{decodingMode: cfg.DecodingMode}
	if c.decodingMode == "" {
		c.decodingMode = DecodingModeTerminated
	}
	if c.decodingMode != DecodingModeTruncated && c.decodingMode != DecodingModeTerminated {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "unknown decoding mode %q", cfg.DecodingMode)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(cfg.CodeRate), "%d/%d", &c.k, &c.n); err != nil || c.k < 1 || c.n < 1 {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "bad code rate %q", cfg.CodeRate)
	}
	if c.n > bitvec.ShortBitVectorMaxSize {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "output symbol of %d bits is too wide", c.n)
	}
	if len(cfg.ConstraintLengths) != c.k {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration,
			"want %d constraint lengths, got %d", c.k, len(cfg.ConstraintLengths))
	}
	c.constraintLengths = append([]int(nil), cfg.ConstraintLengths...)
	c.memorySizes = make([]int, c.k)
	c.streamOffsets = make([]int, c.k)
	for i, l := range c.constraintLengths {
		if l < 1 || l > bitvec.ShortBitVectorMaxSize {
			return nil, errors.Wrapf(types.ErrInvalidConfiguration, "bad constraint length %d", l)
		}
		c.memorySizes[i] = l - 1
		c.streamOffsets[i] = c.memorySizeSum
		c.memorySizeSum += l - 1
	}
	if c.memorySizeSum > maxMemorySizeSum {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "total memory of %d bits is too large", c.memorySizeSum)
	}
	if err := c.parseTransferFunction(cfg.TransferFunction); err != nil {
		return nil, err
	}
	if err := c.parsePuncturing(cfg.Puncturing); err != nil {
		return nil, err
	}
	c.numStates = 1 << uint(c.memorySizeSum)
	c.numInputSymbols = 1 << uint(c.k)
	c.numOutputSymbols = 1 << uint(c.n)
	c.computeTables()
	return c, nil
}

func (c *ConvolutionalCoder) parseTransferFunction(matrix [][]string) error {
	if len(matrix) != c.k {
		return errors.Wrapf(types.ErrInvalidConfiguration, "transfer function needs %d rows, got %d", c.k, len(matrix))
	}
	c.transferFunction = make([][]bitvec.ShortBitVector, c.k)
	for i, row := range matrix {
		if len(row) != c.n {
			return errors.Wrapf(types.ErrInvalidConfiguration,
				"transfer function row %d needs %d entries, got %d", i, c.n, len(row))
		}
		c.transferFunction[i] = make([]bitvec.ShortBitVector, c.n)
		for j, oct := range row {
			g, err := bitvec.ParseOctal(oct, c.constraintLengths[i])
			if err != nil {
				return err
			}
			c.transferFunction[i][j] = g
		}
	}
	return nil
}

func (c *ConvolutionalCoder) parsePuncturing(matrix [][]int) error {
	if len(matrix) == 0 {
		c.puncturingPeriod = 1
		c.puncturing = make([][]bool, c.n)
		for j := range c.puncturing {
			c.puncturing[j] = []bool{true}
		}
		return nil
	}
	if len(matrix) != c.n {
		return errors.Wrapf(types.ErrInvalidConfiguration, "puncturing matrix needs %d rows, got %d", c.n, len(matrix))
	}
	c.puncturingPeriod = len(matrix[0])
	if c.puncturingPeriod == 0 {
		return errors.Wrap(types.ErrInvalidConfiguration, "empty puncturing row")
	}
	c.puncturing = make([][]bool, c.n)
	anyKept := false
	for j, row := range matrix {
		if len(row) != c.puncturingPeriod {
			return errors.Wrap(types.ErrInvalidConfiguration, "ragged puncturing matrix")
		}
		c.puncturing[j] = make([]bool, c.puncturingPeriod)
		for p, v := range row {
			c.puncturing[j][p] = v != 0
			anyKept = anyKept || v != 0
		}
	}
	if !anyKept {
		return errors.Wrap(types.ErrInvalidConfiguration, "puncturing matrix omits every bit")
	}
	return nil
}

// register returns stream i's shift register extracted from state. The newest
// past input occupies the register's top bit.
func (c *ConvolutionalCoder) register(state, i int) int {
	m := c.memorySizes[i]
	return (state >> uint(c.streamOffsets[i])) & ((1 << uint(m)) - 1)
}

func (c *ConvolutionalCoder) computeTables() {
	c.stateTransitions = make([][]int, c.numStates)
	c.outputSymbols = make([][]bitvec.ShortBitVector, c.numStates)
	c.inputSymbols = make([][]int, c.numStates)
	for s := 0; s < c.numStates; s++ {
		c.stateTransitions[s] = make([]int, c.numInputSymbols)
		c.outputSymbols[s] = make([]bitvec.ShortBitVector, c.numInputSymbols)
		c.inputSymbols[s] = make([]int, c.numOutputSymbols)
		for o := range c.inputSymbols[s] {
			c.inputSymbols[s][o] = -1
		}
		for u := 0; u < c.numInputSymbols; u++ {
			next := 0
			var out uint32
			for j := 0; j < c.n; j++ {
				bit := false
				for i := 0; i < c.k; i++ {
					in := (u >> uint(i)) & 1
					window := uint32(in<<uint(c.memorySizes[i])) | uint32(c.register(s, i))
					if bits.OnesCount32(window&c.transferFunction[i][j].ToUint())%2 == 1 {
						bit = !bit
					}
				}
				out <<= 1
				if bit {
					out |= 1
				}
			}
			for i := 0; i < c.k; i++ {
				m := c.memorySizes[i]
				if m == 0 {
					continue
				}
				in := (u >> uint(i)) & 1
				reg := c.register(s, i)
				reg = (reg >> 1) | (in << uint(m-1))
				next |= reg << uint(c.streamOffsets[i])
			}
			c.stateTransitions[s][u] = next
			c.outputSymbols[s][u] = bitvec.NewShort(out, c.n)
			c.inputSymbols[s][int(out)] = u
		}
	}
}

func (c *ConvolutionalCoder) CodeRateK() int {
	return c.k
}

func (c *ConvolutionalCoder) CodeRateN() int {
	return c.n
}

func (c *ConvolutionalCoder) MemorySizeSum() int {
	return c.memorySizeSum
}

func (c *ConvolutionalCoder) NumStates() int {
	return c.numStates
}

// punctured reports whether output stream position j is omitted.
func (c *ConvolutionalCoder) punctured(j int) bool {
	return !c.puncturing[j%c.n][(j/c.n)%c.puncturingPeriod]
}

// Encode runs the information bits through the shift registers, starting in
// the all-zeros state. With endInAllZeros, memorySizeSum flush zeros are
// appended so the encoder ends in the all-zeros state. A trailing partial
// input symbol is zero padded. The output is punctured last.
func (c *ConvolutionalCoder) Encode(informationBits *bitvec.BitVector, endInAllZeros bool) *bitvec.BitVector {
	in := make([]bool, 0, informationBits.Size()+c.memorySizeSum+c.k)
	for i := 0; i < informationBits.Size(); i++ {
		in = append(in, informationBits.GetBit(i))
	}
	if endInAllZeros {
		for i := 0; i < c.memorySizeSum; i++ {
			in = append(in, false)
		}
	}
	for len(in)%c.k != 0 {
		in = append(in, false)
	}

	state := 0
	out := bitvec.New()
	for p := 0; p < len(in); p += c.k {
		u := 0
		for i := 0; i < c.k; i++ {
			if in[p+i] {
				u |= 1 << uint(i)
			}
		}
		sym := c.outputSymbols[state][u]
		for j := 0; j < c.n; j++ {
			out.Append(sym.GetBit(j))
		}
		state = c.stateTransitions[state][u]
	}
	return c.puncture(out)
}

func (c *ConvolutionalCoder) puncture(encoded *bitvec.BitVector) *bitvec.BitVector {
	out := bitvec.New()
	for j := 0; j < encoded.Size(); j++ {
		if !c.punctured(j) {
			out.Append(encoded.GetBit(j))
		}
	}
	return out
}

// depuncture reinserts placeholder bits at punctured positions. The returned
// mask marks the placeholder positions to exclude from Hamming distances.
func (c *ConvolutionalCoder) depuncture(encoded *bitvec.BitVector) (stream, mask []bool, err error) {
	consumed := 0
	for j := 0; consumed < encoded.Size(); j++ {
		if c.punctured(j) {
			stream = append(stream, false)
			mask = append(mask, true)
		} else {
			stream = append(stream, encoded.GetBit(consumed))
			mask = append(mask, false)
			consumed++
		}
	}
	// complete the last output symbol if only punctured positions remain
	for len(stream)%c.n != 0 && c.punctured(len(stream)) {
		stream = append(stream, false)
		mask = append(mask, true)
	}
	if len(stream)%c.n != 0 {
		return nil, nil, errors.Wrapf(types.ErrInvalidInput,
			"depunctured length %d is not a multiple of %d", len(stream), c.n)
	}
	return stream, mask, nil
}

// hammingDistance counts differing bits between symbol and the observed bits,
// ignoring masked (punctured) positions.
func (c *ConvolutionalCoder) hammingDistance(symbol bitvec.ShortBitVector, observed, mask []bool) int {
	d := 0
	for j := 0; j < c.n; j++ {
		if mask[j] {
			continue
		}
		if symbol.GetBit(j) != observed[j] {
			d++
		}
	}
	return d
}

// trellisNode is the best path to a state at some depth.
type trellisNode struct {
	distance  int
	prevState int
	inputSym  int
}

const infiniteDistance = int(^uint(0) >> 2)

// Decode runs the hard-decision Viterbi algorithm over the full trellis.
// Mode "truncated" ends the traceback at the state with the best metric;
// "terminated" requires the path to end in the all-zeros state and drops the
// flush bits from the decoded output.
func (c *ConvolutionalCoder) Decode(encodedBits *bitvec.BitVector, mode string) (*bitvec.BitVector, error) {
	if mode != DecodingModeTruncated && mode != DecodingModeTerminated {
		return nil, errors.Wrapf(types.ErrInvalidConfiguration, "unknown decoding mode %q", mode)
	}
	stream, mask, err := c.depuncture(encodedBits)
	if err != nil {
		return nil, err
	}
	depth := len(stream) / c.n

	bestPaths := make([][]trellisNode, depth+1)
	for t := range bestPaths {
		bestPaths[t] = make([]trellisNode, c.numStates)
		for s := range bestPaths[t] {
			bestPaths[t][s] = trellisNode{distance: infiniteDistance, prevState: -1, inputSym: -1}
		}
	}
	bestPaths[0][0].distance = 0

	for t := 0; t < depth; t++ {
		observed := stream[t*c.n : (t+1)*c.n]
		observedMask := mask[t*c.n : (t+1)*c.n]
		// ascending state order with a strict comparison keeps ties on the
		// lower-numbered predecessor
		for s := 0; s < c.numStates; s++ {
			if bestPaths[t][s].distance == infiniteDistance {
				continue
			}
			for u := 0; u < c.numInputSymbols; u++ {
				next := c.stateTransitions[s][u]
				d := bestPaths[t][s].distance + c.hammingDistance(c.outputSymbols[s][u], observed, observedMask)
				if d < bestPaths[t+1][next].distance {
					bestPaths[t+1][next] = trellisNode{distance: d, prevState: s, inputSym: u}
				}
			}
		}
	}

	endState := 0
	if mode == DecodingModeTruncated {
		for s := 1; s < c.numStates; s++ {
			if bestPaths[depth][s].distance < bestPaths[depth][endState].distance {
				endState = s
			}
		}
	} else if bestPaths[depth][0].distance == infiniteDistance {
		return nil, errors.Wrap(types.ErrInvalidInput, "no trellis path ends in the all-zeros state")
	}

	symbols := make([]int, depth)
	for t, s := depth, endState; t > 0; t-- {
		node := bestPaths[t][s]
		symbols[t-1] = node.inputSym
		s = node.prevState
	}

	decoded := bitvec.New()
	for _, u := range symbols {
		for i := 0; i < c.k; i++ {
			decoded.Append(u&(1<<uint(i)) != 0)
		}
	}
	if mode == DecodingModeTerminated {
		if decoded.Size() < c.memorySizeSum {
			return nil, errors.Wrap(types.ErrInvalidInput, "terminated input shorter than the flush bits")
		}
		out := bitvec.New()
		for i := 0; i < decoded.Size()-c.memorySizeSum; i++ {
			out.Append(decoded.GetBit(i))
		}
		return out, nil
	}
	return decoded, nil
}
