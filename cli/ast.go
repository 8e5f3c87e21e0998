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

// Package cli implements the interactive rfsim console.
package cli

import "github.com/alecthomas/participle"

// noinspection GoStructTag
type Command struct {
	Add           *AddCmd           `  @@` //nolint
	Del           *DelCmd           `| @@` //nolint
	Exit          *ExitCmd          `| @@` //nolint
	Go            *GoCmd            `| @@` //nolint
	Help          *HelpCmd          `| @@` //nolint
	Move          *MoveCmd          `| @@` //nolint
	Radio         *RadioCmd         `| @@` //nolint
	Radios        *RadiosCmd        `| @@` //nolint
	Stats         *StatsCmd         `| @@` //nolint
	Time          *TimeCmd          `| @@` //nolint
	Transmissions *TransmissionsCmd `| @@` //nolint
	Tx            *TxCmd            `| @@` //nolint
}

// noinspection GoStructTag
type AddCmd struct {
	Cmd struct{} `"add"`     //nolint
	X   float64  `(@Int|@Float)` //nolint
	Y   float64  `(@Int|@Float)` //nolint
	Z   *float64 `[ (@Int|@Float) ]` //nolint
}

// noinspection GoStructTag
type DelCmd struct {
	Cmd struct{} `"del"` //nolint
	Id  int      `@Int`  //nolint
}

// noinspection GoStructTag
type MoveCmd struct {
	Cmd struct{} `"move"`         //nolint
	Id  int      `@Int`           //nolint
	X   float64  `(@Int|@Float)`  //nolint
	Y   float64  `(@Int|@Float)`  //nolint
}

// noinspection GoStructTag
type RadioCmd struct {
	Cmd  struct{} `"radio"`                      //nolint
	Id   int      `@Int`                         //nolint
	Mode string   `@("off"|"rx"|"tx"|"trx")`     //nolint
}

// noinspection GoStructTag
type TxCmd struct {
	Cmd  struct{} `"tx"`      //nolint
	Id   int      `@Int`      //nolint
	Bits *int     `[ @Int ]`  //nolint
}

// noinspection GoStructTag
type GoCmd struct {
	Cmd     struct{} `"go"`           //nolint
	Seconds float64  `(@Int|@Float)`  //nolint
}

// noinspection GoStructTag
type RadiosCmd struct {
	Cmd struct{} `"radios"` //nolint
}

// noinspection GoStructTag
type TransmissionsCmd struct {
	Cmd struct{} `"transmissions"` //nolint
}

// noinspection GoStructTag
type StatsCmd struct {
	Cmd struct{} `"stats"` //nolint
}

// noinspection GoStructTag
type TimeCmd struct {
	Cmd struct{} `"time"` //nolint
}

// noinspection GoStructTag
type HelpCmd struct {
	Cmd struct{} `"help"` //nolint
}

// noinspection GoStructTag
type ExitCmd struct {
	Cmd struct{} `"exit"` //nolint
}

func newCommandParser() (*participle.Parser, error) {
	return participle.Build(&Command{})
}
