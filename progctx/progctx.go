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

// Package progctx manages the lifetime of the rfsim program: a cancellable
// context, tracked goroutines and deferred cleanups.
package progctx

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/rfsimtools/rfsim/logger"
)

// ProgCtx is the context of the program during its lifetime.
type ProgCtx struct {
	context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	deferred []func()
}

func New(ctx context.Context) *ProgCtx {
	pctx := &ProgCtx{}
	pctx.Context, pctx.cancel = context.WithCancel(ctx)
	return pctx
}

// Cancel cancels the program context; only the first call runs the deferred
// cleanups.
func (ctx *ProgCtx) Cancel(reason interface{}) {
	if ctx.Err() != nil {
		return
	}
	ctx.cancel()
	if err, ok := reason.(error); ok && err != nil {
		logger.Errorf("program exit: %v", err)
	} else if reason != nil {
		logger.Infof("program exit: %v", reason)
	}
	for _, f := range ctx.deferred {
		f()
	}
	ctx.deferred = nil
}

// WaitAdd registers delta goroutines to wait for.
func (ctx *ProgCtx) WaitAdd(delta int) {
	ctx.wg.Add(delta)
}

// WaitDone notifies that a goroutine has finished.
func (ctx *ProgCtx) WaitDone() {
	ctx.wg.Done()
}

// Wait blocks until all registered goroutines have finished.
func (ctx *ProgCtx) Wait() {
	ctx.wg.Wait()
}

// Defer registers a cleanup to run when the context is cancelled.
func (ctx *ProgCtx) Defer(f func()) {
	if ctx.Err() != nil {
		panic(errors.Errorf("cannot Defer after the context is done"))
	}
	ctx.deferred = append(ctx.deferred, f)
}
