// Kestrel - UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2020-2026 The Kestrel Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package uci

import (
	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/search"
)

const (
	engineName    = "Kestrel"
	engineAuthors = "The Kestrel Authors"
)

// KestrelEngine adapts a *search.Search into the Engine contract the
// dispatcher needs: identity plus the NewGame/IsReady lifecycle hooks
// that don't belong on Search itself.
type KestrelEngine struct {
	*search.Search
}

// NewKestrelEngine wraps s as an Engine.
func NewKestrelEngine(s *search.Search) *KestrelEngine {
	return &KestrelEngine{Search: s}
}

// Start implements Engine by delegating to the wrapped Search's
// StartSearch, which the Engine contract names simply "Start".
func (e *KestrelEngine) Start(pos board.Board, limits search.Limits) {
	e.Search.StartSearch(pos, limits)
}

// Stop implements Engine by delegating to StopSearch.
func (e *KestrelEngine) Stop() search.Result {
	return e.Search.StopSearch()
}

// Name implements Engine.
func (e *KestrelEngine) Name() string { return engineName }

// Authors implements Engine.
func (e *KestrelEngine) Authors() string { return engineAuthors }

// NewGame implements Engine. It stops any in-flight search and waits for
// its worker to finish; Kestrel keeps no other state across games.
func (e *KestrelEngine) NewGame() { e.Search.StopSearch() }

// IsReady implements Engine. Kestrel has no asynchronous startup work,
// so it is always ready once constructed.
func (e *KestrelEngine) IsReady() bool { return true }

var _ Engine = (*KestrelEngine)(nil)
