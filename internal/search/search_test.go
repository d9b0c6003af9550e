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

package search

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/eval"
	"github.com/kestrel-engine/kestrel/internal/types"
	"github.com/kestrel-engine/kestrel/internal/uciengine"
)

// recordingSink collects every info/bestmove notification a Search sends
// it, guarded by a mutex since the worker goroutine calls it concurrently
// with the test goroutine reading the results.
type recordingSink struct {
	mu        sync.Mutex
	infos     []uciengine.ProgressInfo
	best      types.Move
	ponder    types.Move
	bestCalls int
}

func (s *recordingSink) SendInfo(info uciengine.ProgressInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, info)
}

func (s *recordingSink) SendBestMove(best, ponder types.Move) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best = best
	s.ponder = ponder
	s.bestCalls++
}

func (s *recordingSink) bestMoveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bestCalls
}

func TestSearchFindsMateInOne(t *testing.T) {
	// White rook d1 mates on d8: the black king on g8 is boxed in by its
	// own pawns with every rank-8 flight square covered.
	b, err := board.FromFEN("6k1/5ppp/8/8/8/8/5PPP/3R2K1 w - - 0 1")
	assert.NoError(t, err)

	sink := &recordingSink{}
	s := NewSearch(sink, eval.EvaluateMaterial, true)
	s.StartSearch(b, Limits{Depth: 2})
	s.WaitWhileSearching()

	assert.Equal(t, 1, sink.bestMoveCalls())
	assert.Equal(t, types.NewMove(types.SqD1, types.SqD8, types.Rook, types.PieceTypeNone, types.MoveNormal), sink.best)

	mateIn, isMate := s.lastResult.IsMate()
	assert.True(t, isMate)
	assert.Equal(t, 1, mateIn)
}

func TestSearchStopReturnsQuickly(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	assert.NoError(t, err)

	sink := &recordingSink{}
	s := NewSearch(sink, eval.EvaluateMaterial, true)
	s.StartSearch(b, Limits{Infinite: true})

	time.Sleep(10 * time.Millisecond)

	done := make(chan Result, 1)
	go func() { done <- s.StopSearch() }()

	select {
	case result := <-done:
		assert.GreaterOrEqual(t, result.Depth, 0)
	case <-time.After(2 * time.Second):
		t.Fatal("StopSearch did not return promptly after a stop request")
	}
	assert.Equal(t, 1, sink.bestMoveCalls())
}

func TestStartSearchWaitsForPriorSearchToFinish(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	assert.NoError(t, err)

	sink := &recordingSink{}
	s := NewSearch(sink, eval.EvaluateMaterial, true)

	s.StartSearch(b, Limits{Depth: 1})
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())

	s.StartSearch(b, Limits{Depth: 1})
	s.WaitWhileSearching()
	assert.Equal(t, 2, sink.bestMoveCalls())
}
