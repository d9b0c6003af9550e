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

// Package search implements iterative-deepening minimax with soft
// alpha-beta pruning, running on a dedicated worker goroutine that
// streams progress through a uciengine.Sink and can be cancelled
// cooperatively at any time. Every node's score is absolute and
// White-relative (positive favours White, as eval.Func returns); the
// Backtracking step folds a child's score into its parent using
// types.Color.Better/Worst rather than a uniform sign flip, since the
// maximizing/minimizing side alternates with whoever is to move.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/eval"
	"github.com/kestrel-engine/kestrel/internal/logging"
	"github.com/kestrel-engine/kestrel/internal/movegen"
	"github.com/kestrel-engine/kestrel/internal/types"
	"github.com/kestrel-engine/kestrel/internal/uciengine"
)

var log = logging.GetLog("search")

// noCancelCtx is used with semaphore.Acquire, which requires a context
// parameter; this worker's join points are never themselves cancelled
// (cancellation goes through stopFlag instead).
var noCancelCtx = context.Background()

// Search owns one worker goroutine's lifetime. A Search value is reused
// across StartSearch/StopSearch cycles; it is not safe for concurrent
// Start calls (the UCI dispatcher serializes them).
type Search struct {
	sink     uciengine.Sink
	evalFn   eval.Func
	usePrune bool

	running  *semaphore.Weighted
	stopFlag atomic.Bool

	lastResult Result
}

// NewSearch creates a Search that reports progress to sink and scores
// positions with evalFn. sink may be nil and wired up later with
// SetSink, since the UCI dispatcher and the Search it drives are
// typically constructed in two steps that reference each other.
func NewSearch(sink uciengine.Sink, evalFn eval.Func, usePruning bool) *Search {
	return &Search{
		sink:     sink,
		evalFn:   evalFn,
		usePrune: usePruning,
		running:  semaphore.NewWeighted(1),
	}
}

// SetSink changes where progress and completion notifications are sent.
// Not safe to call while a search is in flight.
func (s *Search) SetSink(sink uciengine.Sink) {
	s.sink = sink
}

// IsSearching reports whether a search is currently in flight.
func (s *Search) IsSearching() bool {
	if s.running.TryAcquire(1) {
		s.running.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks until any in-flight search has finished.
func (s *Search) WaitWhileSearching() {
	_ = s.running.Acquire(noCancelCtx, 1)
	s.running.Release(1)
}

// StartSearch starts a new background search from pos under limits. It
// returns immediately; the worker goroutine owns its own copy of pos.
func (s *Search) StartSearch(pos board.Board, limits Limits) {
	s.WaitWhileSearching()
	_ = s.running.Acquire(noCancelCtx, 1)
	s.stopFlag.Store(false)
	go s.run(pos, limits)
}

// StopSearch requests cancellation and blocks until the worker has
// produced its final result.
func (s *Search) StopSearch() Result {
	s.stopFlag.Store(true)
	s.WaitWhileSearching()
	return s.lastResult
}

func (s *Search) run(rootBoard board.Board, limits Limits) {
	defer s.running.Release(1)

	start := time.Now()
	rootColor := rootBoard.SideToMove
	deadline, hasDeadline := limits.moveTimeFor(rootColor == types.White)
	depthCap := limits.depthLimit()

	t := newTree(rootBoard)
	var nodesVisited uint64
	var lastResult Result

	for epoch := 1; epoch <= depthCap; epoch++ {
		if s.stopFlag.Load() {
			break
		}
		if hasDeadline && time.Since(start) >= deadline {
			break
		}

		completed := s.runEpoch(t, epoch, &nodesVisited, start, hasDeadline, deadline)
		if !completed {
			break
		}

		pv := derivePV(t)
		result := Result{
			Depth: epoch,
			Nodes: nodesVisited,
			PV:    pv,
		}
		if len(pv) > 0 {
			result.BestMove = pv[0]
		}
		if len(pv) > 1 {
			result.Ponder = pv[1]
		}
		result.Score = t.at(root).score
		lastResult = result

		info := uciengine.ProgressInfo{
			Depth:     epoch,
			ScoreCP:   result.Score,
			Nodes:     nodesVisited,
			ElapsedMS: time.Since(start).Milliseconds(),
			PV:        pv,
		}
		if mateIn, isMate := result.IsMate(); isMate {
			info.IsMate = true
			info.MateIn = mateIn
		}
		s.sink.SendInfo(info)

		if t.at(root).terminal != terminalNone {
			break
		}
	}

	s.lastResult = lastResult
	log.Debugf("search finished: depth=%d nodes=%d best=%s", lastResult.Depth, lastResult.Nodes, lastResult.BestMove)
	s.sink.SendBestMove(lastResult.BestMove, lastResult.Ponder)
}

// frameKind distinguishes the two states an evaluation-stack entry can
// be in: about to expand/descend, or folding a child's score back into
// its parent.
type frameKind uint8

const (
	frameEvaluating frameKind = iota
	frameBacktracking
)

type frame struct {
	kind         frameKind
	node         nodeRef
	alpha, beta  int
	currentScore int
	child        nodeRef
}

// runEpoch performs one iterative-deepening pass to targetDepth using an
// explicit stack of Evaluating/Backtracking frames in place of recursion,
// so the stop flag can be polled on every iteration. It returns false if
// the pass was aborted (stop requested or the deadline passed) before
// reaching a complete result.
func (s *Search) runEpoch(t *tree, targetDepth int, nodesVisited *uint64, start time.Time, hasDeadline bool, deadline time.Duration) bool {
	stack := []frame{{kind: frameEvaluating, node: root, alpha: -MateValue - 1, beta: MateValue + 1}}

	for len(stack) > 0 {
		if s.stopFlag.Load() {
			return false
		}
		if hasDeadline && time.Since(start) >= deadline {
			return false
		}

		top := len(stack) - 1
		f := stack[top]

		switch f.kind {
		case frameEvaluating:
			n := t.at(f.node)
			*nodesVisited++

			if n.firstChild == noNode && n.depth < targetDepth {
				expand(t, f.node)
			}
			n = t.at(f.node)

			if n.firstChild == noNode {
				// Leaf: either a game-terminal position or the target
				// depth was reached. Its score is already stored on the
				// node; the parent's Backtracking frame below this one on
				// the stack will read it on the next iteration.
				if n.terminal == terminalNone {
					n.score = s.evalFn(&n.board)
				}
				stack = stack[:top]
				continue
			}

			stack[top] = frame{kind: frameBacktracking, node: f.node, alpha: f.alpha, beta: f.beta, currentScore: n.board.SideToMove.Worst(), child: n.firstChild}
			stack = append(stack, frame{kind: frameEvaluating, node: n.firstChild, alpha: f.alpha, beta: f.beta})

		case frameBacktracking:
			n := t.at(f.node)
			mover := n.board.SideToMove
			childScore := t.at(f.child).score
			if mover.Better(childScore, f.currentScore) {
				f.currentScore = childScore
			}
			nextSibling := t.at(f.child).nextSibling
			pruned := s.usePrune && crossesBound(mover, f.currentScore, f.alpha, f.beta)
			if !pruned && nextSibling != noNode {
				f.alpha, f.beta = narrowWindow(mover, f.alpha, f.beta, f.currentScore)
				f.child = nextSibling
				stack[top] = f
				stack = append(stack, frame{kind: frameEvaluating, node: nextSibling, alpha: f.alpha, beta: f.beta})
				continue
			}

			n.score = f.currentScore
			stack = stack[:top]
		}
	}
	return true
}

// crossesBound reports whether currentScore has crossed the window bound
// that would let the opponent avoid this line entirely: beta for White
// (a maximizer), alpha for Black (a minimizer).
func crossesBound(mover types.Color, currentScore, alpha, beta int) bool {
	if mover == types.White {
		return currentScore >= beta
	}
	return currentScore <= alpha
}

// narrowWindow tightens the side of the window that mover's own
// accumulated score now bounds, leaving the opponent's side untouched.
func narrowWindow(mover types.Color, alpha, beta, currentScore int) (int, int) {
	if mover == types.White {
		if currentScore > alpha {
			alpha = currentScore
		}
		return alpha, beta
	}
	if currentScore < beta {
		beta = currentScore
	}
	return alpha, beta
}

// expand generates n's children in the tree, or marks n terminal if the
// side to move has no legal moves.
func expand(t *tree, ref nodeRef) {
	n := t.at(ref)
	moves, inCheck := movegen.Generate(&n.board)
	if len(moves) == 0 {
		if inCheck {
			// The side to move has been checkmated: an absolute score
			// favouring whoever did the mating, biased towards shallower
			// mates by subtracting the node's depth.
			n.terminal = terminalCheckmate
			mateScore := MateValue - n.depth
			if n.board.SideToMove == types.White {
				n.score = -mateScore
			} else {
				n.score = mateScore
			}
		} else {
			n.terminal = terminalStalemate
			n.score = 0
		}
		return
	}
	for _, m := range moves {
		child := n.board.Clone()
		board.Apply(m, &child)
		t.addChild(ref, m, child, n.depth+1)
	}
}

// derivePV walks the tree from root, following at each level the child
// that best serves that node's side to move, stopping at a leaf.
func derivePV(t *tree) []types.Move {
	var pv []types.Move
	cur := root
	for {
		n := t.at(cur)
		if n.firstChild == noNode {
			return pv
		}
		mover := n.board.SideToMove
		best := n.firstChild
		bestScore := t.at(best).score
		for sib := t.at(best).nextSibling; sib != noNode; sib = t.at(sib).nextSibling {
			score := t.at(sib).score
			if mover.Better(score, bestScore) {
				best = sib
				bestScore = score
			}
		}
		pv = append(pv, t.at(best).move)
		cur = best
		if len(pv) > maxSearchDepth {
			return pv
		}
	}
}
