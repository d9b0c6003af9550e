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

// Package uci implements the line-oriented UCI command dispatcher: it
// parses stdin, maintains the current position, and drives an Engine. It
// contains no move-generation or search logic of its own.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/logging"
	"github.com/kestrel-engine/kestrel/internal/movegen"
	"github.com/kestrel-engine/kestrel/internal/search"
	"github.com/kestrel-engine/kestrel/internal/types"
	"github.com/kestrel-engine/kestrel/internal/uciengine"
)

var log = logging.GetLog("uci")

// Engine is the capability contract the dispatcher depends on, satisfied
// by *KestrelEngine (engine.go), which wraps a *search.Search. Depending only on this interface (rather than the
// concrete type) keeps the dispatcher and the search engine decoupled.
type Engine interface {
	Name() string
	Authors() string
	Start(pos board.Board, limits search.Limits)
	Stop() search.Result
	NewGame()
	IsReady() bool
}

// Handler reads UCI commands from In and writes UCI output to Out. Both
// are swappable so tests can drive it without a real terminal.
type Handler struct {
	In     *bufio.Scanner
	Out    *bufio.Writer
	engine Engine
	pos    *board.Board
}

// NewHandler builds a dispatcher around engine, reading from in and
// writing to out.
func NewHandler(engine Engine, in io.Reader, out io.Writer) *Handler {
	pos, _ := board.FromFEN(board.StartFEN)
	return &Handler{
		In:     bufio.NewScanner(in),
		Out:    bufio.NewWriter(out),
		engine: engine,
		pos:    pos,
	}
}

// Loop reads commands until stdin closes or "quit" is received.
func (h *Handler) Loop() {
	for h.In.Scan() {
		line := strings.TrimSpace(h.In.Text())
		if line == "" {
			continue
		}
		if !h.Command(line) {
			return
		}
	}
}

// Command dispatches a single command line. It returns false when the
// caller should stop reading further input (after "quit").
func (h *Handler) Command(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	switch fields[0] {
	case "uci":
		h.handleUCI()
	case "isready":
		h.handleIsReady()
	case "ucinewgame":
		h.engine.NewGame()
	case "position":
		h.handlePosition(fields[1:])
	case "go":
		h.handleGo(fields[1:])
	case "stop":
		h.handleStop()
	case "quit":
		h.engine.Stop()
		return false
	default:
		log.Warningf("uci: unknown command %q", fields[0])
	}
	return true
}

func (h *Handler) send(format string, args ...interface{}) {
	fmt.Fprintf(h.Out, format+"\n", args...)
	h.Out.Flush()
}

func (h *Handler) handleUCI() {
	h.send("id name %s", h.engine.Name())
	h.send("id author %s", h.engine.Authors())
	h.send("")
	h.send("uciok")
}

func (h *Handler) handleIsReady() {
	for !h.engine.IsReady() {
		time.Sleep(time.Millisecond)
	}
	h.send("readyok")
}

func (h *Handler) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}
	i := 0
	var pos *board.Board
	var err error
	switch args[0] {
	case "startpos":
		pos, err = board.FromFEN(board.StartFEN)
		i = 1
	case "fen":
		end := len(args)
		for j, a := range args[1:] {
			if a == "moves" {
				end = j + 1
				break
			}
		}
		fen := strings.Join(args[1:end], " ")
		pos, err = board.FromFEN(fen)
		i = end
	default:
		log.Errorf("uci: position: unrecognized %q", args[0])
		return
	}
	if err != nil {
		log.Errorf("uci: %v", err)
		return
	}
	h.pos = pos

	if i < len(args) && args[i] == "moves" {
		for _, moveStr := range args[i+1:] {
			legal, _ := movegen.Generate(h.pos)
			m, err := board.ParseUCIMove(moveStr, legal)
			if err != nil {
				log.Errorf("uci: %v", err)
				return
			}
			board.Apply(m, h.pos)
		}
	}
}

func (h *Handler) handleGo(args []string) {
	var limits search.Limits
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "infinite":
			limits.Infinite = true
		case "movetime":
			i++
			limits.MoveTime = parseMS(args, i)
		case "depth":
			i++
			limits.Depth = parseInt(args, i)
		case "wtime":
			i++
			limits.WhiteTime = parseMS(args, i)
		case "btime":
			i++
			limits.BlackTime = parseMS(args, i)
		case "winc":
			i++
			limits.WhiteInc = parseMS(args, i)
		case "binc":
			i++
			limits.BlackInc = parseMS(args, i)
		}
	}
	h.engine.Start(h.pos.Clone(), limits)
}

func (h *Handler) handleStop() {
	result := h.engine.Stop()
	h.sendBestMove(result.BestMove, result.Ponder)
}

func parseMS(args []string, i int) time.Duration {
	return time.Duration(parseInt(args, i)) * time.Millisecond
}

func parseInt(args []string, i int) int {
	if i >= len(args) {
		return 0
	}
	v, _ := strconv.Atoi(args[i])
	return v
}

// SendInfo implements uciengine.Sink, formatting one iterative-deepening
// epoch's progress as a UCI "info" line.
func (h *Handler) SendInfo(info uciengine.ProgressInfo) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("info depth %d", info.Depth))
	if info.IsMate {
		sb.WriteString(fmt.Sprintf(" score mate %d", info.MateIn))
	} else {
		sb.WriteString(fmt.Sprintf(" score cp %d", info.ScoreCP))
	}
	sb.WriteString(fmt.Sprintf(" nodes %d time %d", info.Nodes, info.ElapsedMS))
	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.PV {
			sb.WriteString(" " + m.UCI())
		}
	}
	h.send("%s", sb.String())
}

// SendBestMove implements uciengine.Sink.
func (h *Handler) SendBestMove(best, ponder types.Move) {
	h.sendBestMove(best, ponder)
}

func (h *Handler) sendBestMove(best, ponder types.Move) {
	if best == 0 {
		h.send("bestmove (none)")
		return
	}
	if ponder != 0 {
		h.send("bestmove %s ponder %s", best.UCI(), ponder.UCI())
		return
	}
	h.send("bestmove %s", best.UCI())
}
