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
	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/types"
)

// nodeRef indexes into a tree's arena. noNode marks the absence of a
// child or sibling.
type nodeRef int32

const noNode nodeRef = -1

type terminalKind uint8

const (
	terminalNone terminalKind = iota
	terminalCheckmate
	terminalStalemate
)

// node is one position in the search tree. Nodes are never freed: the
// arena grows monotonically for the lifetime of one search, across all
// of its iterative-deepening epochs.
type node struct {
	move        types.Move
	board       board.Board
	depth       int
	score       int
	terminal    terminalKind
	firstChild  nodeRef
	nextSibling nodeRef
}

// tree is an arena-backed game tree. Node references are slice indices,
// not pointers, so the whole structure is relocation-safe and cheap to
// grow.
type tree struct {
	nodes []node
}

func newTree(root board.Board) *tree {
	t := &tree{nodes: make([]node, 0, 4096)}
	t.nodes = append(t.nodes, node{board: root, firstChild: noNode, nextSibling: noNode})
	return t
}

func (t *tree) at(r nodeRef) *node {
	return &t.nodes[r]
}

// addChild appends a new node as the last child of parent, threading it
// onto the end of the existing sibling chain.
func (t *tree) addChild(parent nodeRef, m types.Move, b board.Board, depth int) nodeRef {
	ref := nodeRef(len(t.nodes))
	t.nodes = append(t.nodes, node{
		move:        m,
		board:       b,
		depth:       depth,
		firstChild:  noNode,
		nextSibling: noNode,
	})
	p := t.at(parent)
	if p.firstChild == noNode {
		p.firstChild = ref
	} else {
		sib := p.firstChild
		for t.at(sib).nextSibling != noNode {
			sib = t.at(sib).nextSibling
		}
		t.at(sib).nextSibling = ref
	}
	return ref
}

const root nodeRef = 0
