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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel-engine/kestrel/internal/board"
	"github.com/kestrel-engine/kestrel/internal/types"
)

func TestEvaluateMaterialStartPositionIsBalanced(t *testing.T) {
	b, err := board.FromFEN(board.StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, 0, EvaluateMaterial(b))
}

func TestEvaluateMaterialFavoursExtraQueen(t *testing.T) {
	b, err := board.FromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, 900, EvaluateMaterial(b))
}

func TestForResolvesModeWithMaterialDefault(t *testing.T) {
	assert.NotNil(t, For(Material))
	assert.NotNil(t, For(Tapered))
	assert.NotNil(t, For(Mode("bogus")))

	b, err := board.FromFEN(board.StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, EvaluateMaterial(b), For(Mode("bogus"))(b))
}

func TestEvaluateTaperedBishopPairBonus(t *testing.T) {
	withPair, err := board.FromFEN("4k3/8/8/8/8/8/8/B1B1K3 w - - 0 1")
	assert.NoError(t, err)
	onlyOne, err := board.FromFEN("4k3/8/8/8/8/8/8/B3K3 w - - 0 1")
	assert.NoError(t, err)

	gap := EvaluateTapered(withPair) - EvaluateTapered(onlyOne)
	assert.Equal(t, types.Bishop.Value()+bishopPairBonus, gap)
}

func TestEvaluateTaperedRookOpenFileBonus(t *testing.T) {
	// Same material in both positions (one white rook, one white pawn) -
	// only the rook's file differs, so the gap isolates the bonus.
	open, err := board.FromFEN("4k3/8/8/8/8/8/P7/3RK3 w - - 0 1")
	assert.NoError(t, err)
	closed, err := board.FromFEN("4k3/8/8/8/8/8/P7/R3K3 w - - 0 1")
	assert.NoError(t, err)

	assert.Greater(t, EvaluateTapered(open), EvaluateTapered(closed))
}

func TestEvaluateTaperedPenalizesIsolatedPawn(t *testing.T) {
	// Kings on h1/h7 sit equidistant from the centre, so kingActivityScore
	// contributes zero and the gap isolates the pawn-structure term.
	isolated, err := board.FromFEN("8/7k/8/8/8/8/P7/7K w - - 0 1")
	assert.NoError(t, err)
	supported, err := board.FromFEN("8/7k/8/8/8/8/PP6/7K w - - 0 1")
	assert.NoError(t, err)

	assert.Less(t, EvaluateTapered(isolated)-EvaluateMaterial(isolated), 0)
	assert.Equal(t, 0, EvaluateTapered(supported)-EvaluateMaterial(supported))
}
