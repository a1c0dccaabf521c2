// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// Store defines what all per-node solver state containers expose
type Store interface {
	Nnod() int // number of nodes
	Ndim() int // space dimension
	Nvar() int // number of solver variables
}

// WithDirectState defines stores caching a converged primal state
type WithDirectState interface {
	SetSolutionDirect(node int, vals []float64) error   // store primal solution @ node
	GetSolutionDirect(node int) ([]float64, error)      // read primal solution @ node
	SetGeometryDirect(node int, coords []float64) error // store primal coordinates @ node
	GetGeometryDirect(node int) ([]float64, error)      // read primal coordinates @ node
	GetGeometryDirectDim(node, idim int) (float64, error)
}

// WithDualTime defines stores carrying the unsteady adjoint term over two time levels
type WithDualTime interface {
	SetDualTimeDer(node, ivar int, der float64) error
	GetDualTimeDer(node, ivar int) (float64, error)
	SetDualTimeDerN(node, ivar int, der float64) error
	GetDualTimeDerN(node, ivar int) (float64, error)
	AdvanceDualTime(node int) error // previous level takes the current value
}

// WithCrossTerms defines stores receiving derivative contributions from other disciplines
type WithCrossTerms interface {
	SetCrossTermDer(node, ivar int, der float64) error
	GetCrossTermDer(node, ivar int) (float64, error)
	SetGeoCrossTermDer(node, idim int, der float64) error
	GetGeoCrossTermDer(node, idim int) (float64, error)
	SetGeoCrossTermDerFlow(node, idim int, der float64) error
	GetGeoCrossTermDerFlow(node, idim int) (float64, error)
}

// WithBGSSnapshots defines stores supporting outer-iteration snapshots for
// convergence measurement and relaxation
type WithBGSSnapshots interface {
	SnapshotBGS(node int) error
	SnapshotGeometryBGS(node int) error
	SnapshotOldGeometry(node int) error
	GetSolutionBGS(node, ivar int) (float64, error)
	GetSolutionGeometryBGS(node, idim int) (float64, error)
	GetOldSolutionGeometry(node, idim int) (float64, error)
}

// WithSensitivity defines stores exposing the final objective gradient
type WithSensitivity interface {
	SetSensitivity(node, idim int, val float64) error
	GetSensitivity(node, idim int) (float64, error)
}

// check implementations
var (
	_ Store            = (*State)(nil)
	_ WithDirectState  = (*State)(nil)
	_ WithDualTime     = (*State)(nil)
	_ WithCrossTerms   = (*State)(nil)
	_ WithBGSSnapshots = (*State)(nil)
	_ WithSensitivity  = (*State)(nil)
)
