// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package adj implements the per-node state of a coupled discrete-adjoint solver
package adj

import (
	"github.com/cpmech/goadj/nod"
	"github.com/cpmech/gosl/chk"
)

// State holds the discrete-adjoint data @ nodes for one zone. The adjoint
// equations are linearised about a converged primal (direct) state, thus
// State keeps, besides the adjoint solution itself, snapshots of the primal
// solution/coordinates, the unsteady (dual-time) term at two time levels,
// cross-term derivatives injected by other disciplines, Block-Gauss-Seidel
// (BGS) subiteration snapshots, and the final sensitivity.
//
// State is passive storage: it never computes derivatives, norms or
// convergence; those belong to the differentiation kernels and the coupling
// orchestrator. Mutations of disjoint nodes are independent and may run
// concurrently; same-slot writes must be serialised by the caller.
type State struct {

	// shape
	nnod int // number of nodes
	ndim int // space dimension
	nvar int // number of solver variables

	// adjoint solutions with BGS snapshots
	Sol    nod.Pair   // adjoint solution [nvar] + value @ start of current outer iteration
	GeoSol nod.Pair   // mesh-deformation adjoint [ndim] + value @ start of current outer iteration
	GeoOld *nod.Field // mesh-deformation adjoint before the discipline's own update [ndim]

	// converged primal state @ current time level
	Direct    *nod.Field // primal solution [nvar]; written once per time level
	GeoDirect *nod.Field // primal mesh coordinates [ndim]; written once per time level

	// unsteady adjoint term
	DualTime nod.Pair // dual-time derivative [nvar] @ current + previous time level

	// cross-term derivatives from other disciplines
	CrossTerm        *nod.Field // contribution to this discipline's adjoint [nvar]
	GeoCrossTerm     *nod.Field // contribution to the mesh adjoint, generic origin [ndim]
	GeoCrossTermFlow *nod.Field // contribution to the mesh adjoint from the flow adjoint [ndim]

	// output
	Sens *nod.Field // d(objective)/d(coordinate) [ndim]
}

// NewState allocates the state of one zone with nnod nodes, ndim space
// dimensions and nvar solver variables. iniadj (len=nvar) is broadcast to
// the adjoint solution of every node; nil or empty means zero. All other
// fields start zeroed
func NewState(nnod, ndim, nvar int, iniadj []float64) (o *State, err error) {
	if nnod < 1 || ndim < 1 || nvar < 1 {
		return nil, chk.Err("state must have positive shape: nnod=%d ndim=%d nvar=%d", nnod, ndim, nvar)
	}
	if len(iniadj) > 0 && len(iniadj) != nvar {
		return nil, chk.Err("initial adjoint value needs %d components, got %d", nvar, len(iniadj))
	}
	o = new(State)
	o.nnod, o.ndim, o.nvar = nnod, ndim, nvar
	o.Sol = nod.NewPair("solution", "_bgs_k", nnod, nvar)
	o.GeoSol = nod.NewPair("solution_geometry", "_bgs_k", nnod, ndim)
	o.GeoOld = nod.NewField("solution_geometry_old", nnod, ndim)
	o.Direct = nod.NewField("solution_direct", nnod, nvar)
	o.GeoDirect = nod.NewField("geometry_direct", nnod, ndim)
	o.DualTime = nod.NewPair("dualtime_derivative", "_n", nnod, nvar)
	o.CrossTerm = nod.NewField("crossterm_derivative", nnod, nvar)
	o.GeoCrossTerm = nod.NewField("geometry_crossterm", nnod, ndim)
	o.GeoCrossTermFlow = nod.NewField("geometry_crossterm_flow", nnod, ndim)
	o.Sens = nod.NewField("sensitivity", nnod, ndim)
	if len(iniadj) > 0 {
		for n := 0; n < nnod; n++ {
			o.Sol.Cur.SetNode(n, iniadj) // cannot fail: shape checked above
		}
	}
	return
}

// Nnod returns the number of nodes
func (o *State) Nnod() int { return o.nnod }

// Ndim returns the space dimension
func (o *State) Ndim() int { return o.ndim }

// Nvar returns the number of solver variables
func (o *State) Nvar() int { return o.nvar }

// GetSolution returns adjoint variable ivar @ node
func (o *State) GetSolution(node, ivar int) (float64, error) {
	return o.Sol.Cur.Value(node, ivar)
}

// SetSolution sets adjoint variable ivar @ node
func (o *State) SetSolution(node, ivar int, val float64) error {
	return o.Sol.Cur.SetValue(node, ivar, val)
}

// SetSolutionVec sets all adjoint variables @ node. len(vals) must equal Nvar
func (o *State) SetSolutionVec(node int, vals []float64) error {
	return o.Sol.Cur.SetNode(node, vals)
}

// GetSolutionGeometry returns mesh adjoint component idim @ node
func (o *State) GetSolutionGeometry(node, idim int) (float64, error) {
	return o.GeoSol.Cur.Value(node, idim)
}

// SetSolutionGeometry sets mesh adjoint component idim @ node
func (o *State) SetSolutionGeometry(node, idim int, val float64) error {
	return o.GeoSol.Cur.SetValue(node, idim, val)
}

// SetSolutionGeometryVec sets all mesh adjoint components @ node.
// len(vals) must equal Ndim
func (o *State) SetSolutionGeometryVec(node int, vals []float64) error {
	return o.GeoSol.Cur.SetNode(node, vals)
}
