// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// auxiliary.go provides the differences the coupling orchestrator subtracts
// when measuring fixed-point convergence. Whether the norm is taken against
// the BGS snapshot or against the pre-update geometry snapshot is the
// orchestrator's policy; both deltas are available. The deltas read the
// underlying buffers in place; only the per-node result slice is written.

// BGSDelta fills res with (current - snapshot) of the adjoint solution @ node.
// len(res) must equal Nvar
func (o *State) BGSDelta(node int, res []float64) error {
	return o.Sol.Delta(node, res)
}

// BGSGeometryDelta fills res with (current - snapshot) of the mesh adjoint @ node.
// len(res) must equal Ndim
func (o *State) BGSGeometryDelta(node int, res []float64) error {
	return o.GeoSol.Delta(node, res)
}

// BGSDeltaNorm returns the Euclidean norm of (current - snapshot) of the
// adjoint solution over all nodes
func (o *State) BGSDeltaNorm() float64 {
	return o.Sol.DeltaNorm()
}

// BGSGeometryDeltaNorm returns the Euclidean norm of (current - snapshot) of
// the mesh adjoint over all nodes
func (o *State) BGSGeometryDeltaNorm() float64 {
	return o.GeoSol.DeltaNorm()
}
