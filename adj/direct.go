// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// direct.go holds the cache of the converged primal (direct) state.
// The orchestrator writes these once per time level, before the adjoint
// subiterations start; the reverse-differentiation kernels only read them.
// Reads return the values bit-identical to the last write.

// SetSolutionDirect stores the converged primal solution @ node.
// len(vals) must equal Nvar
func (o *State) SetSolutionDirect(node int, vals []float64) error {
	return o.Direct.SetNode(node, vals)
}

// GetSolutionDirect returns a copy of the converged primal solution @ node
func (o *State) GetSolutionDirect(node int) ([]float64, error) {
	return o.Direct.Node(node)
}

// SetGeometryDirect stores the converged primal mesh coordinates @ node.
// len(coords) must equal Ndim
func (o *State) SetGeometryDirect(node int, coords []float64) error {
	return o.GeoDirect.SetNode(node, coords)
}

// GetGeometryDirect returns a copy of the converged primal coordinates @ node
func (o *State) GetGeometryDirect(node int) ([]float64, error) {
	return o.GeoDirect.Node(node)
}

// GetGeometryDirectDim returns coordinate idim of the converged primal geometry @ node
func (o *State) GetGeometryDirectDim(node, idim int) (float64, error) {
	return o.GeoDirect.Value(node, idim)
}
