// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// crossterm.go holds derivative contributions injected by other disciplines'
// adjoint solutions. Setters REPLACE the stored value; they never add to it,
// so a coupling iteration can recompute a cross term from scratch without
// inheriting a stale subiteration. Accumulation over several contributing
// kernels is the caller's read-modify-write.

// SetCrossTermDer sets the cross-term contribution to adjoint variable ivar @ node
func (o *State) SetCrossTermDer(node, ivar int, der float64) error {
	return o.CrossTerm.SetValue(node, ivar, der)
}

// GetCrossTermDer returns the cross-term contribution to adjoint variable ivar @ node
func (o *State) GetCrossTermDer(node, ivar int) (float64, error) {
	return o.CrossTerm.Value(node, ivar)
}

// SetGeoCrossTermDer sets the generic-origin cross-term contribution to the
// mesh adjoint, component idim @ node
func (o *State) SetGeoCrossTermDer(node, idim int, der float64) error {
	return o.GeoCrossTerm.SetValue(node, idim, der)
}

// GetGeoCrossTermDer returns the generic-origin cross-term contribution to
// the mesh adjoint, component idim @ node
func (o *State) GetGeoCrossTermDer(node, idim int) (float64, error) {
	return o.GeoCrossTerm.Value(node, idim)
}

// SetGeoCrossTermDerFlow sets the flow-origin cross-term contribution to the
// mesh adjoint, component idim @ node. Kept apart from the generic one
// because relaxation may weight the two differently
func (o *State) SetGeoCrossTermDerFlow(node, idim int, der float64) error {
	return o.GeoCrossTermFlow.SetValue(node, idim, der)
}

// GetGeoCrossTermDerFlow returns the flow-origin cross-term contribution to
// the mesh adjoint, component idim @ node
func (o *State) GetGeoCrossTermDerFlow(node, idim int) (float64, error) {
	return o.GeoCrossTermFlow.Value(node, idim)
}
