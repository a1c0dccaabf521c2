// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

// bgs.go holds the Block-Gauss-Seidel (BGS) subiteration snapshots. The
// coupling orchestrator calls the Snapshot* operations once per node at the
// start of each outer iteration, before the next iteration perturbs the
// solutions; it then subtracts snapshot from current to measure fixed-point
// convergence and to drive relaxation (e.g. Aitken). The snapshots are never
// read by the adjoint kernels themselves.

// SnapshotBGS records the adjoint solution @ node as the reference value of
// the current outer iteration
func (o *State) SnapshotBGS(node int) error {
	return o.Sol.Snapshot(node)
}

// SnapshotBGSAll records the adjoint solution of all nodes
func (o *State) SnapshotBGSAll() {
	o.Sol.SnapshotAll()
}

// SnapshotGeometryBGS records the mesh adjoint @ node as the reference value
// of the current outer iteration
func (o *State) SnapshotGeometryBGS(node int) error {
	return o.GeoSol.Snapshot(node)
}

// SnapshotGeometryBGSAll records the mesh adjoint of all nodes
func (o *State) SnapshotGeometryBGSAll() {
	o.GeoSol.SnapshotAll()
}

// SnapshotOldGeometry records the mesh adjoint @ node before the geometry
// discipline's own update; a pre-update reference for deferred/implicit
// relaxation, distinct from the cross-discipline BGS reference
func (o *State) SnapshotOldGeometry(node int) error {
	return o.GeoOld.CopyNode(node, o.GeoSol.Cur)
}

// SnapshotOldGeometryAll records the pre-update mesh adjoint of all nodes
func (o *State) SnapshotOldGeometryAll() {
	for n := 0; n < o.nnod; n++ {
		o.GeoOld.CopyNode(n, o.GeoSol.Cur)
	}
}

// GetSolutionBGS returns adjoint variable ivar @ node as it stood at the
// start of the current outer iteration
func (o *State) GetSolutionBGS(node, ivar int) (float64, error) {
	return o.Sol.Old.Value(node, ivar)
}

// GetSolutionGeometryBGS returns mesh adjoint component idim @ node as it
// stood at the start of the current outer iteration
func (o *State) GetSolutionGeometryBGS(node, idim int) (float64, error) {
	return o.GeoSol.Old.Value(node, idim)
}

// GetOldSolutionGeometry returns mesh adjoint component idim @ node as it
// stood before the geometry discipline's own update
func (o *State) GetOldSolutionGeometry(node, idim int) (float64, error) {
	return o.GeoOld.Value(node, idim)
}
