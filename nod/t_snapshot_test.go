// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nod

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_snapshot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot01. snapshot isolates pre-mutation value")

	p := NewPair("solution", "_bgs_k", 2, 3)
	p.Cur.SetNode(0, []float64{1, 2, 3})
	p.Cur.SetNode(1, []float64{4, 5, 6})

	if err := p.Snapshot(0); err != nil {
		tst.Errorf("Snapshot failed:\n%v", err)
		return
	}

	// mutating the source afterwards must not touch the snapshot
	p.Cur.SetValue(0, 0, 9)
	v, _ := p.Old.Node(0)
	chk.Array(tst, "snapshot keeps pre-mutation value", 1e-17, v, []float64{1, 2, 3})
	cur, _ := p.Cur.Node(0)
	chk.Array(tst, "current holds new value", 1e-17, cur, []float64{9, 2, 3})

	// node 1 was never snapshot: still zero
	v, _ = p.Old.Node(1)
	chk.Array(tst, "unsnapshot node is zero", 1e-17, v, []float64{0, 0, 0})

	// repeated snapshot with no intervening mutation is a no-op in effect
	before, _ := p.Old.Node(0)
	p.Cur.SetValue(0, 0, 1) // restore then snapshot twice
	p.Snapshot(0)
	p.Snapshot(0)
	after, _ := p.Old.Node(0)
	chk.Array(tst, "idempotent snapshot", 1e-17, after, before)

	// snapshot of an out-of-range node must fail
	if err := p.Snapshot(2); err == nil {
		tst.Errorf("error expected for node == nnod")
		return
	}
}

func Test_snapshot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot02. snapshot all nodes")

	p := NewPair("dualtime", "_n", 3, 2)
	p.Cur.SetNode(0, []float64{1, 2})
	p.Cur.SetNode(1, []float64{3, 4})
	p.Cur.SetNode(2, []float64{5, 6})
	p.SnapshotAll()
	p.Cur.Fill(0)
	for n, correct := range [][]float64{{1, 2}, {3, 4}, {5, 6}} {
		v, _ := p.Old.Node(n)
		chk.Array(tst, "snapshot all", 1e-17, v, correct)
	}
}

func Test_snapshot03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("snapshot03. in-place deltas and norm")

	p := NewPair("solution", "_bgs_k", 2, 2)
	p.Cur.SetNode(0, []float64{3, 4})
	p.Cur.SetNode(1, []float64{1, 1})
	p.SnapshotAll()
	p.Cur.SetNode(0, []float64{6, 8})

	res := make([]float64, 2)
	if err := p.Delta(0, res); err != nil {
		tst.Errorf("Delta failed:\n%v", err)
		return
	}
	chk.Array(tst, "delta @ 0", 1e-17, res, []float64{3, 4})
	p.Delta(1, res)
	chk.Array(tst, "delta @ 1", 1e-17, res, []float64{0, 0})

	chk.Float64(tst, "delta norm", 1e-15, p.DeltaNorm(), 5)

	// shape and bounds errors
	if err := p.Delta(0, make([]float64, 3)); err == nil {
		tst.Errorf("error expected for wrong delta length")
		return
	}
	if err := p.Delta(2, res); err == nil {
		tst.Errorf("error expected for node == nnod")
		return
	}

	// converged: norm vanishes right after snapshot
	p.SnapshotAll()
	chk.Float64(tst, "vanishing norm", 1e-17, p.DeltaNorm(), 0)
}
