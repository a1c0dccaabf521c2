// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adj

import (
	"testing"

	"github.com/cpmech/goadj/inp"
	"github.com/cpmech/gosl/chk"
)

func Test_init01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("init01. function-based initial adjoint")

	s, err := NewState(2, 2, 3, nil)
	if err != nil {
		tst.Errorf("NewState failed:\n%v", err)
		return
	}
	s.SetGeometryDirect(0, []float64{1, 2})
	s.SetGeometryDirect(1, []float64{3, 4})

	funcs := inp.FuncsData{
		{Name: "inipsi", Type: "cte", Prms: inp.Prms{&inp.P{N: "c", V: 0.25}}},
	}
	fcn, err := funcs.Get("inipsi")
	if err != nil {
		tst.Errorf("Functions.Get failed:\n%v", err)
		return
	}
	if err := s.SetSolutionFromFunction(fcn, 0); err != nil {
		tst.Errorf("SetSolutionFromFunction failed:\n%v", err)
		return
	}
	for n := 0; n < 2; n++ {
		for i := 0; i < 3; i++ {
			v, _ := s.GetSolution(n, i)
			chk.Float64(tst, "function-initialised adjoint", 1e-17, v, 0.25)
		}
	}
}

func Test_zones01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zones01. one state per zone from definition")

	def := &inp.Definition{
		Desc: "two-zone run",
		Zones: []*inp.ZoneData{
			{Desc: "flow", Nnod: 5, Ndim: 2, Nvar: 4, IniAdj: []float64{0.5, 0.5, 0.5, 0.5}},
			{Desc: "structure", Nnod: 3, Ndim: 2, Nvar: 2, IniAdj: []float64{}},
		},
	}
	states, err := NewStates(def)
	if err != nil {
		tst.Errorf("NewStates failed:\n%v", err)
		return
	}
	chk.IntAssert(len(states), 2)
	chk.IntAssert(states[0].Nnod(), 5)
	chk.IntAssert(states[1].Nvar(), 2)
	v, _ := states[0].GetSolution(4, 3)
	chk.Float64(tst, "zone 0 broadcast", 1e-17, v, 0.5)

	// an explicit empty iniadj means zero, same as omitting it
	v, _ = states[1].GetSolution(0, 0)
	chk.Float64(tst, "zone 1 zeroed by empty iniadj", 1e-17, v, 0)

	// invalid zone shape propagates as error
	def.Zones[1].Nvar = 0
	if _, err := NewStates(def); err == nil {
		tst.Errorf("error expected for invalid zone")
		return
	}
}

func Test_zones02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zones02. inifun applied after geometry is stored")

	def := &inp.Definition{
		Desc: "two-zone run",
		Zones: []*inp.ZoneData{
			{Desc: "flow", Nnod: 2, Ndim: 2, Nvar: 4, IniAdj: []float64{0.5, 0.5, 0.5, 0.5}},
			{Desc: "structure", Nnod: 2, Ndim: 2, Nvar: 2, IniFun: "inipsi"},
		},
		Functions: inp.FuncsData{
			{Name: "inipsi", Type: "cte", Prms: inp.Prms{&inp.P{N: "c", V: 0.25}}},
		},
	}
	states, err := NewStates(def)
	if err != nil {
		tst.Errorf("NewStates failed:\n%v", err)
		return
	}
	states[1].SetGeometryDirect(0, []float64{1, 2})
	states[1].SetGeometryDirect(1, []float64{3, 4})

	if err := InitSolutions(def, states, 0); err != nil {
		tst.Errorf("InitSolutions failed:\n%v", err)
		return
	}

	// zone without inifun keeps the broadcast value
	v, _ := states[0].GetSolution(1, 2)
	chk.Float64(tst, "zone 0 untouched by inifun", 1e-17, v, 0.5)

	// zone with inifun got the function value at every node/variable
	for n := 0; n < 2; n++ {
		for i := 0; i < 2; i++ {
			v, _ = states[1].GetSolution(n, i)
			chk.Float64(tst, "zone 1 initialised by inipsi", 1e-17, v, 0.25)
		}
	}

	// mismatching zones/states must fail
	if err := InitSolutions(def, states[:1], 0); err == nil {
		tst.Errorf("error expected for missing states")
		return
	}

	// unknown function name propagates as error
	def.Zones[1].IniFun = "nope"
	if err := InitSolutions(def, states, 0); err == nil {
		tst.Errorf("error expected for unknown inifun")
		return
	}
}
