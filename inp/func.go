// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
)

// TimeSpaceFn is a scalar function of time and position
type TimeSpaceFn func(t float64, x []float64) float64

// P holds one named function parameter
type P struct {
	N string  `json:"n"` // name of parameter
	V float64 `json:"v"` // value of parameter
}

// Prms holds function parameters
type Prms []*P

// Find returns the value of the parameter named n and whether it was given
func (o Prms) Find(n string) (float64, bool) {
	for _, p := range o {
		if p.N == n {
			return p.V, true
		}
	}
	return 0, false
}

// FuncData holds function definition
type FuncData struct {
	Name string `json:"name"` // name of function. ex: zero, inipsi, etc.
	Type string `json:"type"` // type of function. ex: cte, lin
	Prms Prms   `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name. "zero" and "none" resolve without being declared
func (o FuncsData) Get(name string) (fcn TimeSpaceFn, err error) {
	if name == "zero" || name == "none" {
		return func(t float64, x []float64) float64 { return 0 }, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = f.build()
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	err = chk.Err("cannot find function named %q\n", name)
	return
}

// build creates the function from its type and parameters:
//
//	"cte" : f(t,x) = c
//	"lin" : f(t,x) = c + m*t
func (o *FuncData) build() (TimeSpaceFn, error) {
	switch o.Type {
	case "cte":
		c, _ := o.Prms.Find("c")
		return func(t float64, x []float64) float64 { return c }, nil
	case "lin":
		c, _ := o.Prms.Find("c")
		m, _ := o.Prms.Find("m")
		return func(t float64, x []float64) float64 { return c + m*t }, nil
	}
	return nil, chk.Err("function type %q is not available", o.Type)
}
