// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// shape function of tri3 (3-node triangle)
//
//    s
//    |
//    2
//    | \
//    |  \
//    |   \
//    0----1-->r
func init() {

	tri3 := &Shape{
		Type:    "tri3",
		Gndim:   2,
		Nverts:  3,
		VtkCode: 5,
		NatCoords: [][]float64{
			{0, 1, 0},
			{0, 0, 1},
		},
	}

	tri3.Func = func(S []float64, dSdR [][]float64, r []float64, derivs bool) {
		S[0] = 1.0 - r[0] - r[1]
		S[1] = r[0]
		S[2] = r[1]
		if !derivs {
			return
		}
		dSdR[0][0], dSdR[0][1] = -1.0, -1.0
		dSdR[1][0], dSdR[1][1] = 1.0, 0.0
		dSdR[2][0], dSdR[2][1] = 0.0, 1.0
	}

	tri3.init_scratchpad()
	factory["tri3"] = tri3
}
