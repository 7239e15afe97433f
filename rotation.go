package perigee

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 rotation about the 2nd axis.
// Applied to a vector of the orbital plane, it tilts that plane about the y axis (the line of
// nodes) by the angle x, without the singularity of z = x*tan(i) at 90 degrees.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m mat.Matrix, v r3.Vec) r3.Vec {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vec{X: rVec.AtVec(0), Y: rVec.AtVec(1), Z: rVec.AtVec(2)}
}

// inclined maps the polar coordinates (r, θ) of the orbital plane to the body centered frame
// with tilt = R2(i): x = r cosθ cos(i), y = r sinθ, z = r cosθ sin(i).
func inclined(r, θ float64, tilt *mat.Dense) r3.Vec {
	sθ, cθ := math.Sincos(θ)
	return MxV33(tilt, r3.Vec{X: r * cθ, Y: r * sθ})
}
