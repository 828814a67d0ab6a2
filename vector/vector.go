package vector

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/viant/vec/search"
	"gonum.org/v1/gonum/blas/gonum"
)

// Epsilon is the smallest scalar magnitude accepted by Div.
const Epsilon = 1e-8

// blasEngine dispatches float32 BLAS kernels; Gonum handles SIMD internally.
var blasEngine = gonum.Implementation{}

// Vector is an ordered sequence of float32 coordinates. All vectors indexed
// by one tree share the same dimensionality.
type Vector []float32

// New constructs a Vector of the given dimensionality from coords. It
// returns an error when len(coords) != dim.
func New(dim int, coords []float32) (Vector, error) {
	if len(coords) != dim {
		return nil, fmt.Errorf("vector: %w: got %d coordinates, want %d", ErrDimensionMismatch, len(coords), dim)
	}
	v := make(Vector, dim)
	copy(v, coords)
	return v, nil
}

// Zero returns the zero vector of the given dimensionality.
func Zero(dim int) Vector {
	return make(Vector, dim)
}

// Random returns a vector with coordinates drawn uniformly from [min, max).
func Random(dim int, min, max float32) Vector {
	v := make(Vector, dim)
	for i := range v {
		v[i] = min + rand.Float32()*(max-min)
	}
	return v
}

// RandomSource is like Random but draws from the provided source, so drivers
// and tests can generate reproducible data.
func RandomSource(r *rand.Rand, dim int, min, max float32) Vector {
	v := make(Vector, dim)
	for i := range v {
		v[i] = min + r.Float32()*(max-min)
	}
	return v
}

// Dim returns the dimensionality of the vector.
func (v Vector) Dim() int { return len(v) }

// At returns the i-th coordinate.
func (v Vector) At(i int) (float32, error) {
	if i < 0 || i >= len(v) {
		return 0, fmt.Errorf("vector: %w: index %d, dim %d", ErrOutOfRange, i, len(v))
	}
	return v[i], nil
}

// Clone returns an independent copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Add returns the componentwise sum v + other.
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vector: add %w: %d vs %d", ErrDimensionMismatch, len(v), len(other))
	}
	out := v.Clone()
	blasEngine.Saxpy(len(out), 1, other, 1, out, 1)
	return out, nil
}

// Sub returns the componentwise difference v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("vector: sub %w: %d vs %d", ErrDimensionMismatch, len(v), len(other))
	}
	out := v.Clone()
	blasEngine.Saxpy(len(out), -1, other, 1, out, 1)
	return out, nil
}

// Scale returns v multiplied by the scalar.
func (v Vector) Scale(scalar float32) Vector {
	out := v.Clone()
	blasEngine.Sscal(len(out), scalar, out, 1)
	return out
}

// Div returns v divided by the scalar. It fails when |scalar| < Epsilon.
func (v Vector) Div(scalar float32) (Vector, error) {
	if math.Abs(float64(scalar)) < Epsilon {
		return nil, fmt.Errorf("vector: %w: scalar %v", ErrDivisionByZero, scalar)
	}
	return v.Scale(1 / scalar), nil
}

// SquaredNorm returns the squared Euclidean norm of v.
func (v Vector) SquaredNorm() float32 {
	return blasEngine.Sdot(len(v), v, 1, v, 1)
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float32 {
	return search.Float32s(v).Magnitude()
}

// Distance returns the Euclidean distance between v and other.
func (v Vector) Distance(other Vector) (float32, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vector: distance %w: %d vs %d", ErrDimensionMismatch, len(v), len(other))
	}
	return Euclidean(v, other), nil
}

// Euclidean returns the Euclidean distance between a and b. Both vectors
// must have the same dimensionality; use Distance for a checked variant.
func Euclidean(a, b Vector) float32 {
	return search.Float32s(a).EuclideanDistance(search.Float32s(b))
}

// Mean returns the componentwise arithmetic mean of vs. All vectors must
// share the same dimensionality and vs must be non-empty.
func Mean(vs []Vector) (Vector, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("vector: mean of empty set")
	}
	dim := len(vs[0])
	out := Zero(dim)
	for _, v := range vs {
		if len(v) != dim {
			return nil, fmt.Errorf("vector: mean %w: %d vs %d", ErrDimensionMismatch, len(v), dim)
		}
		blasEngine.Saxpy(dim, 1, v, 1, out, 1)
	}
	blasEngine.Sscal(dim, 1/float32(len(vs)), out, 1)
	return out, nil
}
