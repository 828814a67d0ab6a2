// Package vector provides the fixed-dimensional float32 vector type used
// throughout this module. It includes:
//   - componentwise arithmetic and scalar operations
//   - Euclidean norm and distance kernels
//   - zero and uniform-random constructors
//   - embedding encoding (BLOB)
package vector
