// SPDX-License-Identifier: MIT
// Package arrayops provides the typed id-array and sparse-matrix primitives
// that the rest of graphflow builds on: dense 1-D vertex/edge id buffers,
// and COO/CSR conversion, slicing, gathering and duplicate-detection kernels
// over them.
//
// The package treats these primitives as if consumed from an external
// typed-array runtime (see arrow_backend.go for the one place that runtime
// is real, not simulated): everything above this package works with the
// concrete IdArray/COOMatrix/CSRMatrix types defined here rather than
// talking to a columnar buffer library directly.
package arrayops
