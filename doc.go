// Package fxp is a deterministic fixed-point quantization toolkit:
// convert real scalars and slices into ARM-style Qm.n fixed-point
// representation under explicit rounding and overflow policies.
//
// 🚀 What is fxp?
//
//	A small, pure-Go library that brings together:
//		• Q-format specs: integer bits + fractional bits + signedness as a value type
//		• Nine rounding modes: TRUNC, CEIL, TO_ZERO, AWAY and five half-way rules
//		• Three overflow policies: two's-complement WRAP, SAT clamping, checked errors
//		• Scalar and slice paths guaranteed to agree bit-for-bit
//		• A compile-once pipeline for hot loops (mode dispatch hoisted out)
//
// ✨ Why choose fxp?
//
//   - Deterministic – same inputs, same outputs, no hidden state
//   - Concurrency-safe – specs and pipelines are immutable after construction
//   - Pure Go – no cgo, no hidden deps
//   - Strict – typed sentinel errors, never a silently corrected spec
//
// Everything lives in one subpackage:
//
//	quant/ — Spec, Q, Quantize, QuantizeSlice, Compile/Pipeline
//
// Quick taste:
//
//	spec, _ := quant.Q(3, 4) // sQ3.4: signed, 3 integer bits, 4 fractional bits
//	y, _ := quant.Quantize(math.Pi, spec)
//	// y == 3.125
//
// Dive into examples/ for a fixed-point integrator walkthrough.
//
//	go get github.com/ericsmacedo/fxp/quant
package fxp
