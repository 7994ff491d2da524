// SPDX-License-Identifier: MIT

// Package query answers batches of (from, to) questions against a computed
// apsp.Result and renders answers and matrices as text.
//
// A Result is read-only once FloydWarshall returns, so Resolve fans pairs
// out over an ants goroutine pool without locking. Per-pair failures
// (unreachable target, bad index, negative-cycle walk) are reported in
// Answer.Err and never abort the rest of the batch.
package query
