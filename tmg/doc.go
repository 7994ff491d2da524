// SPDX-License-Identifier: MIT

// Package tmg reads road-network graphs in the TMG "simple" text format
// and turns them into a matrix.WeightedAdjacency.
//
// File layout:
//
//	TMG 1.0 simple
//	V E
//	<label> <lat> <lng>      (V lines; the 0-based line position is the vertex id)
//	<from> <to> <label>      (E lines; 0-based vertex ids)
//
// Each edge line is undirected: it produces from→to and to→from, both
// weighted by the haversine distance in meters between the endpoints.
// Vertex and edge labels are kept for reporting but never affect weights.
//
// Parsing is strict. Any malformed line aborts with a *FormatError that
// carries the 1-based line number and wraps one of the package sentinels
// (or a matrix sentinel for bad indices and sizes). Blank lines after the
// last edge are ignored; any other trailing content is ErrTrailing.
package tmg
