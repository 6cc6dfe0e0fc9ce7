// Package wccgraph is a parallel weakly-connected-components (WCC) engine
// for directed graphs stored in compressed-sparse-row form.
//
// At its core is a lock-free disjoint-set structure (package dss) built on
// atomic compare-and-swap, with path halving on find and min-rooted linking
// on union. Five interchangeable linker baselines (package wcc) union every
// vertex's out-edges directly; the default wcc.Run pipeline instead runs a
// three-phase sampling algorithm — sample a few out-edges per vertex,
// estimate the giant component by random sampling, then link the remainder
// while skipping vertices already inside the giant — to sharply reduce CAS
// contention on large, real-world graphs that have one dominant component.
//
// Subpackages:
//
//	idx/          — generic vertex-index constraint and atomic index cell
//	dss/          — the lock-free disjoint-set structure
//	csr/          — read-only CSR graph contract, plus CSR-native topology generators
//	workerpool/   — persistent worker pool and chunk-dispensing primitives
//	wcc/          — the linker baselines and the sampling pipeline
//	cmd/wccbench/ — CLI benchmark driver
package wccgraph
