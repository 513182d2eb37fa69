// Package garp measures how far a finite panel of consumer choice
// observations deviates from utility-maximizing behavior.
//
// Given, for each of T periods, a positive price vector and a
// non-negative purchased bundle (both over G goods), it builds the
// revealed-preference graph (package graphbuild) and computes a battery of
// rationality indices over it — Afriat, Houtman-Maks, Swaps, Varian-α,
// Inverse-Varian-α, and the Normalized Minimum-Cost Index-α (package
// indices) — optionally under an assumption that the rationalizing utility
// is symmetric in the goods (package symmetric). It can also report
// money-pump statistics (package moneypump) and a percentile score against
// random quantity draws on the same budget lines (package montecarlo).
//
// Subpackages:
//
//	matrix      — dense G×T price/quantity storage
//	graphbuild  — CSR revealed-preference graph construction
//	scc         — strongly connected components (Tarjan) and the strict-cycle test
//	cycles      — elementary-cycle search: Johnson enumeration, critical-cycle DFS, Afriat's DFS
//	ilp         — exact binary covering-program oracle (branch and bound)
//	indices     — the six rationality indices and their shared cycle-cover outer loop
//	symmetric   — the symmetric-utility graph extension
//	moneypump   — money-pump statistics over elementary cycles
//	montecarlo  — the percentile/Monte-Carlo driver
//
//	go get github.com/revealedpref/garp
package garp
