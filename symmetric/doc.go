// Package symmetric builds the symmetric-utility extension of the base
// revealed-preference graph: instead of comparing bundles good-by-good, it
// allows goods to be freely relabeled, so affordability is judged under the
// most favorable permutation of the other period's bundle.
//
// Augment shares graphbuild's CSR emission loop (graphbuild.AssembleCSR) so
// every downstream consumer — SCC, cycle search, indices — is unchanged by
// running on a symmetric graph instead of a base one.
package symmetric
