// Package srg decides strong regularity of simple undirected graphs.
//
// A graph on v vertices is strongly regular with parameters (v, k, λ, μ) when
// it is k-regular, every pair of adjacent vertices has exactly λ common
// neighbours and every pair of distinct non-adjacent vertices has exactly μ.
//
// Complete and empty graphs are not considered strongly regular: one of the
// two pair classes is empty, so λ or μ would be undefined. Check reports them
// as "False", which is also how a disconnected or non-regular graph renders.
//
// The test runs on a matrix.Adjacency snapshot; common-neighbour counts are
// popcounts over bit-packed rows.
package srg
