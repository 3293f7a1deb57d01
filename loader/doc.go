// Package loader reads graphs and bit labels from the plain-text formats the
// graphkit commands accept.
//
// Formats (blank lines and lines starting with '#' are ignored everywhere):
//
//	edge list      "u v [w]" per line; w defaults to 0
//	adjacency      "v n1,w1 n2,w2 ..." or "v n1 n2 ..." per line
//	labels         header "n width", then n lines of width bits
//	               written as "0 1 1" or "011"
//
// With WithHeader, edge lists start with "n" or "n m" and adjacency files
// with "n". A header vertex count registers vertices base..base+n-1 (base
// defaults to 1), so isolated vertices are kept. An edge count must match
// the number of edge lines and an adjacency count the number of rows.
//
// All syntax problems wrap ErrSyntax and carry the 1-based line number.
package loader
