// Package cluster groups vertices by single-linkage: edges (or label
// distances) are considered cheapest first and merge clusters through a
// disjoint-set forest.
//
// KClustering runs Kruskal's scan on a weighted graph and stops once k
// clusters remain. The spacing it reports is the weight of the first edge,
// in the same scan order, that still joins two different clusters: no
// partition into k clusters has a larger minimum inter-cluster distance.
//
// Hamming clusters nodes carrying fixed-width bit labels, merging every
// pair whose labels differ in at most d bits (default 2). Instead of
// comparing all pairs it enumerates the Σ C(width, i), i ≤ d, flip masks
// once and probes label ^ mask for each distinct label, so the cost is
// O(distinct labels × masks) rather than O(n²).
package cluster
