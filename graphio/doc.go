// Package graphio reads and writes graphs in plain-text interchange
// formats: whitespace-separated edge lists (with # and % comments), the GML
// nested-block format, and the UCINET DL edge-list format.
//
// Reading assigns dense vertex indices in order of first appearance and
// records the original tokens as vertex labels, so writing the graph back
// with WithLabels reproduces the input vocabulary.
package graphio
