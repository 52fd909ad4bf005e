// Package corridor synthesizes the orthogonal corridor network connecting a
// candidate's îlots (§4.5, §4.6): row/column detection of facing îlot
// rows, straight Stage-A corridors along facing gaps, Stage-B minimum
// spanning tree completion of residual components realized by A* routing
// over the obstacle walkability grid, and an optional Stage-C perimeter
// pass.
package corridor
