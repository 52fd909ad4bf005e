// Package fitness computes a Candidate's Metrics and weighted fitness score
// per §4.7: space-utilization, accessibility, corridor-efficiency, and
// ada-compliance, combined into a single value in [0, 1].
package fitness
