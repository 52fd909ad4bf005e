package corridor

import (
	"sort"
	"strconv"

	"github.com/rehmanul/ilot-placement/pkg/geom"
)

// unionFind is a union-find (disjoint-set) structure over string keys,
// used by Kruskal's algorithm to build the minimum spanning tree of §4.6
// Stage B.
type unionFind struct {
	parent map[string]string
	rank   map[string]int
}

func newUnionFind(ids []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		uf.parent[id] = id
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b, returning true if they were
// previously distinct (i.e. an edge connecting them belongs in the MST).
func (uf *unionFind) union(a, b string) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}

// Edge is one selected minimum-spanning-tree edge.
type Edge struct {
	A, B   string
	Weight float64
}

// Kruskal computes the minimum spanning tree over nodeIDs using the given
// weight function for every candidate pair, via sort-and-union-find. Edges
// are returned in the order they were accepted into the tree. If nodeIDs
// has fewer than 2 elements, returns nil.
func Kruskal(nodeIDs []string, weight func(a, b string) float64) []Edge {
	if len(nodeIDs) < 2 {
		return nil
	}

	candidates := make([]Edge, 0, len(nodeIDs)*(len(nodeIDs)-1)/2)
	for i := 0; i < len(nodeIDs); i++ {
		for j := i + 1; j < len(nodeIDs); j++ {
			candidates = append(candidates, Edge{
				A: nodeIDs[i], B: nodeIDs[j],
				Weight: weight(nodeIDs[i], nodeIDs[j]),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Weight < candidates[j].Weight })

	uf := newUnionFind(nodeIDs)
	mst := make([]Edge, 0, len(nodeIDs)-1)
	for _, e := range candidates {
		if uf.union(e.A, e.B) {
			mst = append(mst, e)
			if len(mst) == len(nodeIDs)-1 {
				break
			}
		}
	}
	return mst
}

// TotalWeight sums the weight of every edge.
func TotalWeight(edges []Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// MSTWeightOverPoints computes the minimum-spanning-tree weight over a set
// of points using Euclidean center-to-center distance, per §4.7's
// corridor-efficiency "optimal-length is the MST weight over îlot centers".
func MSTWeightOverPoints(points []geom.Point) float64 {
	if len(points) < 2 {
		return 0
	}
	ids := make([]string, len(points))
	centers := make(map[string]geom.Point, len(points))
	for i, p := range points {
		id := strconv.Itoa(i)
		ids[i] = id
		centers[id] = p
	}
	edges := Kruskal(ids, func(a, b string) float64 {
		return geom.Distance(centers[a], centers[b])
	})
	return TotalWeight(edges)
}
