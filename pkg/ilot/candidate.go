package ilot

import "fmt"

// Metrics is the set of four weighted fitness components plus the raw area
// figures they are computed from (§4.7, §3).
type Metrics struct {
	SpaceUtilization   float64 `json:"spaceUtilization"`
	Accessibility      float64 `json:"accessibility"`
	CorridorEfficiency float64 `json:"corridorEfficiency"`
	ADACompliance      float64 `json:"adaCompliance"`

	TotalArea           float64 `json:"totalArea"`
	UsedArea            float64 `json:"usedArea"`
	CorridorTotalLength float64 `json:"corridorTotalLength"`
}

// Candidate is one individual of the evolutionary population: a set of
// îlots, the corridor network synthesized to connect them, and the metrics
// and fitness computed from both.
//
// A Candidate exclusively owns its Ilots and Corridors; copying one via
// Clone always produces structurally independent slices, never aliasing the
// parent's backing arrays.
type Candidate struct {
	Ilots     []Ilot     `json:"ilots"`
	Corridors []Corridor `json:"corridors"`
	Metrics   Metrics    `json:"metrics"`
	Fitness   float64    `json:"fitness"`

	// Diagnostics accumulates non-fatal, human-readable notes about this
	// candidate: dropped îlots, failed A* searches that fell back to a
	// direct-line corridor. It never affects Fitness or the public error
	// surface (§7); it exists purely so a caller inspecting the winning
	// candidate can see why fewer îlots than the catalog target were
	// placed.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// NewCandidate returns an empty Candidate ready to receive îlots.
func NewCandidate() *Candidate {
	return &Candidate{}
}

// Clone returns a deep copy of c: new Ilots/Corridors/Diagnostics slices,
// no shared backing arrays with the parent. Crossover and elitism must use
// Clone rather than a shallow struct copy.
func (c *Candidate) Clone() *Candidate {
	clone := &Candidate{
		Metrics: c.Metrics,
		Fitness: c.Fitness,
	}
	if c.Ilots != nil {
		clone.Ilots = make([]Ilot, len(c.Ilots))
		for i, il := range c.Ilots {
			clone.Ilots[i] = il.Clone()
		}
	}
	if c.Corridors != nil {
		clone.Corridors = make([]Corridor, len(c.Corridors))
		for i, cor := range c.Corridors {
			clone.Corridors[i] = cor.Clone()
		}
	}
	if c.Diagnostics != nil {
		clone.Diagnostics = append([]string(nil), c.Diagnostics...)
	}
	return clone
}

// AddDiagnostic appends a non-fatal note to the candidate's Diagnostics.
func (c *Candidate) AddDiagnostic(format string, args ...any) {
	c.Diagnostics = append(c.Diagnostics, fmt.Sprintf(format, args...))
}

// ConnectivityGraph returns the undirected adjacency implied by the
// candidate's corridors: two îlots are adjacent iff some corridor's
// ConnectedIlots set contains both.
//
// Grounded on pkg/graph.Graph's adjacency-map/BFS pattern, generalized from
// room ids to îlot ids.
type ConnectivityGraph struct {
	adjacency map[string]map[string]bool
	nodes     map[string]bool
}

// BuildConnectivityGraph constructs the candidate's connectivity graph from
// its current Ilots and Corridors.
func (c *Candidate) BuildConnectivityGraph() *ConnectivityGraph {
	g := &ConnectivityGraph{
		adjacency: make(map[string]map[string]bool),
		nodes:     make(map[string]bool),
	}
	for _, il := range c.Ilots {
		g.nodes[il.ID] = true
		g.adjacency[il.ID] = make(map[string]bool)
	}
	for _, cor := range c.Corridors {
		for _, a := range cor.ConnectedIlots {
			for _, b := range cor.ConnectedIlots {
				if a == b {
					continue
				}
				if g.adjacency[a] == nil {
					g.adjacency[a] = make(map[string]bool)
				}
				g.adjacency[a][b] = true
			}
		}
	}
	return g
}

// reachable returns every node reachable from `from` via BFS, including
// `from` itself.
func (g *ConnectivityGraph) reachable(from string) map[string]bool {
	visited := make(map[string]bool)
	if !g.nodes[from] {
		return visited
	}
	queue := []string{from}
	visited[from] = true
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for neighbor := range g.adjacency[current] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return visited
}

// LargestComponentSize returns the size of the largest connected component
// of îlots in the graph. Returns 0 for an empty graph.
func (g *ConnectivityGraph) LargestComponentSize() int {
	seen := make(map[string]bool)
	largest := 0
	for node := range g.nodes {
		if seen[node] {
			continue
		}
		component := g.reachable(node)
		for id := range component {
			seen[id] = true
		}
		if len(component) > largest {
			largest = len(component)
		}
	}
	return largest
}

// Components returns every connected component as a slice of node-id sets,
// used by the corridor synthesizer's Stage B to find residual components
// needing an MST edge.
func (g *ConnectivityGraph) Components() [][]string {
	seen := make(map[string]bool)
	var components [][]string
	for node := range g.nodes {
		if seen[node] {
			continue
		}
		reached := g.reachable(node)
		ids := make([]string, 0, len(reached))
		for id := range reached {
			ids = append(ids, id)
			seen[id] = true
		}
		components = append(components, ids)
	}
	return components
}
