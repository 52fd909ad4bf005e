package corridor

import (
	"container/heap"

	"github.com/rehmanul/ilot-placement/pkg/geom"
	"github.com/rehmanul/ilot-placement/pkg/obstacle"
)

// cellID packs a grid coordinate into a single comparable key.
type cellID struct{ x, y int }

// Cost constants per §4.6 Stage B: 10 per orthogonal step, 14 per diagonal
// step (the familiar 10/14 integer approximation of 1 and sqrt(2)).
const (
	orthogonalCost = 10.0
	diagonalCost   = 14.0
)

// queueEntry is one node on the A* frontier, ordered by f = g + h (ties
// broken by lower h, per §4.6).
type queueEntry struct {
	cell     cellID
	priority float64
	h        float64
	index    int
}

// priorityQueue is a container/heap-based min-priority queue, grounded on
// the gazed-vu ai package's priorityPointHeap pattern (heap.Init/Push/Pop
// driving an A* frontier keyed by f-cost).
type priorityQueue []*queueEntry

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].h < pq[j].h
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	e := x.(*queueEntry)
	e.index = len(*pq)
	*pq = append(*pq, e)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return e
}

// octileHeuristic estimates the grid-step cost from a to b using the
// octile distance, matching the orthogonal/diagonal cost ratio.
func octileHeuristic(a, b cellID) float64 {
	dx := absInt(a.x - b.x)
	dy := absInt(a.y - b.y)
	if dx > dy {
		return orthogonalCost*float64(dx-dy) + diagonalCost*float64(dy)
	}
	return orthogonalCost*float64(dy-dx) + diagonalCost*float64(dx)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// FindPath runs A* over grid from start to goal, requiring every expanded
// node to admit a walkable square of side (2*widthRadiusCells+1) around it
// (§4.6's width check). It returns the path as a sequence of grid cells
// (start through goal inclusive) and true on success, or nil and false if
// no path exists.
func FindPath(grid *obstacle.Grid, start, goal cellID, widthRadiusCells int) ([]cellID, bool) {
	if !grid.IsAreaWalkable(start.x, start.y, widthRadiusCells) ||
		!grid.IsAreaWalkable(goal.x, goal.y, widthRadiusCells) {
		return nil, false
	}

	cameFrom := map[cellID]cellID{}
	costSoFar := map[cellID]float64{start: 0}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &queueEntry{cell: start, priority: 0, h: octileHeuristic(start, goal)})

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*queueEntry).cell
		if current == goal {
			return reconstructPath(cameFrom, start, goal), true
		}

		for _, off := range neighborOffsets {
			next := cellID{current.x + off[0], current.y + off[1]}
			if !grid.IsAreaWalkable(next.x, next.y, widthRadiusCells) {
				continue
			}
			stepCost := orthogonalCost
			if off[0] != 0 && off[1] != 0 {
				stepCost = diagonalCost
			}
			newCost := costSoFar[current] + stepCost
			if existing, ok := costSoFar[next]; !ok || newCost < existing {
				costSoFar[next] = newCost
				h := octileHeuristic(next, goal)
				heap.Push(pq, &queueEntry{cell: next, priority: newCost + h, h: h})
				cameFrom[next] = current
			}
		}
	}
	return nil, false
}

func reconstructPath(cameFrom map[cellID]cellID, start, goal cellID) []cellID {
	path := []cellID{goal}
	current := goal
	for current != start {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// SmoothLineOfSight greedily replaces sub-paths with a direct segment
// whenever the straight line between two non-adjacent path points is
// collision-free, per §4.6's post-processing pass. Collision is measured
// via the walkability grid's cell occupancy along the segment, not the
// obstacle rectangle list.
func SmoothLineOfSight(grid *obstacle.Grid, path []geom.Point, widthRadiusCells int) []geom.Point {
	if len(path) < 3 {
		return path
	}
	smoothed := []geom.Point{path[0]}
	i := 0
	for i < len(path)-1 {
		j := len(path) - 1
		for j > i+1 {
			if gridLineClear(grid, path[i], path[j], widthRadiusCells) {
				break
			}
			j--
		}
		smoothed = append(smoothed, path[j])
		i = j
	}
	return smoothed
}

// gridLineClear samples the walkability grid along the straight segment
// a-b at sub-cell resolution, requiring every sampled cell to admit the
// same width-check square FindPath enforces.
func gridLineClear(grid *obstacle.Grid, a, b geom.Point, widthRadiusCells int) bool {
	dist := geom.Distance(a, b)
	if dist == 0 {
		cx, cy := grid.WorldToCell(a)
		return grid.IsAreaWalkable(cx, cy, widthRadiusCells)
	}
	steps := int(dist/(grid.CellSize/2)) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		p := geom.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
		cx, cy := grid.WorldToCell(p)
		if !grid.IsAreaWalkable(cx, cy, widthRadiusCells) {
			return false
		}
	}
	return true
}
