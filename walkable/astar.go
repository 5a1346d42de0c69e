package walkable

import (
	"container/heap"
	"math"
)

var neighborSteps = [8]gridPos{
	{x: -1, y: 0}, {x: 1, y: 0}, {x: 0, y: -1}, {x: 0, y: 1},
	{x: -1, y: -1}, {x: 1, y: -1}, {x: -1, y: 1}, {x: 1, y: 1},
}

// astarPath searches g from start to goal with 8-way moves. Diagonal moves
// may not cut past a blocked orthogonal neighbour.
func astarPath(g *Grid, start, goal gridPos) []gridPos {
	if g.Blocked(start.x, start.y) || g.Blocked(goal.x, goal.y) {
		return nil
	}

	n := g.W * g.H
	cameFrom := make([]int, n)
	for i := range cameFrom {
		cameFrom[i] = -1
	}
	gScore := make([]float64, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	closed := make([]bool, n)

	startIdx := start.y*g.W + start.x
	goalIdx := goal.y*g.W + goal.x
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Init(open)
	heap.Push(open, &openItem{pos: start, f: heuristic(start, goal), g: 0})

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		cur := current.pos
		curIdx := cur.y*g.W + cur.x
		if closed[curIdx] {
			continue
		}
		closed[curIdx] = true

		if curIdx == goalIdx {
			return reconstructPath(cameFrom, g.W, startIdx, goalIdx)
		}

		for _, step := range neighborSteps {
			nb := gridPos{x: cur.x + step.x, y: cur.y + step.y}
			if g.Blocked(nb.x, nb.y) {
				continue
			}
			cost := 1.0
			if step.x != 0 && step.y != 0 {
				if g.Blocked(cur.x+step.x, cur.y) || g.Blocked(cur.x, cur.y+step.y) {
					continue
				}
				cost = math.Sqrt2
			}
			idx := nb.y*g.W + nb.x
			tentativeG := gScore[curIdx] + cost
			if tentativeG < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentativeG
				heap.Push(open, &openItem{pos: nb, f: tentativeG + heuristic(nb, goal), g: tentativeG})
			}
		}
	}

	return nil
}

func reconstructPath(cameFrom []int, gridW int, startIdx, goalIdx int) []gridPos {
	if startIdx == goalIdx {
		return []gridPos{{x: startIdx % gridW, y: startIdx / gridW}}
	}
	if goalIdx < 0 || goalIdx >= len(cameFrom) || cameFrom[goalIdx] == -1 {
		return nil
	}

	path := make([]gridPos, 0, 32)
	cur := goalIdx
	for cur != -1 {
		path = append(path, gridPos{x: cur % gridW, y: cur / gridW})
		if cur == startIdx {
			break
		}
		cur = cameFrom[cur]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// heuristic is the octile distance.
func heuristic(a, b gridPos) float64 {
	dx := math.Abs(float64(a.x - b.x))
	dy := math.Abs(float64(a.y - b.y))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

type openItem struct {
	pos   gridPos
	f     float64
	g     float64
	index int
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}
func (o *openSet) Push(x any) {
	item := x.(*openItem)
	item.index = len(*o)
	*o = append(*o, item)
}
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
