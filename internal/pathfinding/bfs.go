// Package pathfinding answers reachability questions on a generated grid.
package pathfinding

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeonascend/internal/world"
)

// Grid is the view of a dungeon the searches need.
type Grid interface {
	IsWalkable(x, y int) bool
}

// Neighbour order: down, right, up, left.
var directions = []world.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}

// Reachable flood-fills from start over 4-connected walkable tiles and
// returns every visited coordinate. A non-walkable start yields an empty set.
func Reachable(g Grid, start world.Point) mapset.Set[world.Point] {
	visited := mapset.New[world.Point]()
	if !g.IsWalkable(start.X, start.Y) {
		return visited
	}

	visited.Put(start)
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range directions {
			next := world.Point{X: current.X + dir.X, Y: current.Y + dir.Y}
			if visited.Has(next) || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}

	return visited
}

// ShortestPath returns the shortest 4-connected path from start to goal,
// both endpoints included. ok is false when either endpoint is not walkable
// or the goal cannot be reached.
func ShortestPath(g Grid, start, goal world.Point) (path []world.Point, ok bool) {
	if !g.IsWalkable(start.X, start.Y) || !g.IsWalkable(goal.X, goal.Y) {
		return nil, false
	}
	if start == goal {
		return []world.Point{start}, true
	}

	cameFrom := map[world.Point]world.Point{start: start}
	queue := []world.Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return reconstruct(cameFrom, start, goal), true
		}

		for _, dir := range directions {
			next := world.Point{X: current.X + dir.X, Y: current.Y + dir.Y}
			if _, seen := cameFrom[next]; seen || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			cameFrom[next] = current
			queue = append(queue, next)
		}
	}

	return nil, false
}

func reconstruct(cameFrom map[world.Point]world.Point, start, goal world.Point) []world.Point {
	var path []world.Point
	for p := goal; p != start; p = cameFrom[p] {
		path = append(path, p)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Manhattan returns the 4-connected grid distance ignoring obstacles.
func Manhattan(a, b world.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
