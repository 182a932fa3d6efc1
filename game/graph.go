package game

import "quoridor/meta"

// Node is a vertex of the reachability graph: one of the 81 cells or one of
// the two goal nodes.
type Node int

const cellCount = meta.BOARD_SIZE * meta.BOARD_SIZE

const (
	// GoalTop is reached from every cell of row 9, the goal of seat 0.
	GoalTop Node = cellCount + iota
	// GoalBottom is reached from every cell of row 1, the goal of seat 1.
	GoalBottom

	nodeCount = cellCount + 2
)

// Up to two targets per direction plus the goal edge.
const maxDegree = 2*len(directions) + 1

// NodeOf returns the node of an on-board cell.
func NodeOf(p Position) Node {
	return Node((p.Y-1)*meta.BOARD_SIZE + (p.X - 1))
}

// Position returns the cell of a node; ok is false for goal nodes.
func (n Node) Position() (p Position, ok bool) {
	if n < 0 || n >= cellCount {
		return Position{}, false
	}
	return Pos(int(n)%meta.BOARD_SIZE+1, int(n)/meta.BOARD_SIZE+1), true
}

// GoalOf returns the goal node of a seat.
func GoalOf(seat int) Node {
	if seat == 0 {
		return GoalTop
	}
	return GoalBottom
}

// Graph is the directed relation of legal single moves under one wall and
// token configuration. It is immutable once built.
type Graph struct {
	adj [nodeCount][maxDegree]Node
	deg [nodeCount]uint8
}

// barriers flattens a WallSet into per-edge lookups.
// up[x][y] blocks (x,y)<->(x,y+1); right[x][y] blocks (x,y)<->(x+1,y).
type barriers struct {
	up    [meta.BOARD_SIZE + 2][meta.BOARD_SIZE + 2]bool
	right [meta.BOARD_SIZE + 2][meta.BOARD_SIZE + 2]bool
}

func newBarriers(walls WallSet) *barriers {
	b := &barriers{}
	for _, w := range walls.Horizontal {
		if InBounds(WallHorizontal, w) {
			b.up[w.X][w.Y-1] = true
			b.up[w.X+1][w.Y-1] = true
		}
	}
	for _, w := range walls.Vertical {
		if InBounds(WallVertical, w) {
			b.right[w.X-1][w.Y] = true
			b.right[w.X-1][w.Y+1] = true
		}
	}
	return b
}

// open reports whether a token may cross from p to its neighbour p+d.
func (b *barriers) open(p Position, d direction) bool {
	q := p.add(d)
	if !q.OnBoard() {
		return false
	}
	switch {
	case d.dy == 1:
		return !b.up[p.X][p.Y]
	case d.dy == -1:
		return !b.up[q.X][q.Y]
	case d.dx == 1:
		return !b.right[p.X][p.Y]
	default:
		return !b.right[q.X][q.Y]
	}
}

// BuildGraph builds the reachability graph for the given token positions and
// walls. Tokens block the cells they stand on; a token next to another one
// jumps straight over it, or diagonally when the straight jump is blocked.
func BuildGraph(positions [2]Position, walls WallSet) *Graph {
	g := &Graph{}
	b := newBarriers(walls)
	occupied := func(p Position) bool {
		return p == positions[0] || p == positions[1]
	}

	for y := 1; y <= meta.BOARD_SIZE; y++ {
		for x := 1; x <= meta.BOARD_SIZE; x++ {
			cell := Pos(x, y)
			from := NodeOf(cell)
			for _, d := range directions {
				if !b.open(cell, d) {
					continue
				}
				next := cell.add(d)
				if !occupied(next) {
					g.link(from, NodeOf(next))
					continue
				}
				if beyond := next.add(d); b.open(next, d) && !occupied(beyond) {
					g.link(from, NodeOf(beyond))
					continue
				}
				for _, side := range d.perpendicular() {
					if diagonal := next.add(side); b.open(next, side) && !occupied(diagonal) {
						g.link(from, NodeOf(diagonal))
					}
				}
			}
			switch y {
			case meta.BOARD_SIZE:
				g.link(from, GoalTop)
			case 1:
				g.link(from, GoalBottom)
			}
		}
	}
	return g
}

func (g *Graph) link(from, to Node) {
	g.adj[from][g.deg[from]] = to
	g.deg[from]++
}

// Successors returns the cells reachable from p in one legal move.
func (g *Graph) Successors(p Position) []Position {
	if !p.OnBoard() {
		return nil
	}
	from := NodeOf(p)
	cells := make([]Position, 0, g.deg[from])
	for _, n := range g.adj[from][:g.deg[from]] {
		if cell, ok := n.Position(); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// HasEdge reports whether to is a successor of from.
func (g *Graph) HasEdge(from, to Position) bool {
	if !from.OnBoard() || !to.OnBoard() {
		return false
	}
	f, t := NodeOf(from), NodeOf(to)
	for _, n := range g.adj[f][:g.deg[f]] {
		if n == t {
			return true
		}
	}
	return false
}

// bfs returns the predecessor of every node reached from start, or -1.
func (g *Graph) bfs(start Node) [nodeCount]Node {
	var prev [nodeCount]Node
	for i := range prev {
		prev[i] = -1
	}
	prev[start] = start
	queue := make([]Node, 0, nodeCount)
	queue = append(queue, start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.adj[current][:g.deg[current]] {
			if prev[n] == -1 {
				prev[n] = current
				queue = append(queue, n)
			}
		}
	}
	return prev
}

// Path returns a shortest path from p to the target node, both ends
// included, or nil when the target cannot be reached.
func (g *Graph) Path(p Position, to Node) []Node {
	if !p.OnBoard() {
		return nil
	}
	from := NodeOf(p)
	prev := g.bfs(from)
	if prev[to] == -1 {
		return nil
	}
	var reversed []Node
	for n := to; n != from; n = prev[n] {
		reversed = append(reversed, n)
	}
	reversed = append(reversed, from)
	path := make([]Node, len(reversed))
	for i, n := range reversed {
		path[len(reversed)-1-i] = n
	}
	return path
}

// Distance is the number of edges on a shortest path from p to the target
// node, or -1 when there is none.
func (g *Graph) Distance(p Position, to Node) int {
	path := g.Path(p, to)
	if path == nil {
		return -1
	}
	return len(path) - 1
}

// HasPath reports whether the target node can be reached from p.
func (g *Graph) HasPath(p Position, to Node) bool {
	return p.OnBoard() && g.bfs(NodeOf(p))[to] != -1
}
