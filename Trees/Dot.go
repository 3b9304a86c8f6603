package Trees

import (
	"strconv"

	"github.com/emicklei/dot"
)

// Dot renders the tree rooted at root as a directed graphviz graph. Every node
// becomes a vertex labelled with its value, edges to children are labelled "L" or
// "R". Vertex ids follow the level order so that equal values don't collide.
func Dot(root *Node) *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	ids := make(map[*Node]dot.Node)
	levelOrder(root, func(n *Node) bool {
		v := g.Node("n" + strconv.Itoa(len(ids))).Label(strconv.Itoa(n.V))
		ids[n] = v
		if p, ok := ids[n.Parent]; ok {
			if n.Parent.Left == n {
				g.Edge(p, v, "L")
			} else {
				g.Edge(p, v, "R")
			}
		}
		return true
	})
	return g
}
