package rbtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes). Red and black nodes are filled with their
// color; sentinel children are drawn as small dots.
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,fontcolor=white];\n")
	if !t.alive() {
		io.WriteString(w, "}\n")
		return
	}
	nodelist, edgelist := "", ""
	t.dotSlot(t.root, &nodelist, &edgelist)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func (t *Tree) dotSlot(n uint32, nodelist, edgelist *string) {
	if n == sentinel {
		return
	}
	*nodelist += fmt.Sprintf("\"%d\" [label=\"%d\" %s];\n", n, t.at(n).key, dotStyles(t.at(n).color))
	t.dotEdge(n, t.at(n).left, "l", nodelist, edgelist)
	t.dotEdge(n, t.at(n).right, "r", nodelist, edgelist)
	t.dotSlot(t.at(n).left, nodelist, edgelist)
	t.dotSlot(t.at(n).right, nodelist, edgelist)
}

func (t *Tree) dotEdge(n, child uint32, side string, nodelist, edgelist *string) {
	if child == sentinel {
		nilid := fmt.Sprintf("nil%s%d", side, n)
		*nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
		*edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", n, nilid)
	} else {
		*edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", n, child)
	}
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,fixedsize=true,width=.1]"
}

func dotStyles(c nodeColor) string {
	s := ",style=filled,shape=circle"
	if c == red {
		s += ",fillcolor=\"#CC2222\""
	} else {
		s += ",fillcolor=black"
	}
	return s
}
