package moveset

import (
	"fmt"
	"slices"
	"sort"
)

const (
	MinDistance = 0
	MaxDistance = 10
	MinControl  = 0.0
	MaxControl  = 10.0
)

// SubTypePlaceholder fills sub_type when the author has not classified a move.
var SubTypePlaceholder = []string{"None"}

// @name MoveNode
type MoveNode struct {
	Distance int      `json:"distance"`
	NumGrips int      `json:"num_grips"`
	Control  float64  `json:"control"`
	Path     string   `json:"path"`
	Parents  []string `json:"parents"`
	Children []string `json:"children"`
	Area     []string `json:"area"`
	Type     []string `json:"type"`
	SubType  []string `json:"sub_type"`
}

// Moveset maps a technique name to its node. Keys are case-sensitive.
type Moveset map[string]MoveNode

type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ProblemKind string

const (
	ProblemRange      ProblemKind = "range"
	ProblemDangling   ProblemKind = "dangling"
	ProblemAsymmetric ProblemKind = "asymmetric"
)

type Problem struct {
	Move    string      `json:"move"`
	Kind    ProblemKind `json:"kind"`
	Message string      `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Move, p.Kind, p.Message)
}

// Names returns the move names in lexical order.
func (m Moveset) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Edges returns every name->child transition in deterministic order. Children
// that are not keys of the moveset still produce an edge.
func (m Moveset) Edges() []Edge {
	var edges []Edge
	for _, name := range m.Names() {
		for _, child := range m[name].Children {
			edges = append(edges, Edge{From: name, To: child})
		}
	}
	return edges
}

// Problems checks a single node's scalar fields.
func (n MoveNode) Problems(name string) []Problem {
	var out []Problem
	if n.Distance < MinDistance || n.Distance > MaxDistance {
		out = append(out, Problem{Move: name, Kind: ProblemRange,
			Message: fmt.Sprintf("distance %d outside %d-%d", n.Distance, MinDistance, MaxDistance)})
	}
	if n.NumGrips < 0 {
		out = append(out, Problem{Move: name, Kind: ProblemRange,
			Message: fmt.Sprintf("num_grips %d is negative", n.NumGrips)})
	}
	if n.Control < MinControl || n.Control > MaxControl {
		out = append(out, Problem{Move: name, Kind: ProblemRange,
			Message: fmt.Sprintf("control %g outside %g-%g", n.Control, MinControl, MaxControl)})
	}
	return out
}

// Problems reports range violations, references to unknown moves and
// parent/child links recorded on one side only. It never modifies the
// moveset: the document format itself enforces none of these.
func (m Moveset) Problems() []Problem {
	var out []Problem
	for _, name := range m.Names() {
		node := m[name]
		out = append(out, node.Problems(name)...)

		for _, parent := range node.Parents {
			p, ok := m[parent]
			if !ok {
				out = append(out, Problem{Move: name, Kind: ProblemDangling,
					Message: fmt.Sprintf("parent %q is not in the moveset", parent)})
				continue
			}
			if !slices.Contains(p.Children, name) {
				out = append(out, Problem{Move: name, Kind: ProblemAsymmetric,
					Message: fmt.Sprintf("parent %q does not list it as a child", parent)})
			}
		}

		for _, child := range node.Children {
			c, ok := m[child]
			if !ok {
				out = append(out, Problem{Move: name, Kind: ProblemDangling,
					Message: fmt.Sprintf("child %q is not in the moveset", child)})
				continue
			}
			if !slices.Contains(c.Parents, name) {
				out = append(out, Problem{Move: name, Kind: ProblemAsymmetric,
					Message: fmt.Sprintf("child %q does not list it as a parent", child)})
			}
		}
	}
	return out
}
