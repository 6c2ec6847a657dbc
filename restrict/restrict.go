// Package restrict parses operator route selections into typed requests.
//
// Two input forms are accepted:
//
//	"via <node>[,<node>…]"  → a route restriction: the set of nodes the loco
//	                          may occupy during planning. Nodes may be
//	                          separated by commas, spaces, or both.
//	"to <node>"             → a single-destination shortest-path request for
//	                          the loco alone (no shunting involved).
//
// Blank input means "unrestricted" and parses to an empty restriction.
// Every referenced node is validated against the yard before anything runs,
// so a typo surfaces here and never as a mysterious unsolvable plan.
package restrict

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kantarellen1/TrainSystemNL/layout"
)

// Sentinel errors for route-selection parsing.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("restrict: graph is nil")

	// ErrSyntax is returned for input matching neither accepted form.
	ErrSyntax = errors.New("restrict: unrecognized route selection")

	// ErrUnknownNode is returned when a referenced node is not in the yard.
	ErrUnknownNode = errors.New("restrict: node not in graph")
)

// Kind discriminates the two request forms.
type Kind int

const (
	// Restriction is a node allow-list for the planner.
	Restriction Kind = iota

	// PathRequest asks for a loco-only shortest path to Dest.
	PathRequest
)

// Request is the parsed operator selection. Nodes is populated for
// Restriction (empty means unrestricted); Dest for PathRequest.
type Request struct {
	Kind  Kind
	Nodes []string
	Dest  string
}

// Parse turns operator input into a Request, validating every node against
// g. Matching is case-insensitive on the keyword, exact on node IDs.
func Parse(input string, g *layout.Graph) (Request, error) {
	if g == nil {
		return Request{}, ErrNilGraph
	}
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Request{Kind: Restriction}, nil
	}

	keyword, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(keyword) {
	case "via":
		nodes := splitNodes(rest)
		if len(nodes) == 0 {
			return Request{}, fmt.Errorf("%w: %q names no nodes", ErrSyntax, input)
		}
		for _, id := range nodes {
			if !g.HasNode(id) {
				return Request{}, fmt.Errorf("%w: %q", ErrUnknownNode, id)
			}
		}
		return Request{Kind: Restriction, Nodes: nodes}, nil

	case "to":
		nodes := splitNodes(rest)
		if len(nodes) != 1 {
			return Request{}, fmt.Errorf("%w: %q must name exactly one destination", ErrSyntax, input)
		}
		if !g.HasNode(nodes[0]) {
			return Request{}, fmt.Errorf("%w: %q", ErrUnknownNode, nodes[0])
		}
		return Request{Kind: PathRequest, Dest: nodes[0]}, nil

	default:
		return Request{}, fmt.Errorf("%w: %q", ErrSyntax, input)
	}
}

// splitNodes tokenizes a node list on commas and whitespace, dropping
// empty tokens.
func splitNodes(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}

	return out
}
