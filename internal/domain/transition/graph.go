// internal/domain/transition/graph.go
package transition

import (
	"sort"
	"strings"

	xerrors "fleetflow-service/internal/pkg/errors"
)

// Graph is a directed graph of legal status transitions for one entity kind.
// It is the single definition consumed by both the lifecycle services and any
// layer that needs to know "legal next states".
type Graph struct {
	entity string
	edges  map[string][]string
}

func NewGraph(entity string, edges map[string][]string) Graph {
	return Graph{entity: entity, edges: edges}
}

// CanTransition reports whether current -> requested is a legal edge.
func (g Graph) CanTransition(current, requested string) bool {
	for _, target := range g.edges[current] {
		if target == requested {
			return true
		}
	}
	return false
}

// AllowedTargets returns the legal next statuses from current, sorted.
func (g Graph) AllowedTargets(current string) []string {
	targets := append([]string(nil), g.edges[current]...)
	sort.Strings(targets)
	return targets
}

// IsTerminal reports whether current has no outbound edges.
func (g Graph) IsTerminal(current string) bool {
	return len(g.edges[current]) == 0
}

// IsKnown reports whether s is a status in the graph at all.
func (g Graph) IsKnown(s string) bool {
	_, ok := g.edges[s]
	return ok
}

// Statuses returns every status in the graph, sorted.
func (g Graph) Statuses() []string {
	out := make([]string, 0, len(g.edges))
	for s := range g.edges {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Validate returns a typed error when current -> requested is illegal. The
// message names the current status and the allowed target set.
func (g Graph) Validate(current, requested string) error {
	if !g.IsKnown(requested) {
		return xerrors.InvalidInputf("%s status must be one of: %s", g.entity, strings.Join(g.Statuses(), ", "))
	}
	if !g.CanTransition(current, requested) {
		return xerrors.InvalidTransitionf(
			"invalid %s status transition: %s -> %s. Allowed: [%s]",
			g.entity, current, requested, strings.Join(g.AllowedTargets(current), ", "),
		)
	}
	return nil
}
