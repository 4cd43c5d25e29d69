package aliasgraph

import (
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	white = iota
	gray
	black
)

// Graph holds pending alias declarations in declaration order.
// It is not safe for concurrent use.
type Graph struct {
	names   []string
	targets map[string][]string
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{targets: make(map[string][]string)}
}

// Add records alias name with its targets. The targets slice is copied.
func (g *Graph) Add(name string, targets []string) error {
	if _, exists := g.targets[name]; exists {
		return errors.Wrapf(ErrDuplicate, "%q", name)
	}
	if len(targets) == 0 {
		return errors.Wrapf(ErrNoTargets, "%q", name)
	}
	g.names = append(g.names, name)
	g.targets[name] = append([]string(nil), targets...)
	return nil
}

// Has reports whether name is a pending alias.
func (g *Graph) Has(name string) bool {
	_, ok := g.targets[name]
	return ok
}

// Len returns the number of declared aliases.
func (g *Graph) Len() int {
	return len(g.names)
}

// Targets returns a copy of the targets declared for name.
func (g *Graph) Targets(name string) []string {
	return append([]string(nil), g.targets[name]...)
}

// Order returns every alias so that each one comes after the aliases it
// references. Traversal starts from aliases in declaration order and follows
// targets in list order, so the result is deterministic.
func (g *Graph) Order() ([]string, error) {
	marks := make(map[string]int, len(g.names))
	order := make([]string, 0, len(g.names))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch marks[name] {
		case black:
			return nil
		case gray:
			start := 0
			for i, n := range path {
				if n == name {
					start = i
					break
				}
			}
			cycle := append(append([]string(nil), path[start:]...), name)
			return errors.Wrapf(ErrCycle, "%s", strings.Join(cycle, " -> "))
		}

		marks[name] = gray
		path = append(path, name)
		for _, target := range g.targets[name] {
			if target == name || !g.Has(target) {
				continue
			}
			if err := visit(target); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[name] = black
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Resolve computes every alias mask as the union of its targets and stores it
// in known, which must already hold the elementary and reserved entries.
// It returns the order in which aliases were resolved. On error known may hold
// a subset of the aliases and must be discarded by the caller.
func (g *Graph) Resolve(known map[string]uint64) ([]string, error) {
	order, err := g.Order()
	if err != nil {
		return nil, err
	}

	for _, name := range order {
		var mask uint64
		for _, target := range g.targets[name] {
			v, ok := known[target]
			if !ok {
				return nil, errors.Wrapf(ErrUnknownTarget, "alias %q references %q", name, target)
			}
			mask |= v
		}
		known[name] = mask
	}
	return order, nil
}
