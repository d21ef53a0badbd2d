// ABOUTME: Small compiled state graph that threads State through named nodes
// ABOUTME: Supports plain and conditional edges, sequential execution and Mermaid output
package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/harper/chatroute/internal/models"
)

// Reserved node names marking where a run begins and ends
const (
	Start = "__start__"
	End   = "__end__"
)

// DefaultMaxSteps bounds a single Invoke
const DefaultMaxSteps = 25

var (
	ErrStepLimit     = errors.New("graph step limit reached")
	ErrUnknownBranch = errors.New("selector returned unknown branch")
)

// NodeFunc is one step of the graph
type NodeFunc func(ctx context.Context, s models.State) (models.State, error)

// Selector picks a branch key from the state after a node runs.
// It must be pure.
type Selector func(s models.State) string

type transition struct {
	to       string
	selector Selector
	targets  map[string]string
}

func (t transition) conditional() bool {
	return t.selector != nil
}

// branchKeys returns the conditional targets' keys in sorted order
func (t transition) branchKeys() []string {
	keys := make([]string, 0, len(t.targets))
	for k := range t.targets {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Builder collects nodes and edges before Compile
type Builder struct {
	nodes map[string]NodeFunc
	order []string
	edges map[string]transition
	errs  []error
}

// NewBuilder creates an empty graph builder
func NewBuilder() *Builder {
	return &Builder{
		nodes: make(map[string]NodeFunc),
		edges: make(map[string]transition),
	}
}

// AddNode registers a named step
func (b *Builder) AddNode(name string, fn NodeFunc) *Builder {
	switch {
	case name == "" || name == Start || name == End:
		b.errs = append(b.errs, fmt.Errorf("invalid node name %q", name))
	case fn == nil:
		b.errs = append(b.errs, fmt.Errorf("node %q has no function", name))
	case b.nodes[name] != nil:
		b.errs = append(b.errs, fmt.Errorf("duplicate node %q", name))
	default:
		b.nodes[name] = fn
		b.order = append(b.order, name)
	}
	return b
}

// AddEdge adds an unconditional transition. An edge from Start sets the entry node.
func (b *Builder) AddEdge(from, to string) *Builder {
	return b.setTransition(from, transition{to: to})
}

// AddConditionalEdges routes from a node to one of targets, keyed by selector's result
func (b *Builder) AddConditionalEdges(from string, selector Selector, targets map[string]string) *Builder {
	if selector == nil || len(targets) == 0 {
		b.errs = append(b.errs, fmt.Errorf("conditional edges from %q need a selector and targets", from))
		return b
	}
	copied := make(map[string]string, len(targets))
	for k, v := range targets {
		copied[k] = v
	}
	return b.setTransition(from, transition{selector: selector, targets: copied})
}

func (b *Builder) setTransition(from string, t transition) *Builder {
	if from == End {
		b.errs = append(b.errs, errors.New("no edges may leave __end__"))
		return b
	}
	if _, exists := b.edges[from]; exists {
		b.errs = append(b.errs, fmt.Errorf("node %q already has an outgoing transition", from))
		return b
	}
	b.edges[from] = t
	return b
}

// Compile validates the wiring and returns an immutable Graph
func (b *Builder) Compile() (*Graph, error) {
	errs := slices.Clone(b.errs)

	start, ok := b.edges[Start]
	switch {
	case !ok:
		errs = append(errs, errors.New("graph has no entry edge from __start__"))
	case start.conditional():
		errs = append(errs, errors.New("entry edge from __start__ must be unconditional"))
	}

	for from, t := range b.edges {
		if from != Start && b.nodes[from] == nil {
			errs = append(errs, fmt.Errorf("edge from unknown node %q", from))
		}
		targets := []string{t.to}
		if t.conditional() {
			targets = targets[:0]
			for _, to := range t.targets {
				targets = append(targets, to)
			}
		}
		for _, to := range targets {
			if to != End && b.nodes[to] == nil {
				errs = append(errs, fmt.Errorf("edge %q -> unknown node %q", from, to))
			}
		}
	}
	for _, name := range b.order {
		if _, ok := b.edges[name]; !ok {
			errs = append(errs, fmt.Errorf("node %q has no outgoing transition", name))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("compile graph: %w", errors.Join(errs...))
	}

	g := &Graph{
		nodes:    make(map[string]NodeFunc, len(b.nodes)),
		order:    slices.Clone(b.order),
		edges:    make(map[string]transition, len(b.edges)),
		maxSteps: DefaultMaxSteps,
	}
	for k, v := range b.nodes {
		g.nodes[k] = v
	}
	for k, v := range b.edges {
		g.edges[k] = v
	}
	return g, nil
}

// Graph is a compiled, read-only step graph. It is safe to reuse across turns.
type Graph struct {
	nodes    map[string]NodeFunc
	order    []string
	edges    map[string]transition
	maxSteps int
}

// Invoke runs the graph from the entry node until End, one node at a time
func (g *Graph) Invoke(ctx context.Context, s models.State) (models.State, error) {
	current := g.edges[Start].to

	for step := 0; current != End; step++ {
		if step >= g.maxSteps {
			return s, fmt.Errorf("%w (%d) at node %q", ErrStepLimit, g.maxSteps, current)
		}
		if err := ctx.Err(); err != nil {
			return s, err
		}

		next, err := g.nodes[current](ctx, s)
		if err != nil {
			return s, fmt.Errorf("node %s: %w", current, err)
		}
		s = next

		current, err = g.next(current, s)
		if err != nil {
			return s, err
		}
	}
	return s, nil
}

func (g *Graph) next(from string, s models.State) (string, error) {
	t := g.edges[from]
	if !t.conditional() {
		return t.to, nil
	}
	key := t.selector(s)
	to, ok := t.targets[key]
	if !ok {
		return "", fmt.Errorf("%w: %q from node %q", ErrUnknownBranch, key, from)
	}
	return to, nil
}

// Nodes returns the node names in registration order
func (g *Graph) Nodes() []string {
	return slices.Clone(g.order)
}

// Mermaid renders the graph as a Mermaid flowchart
func (g *Graph) Mermaid() string {
	var sb strings.Builder
	sb.WriteString("flowchart TD\n")
	fmt.Fprintf(&sb, "\t%s([%s])\n", Start, Start)
	for _, name := range g.order {
		fmt.Fprintf(&sb, "\t%s(%s)\n", name, name)
	}
	fmt.Fprintf(&sb, "\t%s([%s])\n", End, End)

	for _, from := range append([]string{Start}, g.order...) {
		t := g.edges[from]
		if !t.conditional() {
			fmt.Fprintf(&sb, "\t%s --> %s\n", from, t.to)
			continue
		}
		for _, key := range t.branchKeys() {
			fmt.Fprintf(&sb, "\t%s -.->|%s| %s\n", from, key, t.targets[key])
		}
	}
	return sb.String()
}
