// Package bfs provides breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gfsrg/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. visited is shared across runs when
// Components reuses one walker for every component.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	w := newWalker(g, o)
	return w.res, w.run(startID)
}

// Connected reports whether g is connected. A graph with at most one vertex is connected.
// Complexity: O(V + E log Δ).
func Connected(ctx context.Context, g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) <= 1 {
		return true, nil
	}

	res, err := BFS(g, ids[0], WithContext(ctx))
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(ids), nil
}

// Components returns the connected components of g, each in BFS visit order.
// Components are ordered by their first vertex's position in g.Vertices().
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	WithContext(ctx)(&o)
	w := newWalker(g, o)

	var comps [][]string
	for _, id := range g.Vertices() {
		if w.visited[id] {
			continue
		}
		start := len(w.res.Order)
		if err := w.run(id); err != nil {
			return nil, err
		}
		comp := make([]string, len(w.res.Order)-start)
		copy(comp, w.res.Order[start:])
		comps = append(comps, comp)
	}

	return comps, nil
}

func newWalker(g *core.Graph, o BFSOptions) *walker {
	n := g.VertexCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// run seeds the queue with start and processes it until empty, error, or cancellation.
func (w *walker) run(start string) error {
	w.enqueue(start, 0, "")
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueue marks id visited at depth d, records its parent, and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// enqueueNeighbors enqueues each unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
	return nil
}
