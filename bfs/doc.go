// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances, parent links and visit order, plus the connectivity
// queries the property checks are built on.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance from
//     start and returns a BFSResult {Order, Depth, Parent}.
//   - Connected(ctx, g) reports whether every vertex is reachable from the
//     first vertex. The empty graph and a single vertex are connected.
//   - Components(ctx, g) partitions V into connected components, each listed in
//     visit order, components ordered by their first vertex in g.Vertices().
//
// Determinism
//
//	core.NeighborIDs returns sorted IDs and BFS enqueues them in that order,
//	so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log Δ)   (neighbour lists are sorted per visit)
//   - Memory: O(V)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d):    stop exploring beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn):    hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for a visited vertex.
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
