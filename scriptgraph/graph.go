package scriptgraph

import "sort"

// Graph is the node container (spec.md §4.4): a mapping from node id to
// Node, plus a mapping from entry name to node id. The graph owns its
// nodes; an Instance holds only a non-owning reference to one.
type Graph struct {
	nodes   map[uint32]Node
	entries map[string]uint32
	nextID  uint32
}

// NewGraph returns an empty graph ready for AddNode/SetEntry calls.
func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[uint32]Node),
		entries: make(map[string]uint32),
	}
}

// AddNode inserts a node at its own Base().ID, rejecting a collision with an
// existing id (spec.md §4.4). Use NextID to allocate an id for a freshly
// constructed node before inserting it.
func (g *Graph) AddNode(n Node) error {
	id := n.Base().ID
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	g.nodes[id] = n
	if id >= g.nextID {
		g.nextID = id + 1
	}
	return nil
}

// NextID allocates a fresh, strictly increasing node id (spec.md §4.4: "a
// strictly increasing counter is acceptable").
func (g *Graph) NextID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

// RemoveNode deletes a node by id. It does not touch entry names that may
// reference it or other nodes' refs — callers are responsible for graph
// consistency, matching the editor's role in spec.md §4.4.
func (g *Graph) RemoveNode(id uint32) {
	delete(g.nodes, id)
}

// Node looks up a node by id.
func (g *Graph) Node(id uint32) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns all node ids in ascending order, the order Write emits
// records in (spec.md §4.4: "iterate nodes in id order").
func (g *Graph) NodeIDs() []uint32 {
	ids := make([]uint32, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len reports the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// SetEntry registers id under name as a run root. Overwrites any existing
// registration for name (spec.md §4.4: "an entry can be renamed").
func (g *Graph) SetEntry(name string, id uint32) {
	g.entries[name] = id
}

// RemoveEntry unregisters an entry name.
func (g *Graph) RemoveEntry(name string) {
	delete(g.entries, name)
}

// Entry resolves an entry name to a node id.
func (g *Graph) Entry(name string) (uint32, bool) {
	id, ok := g.entries[name]
	return id, ok
}

// EntryNames returns all registered entry names.
func (g *Graph) EntryNames() []string {
	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the structural invariant from spec.md §3: every ref in
// every node (output refs, argument refs) is either UnlinkedID or resolves
// to an existing node id, and every entry name resolves to an existing node.
func (g *Graph) Validate() error {
	for _, id := range g.NodeIDs() {
		n := g.nodes[id]
		base := n.Base()
		for _, out := range base.Outputs {
			if !out.Unlinked() {
				if _, ok := g.nodes[out.ID]; !ok {
					return ErrDanglingRef
				}
			}
		}
		for _, arg := range base.Args {
			if !arg.Unlinked() {
				if _, ok := g.nodes[arg.ID]; !ok {
					return ErrDanglingRef
				}
			}
		}
	}
	for _, id := range g.entries {
		if _, ok := g.nodes[id]; !ok {
			return ErrDanglingRef
		}
	}
	return nil
}
