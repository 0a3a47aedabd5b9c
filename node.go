package earcut

// node is one vertex occurrence in a ring. All links are arena indices,
// never pointers; index 0 is the null sentinel and is never a live node.
//
// Ported from the pointer-linked node in rclancey-go-earcut's earcut.go,
// reshaped into the index-based arena design used by earcutr (see
// original_source/src/lib.rs LinkedListNode) so that removed nodes stay
// readable through stale prev/next links held by other nodes.
type node struct {
	vi      int // index into the flat input vertex array
	x, y    float64
	prev    int
	next    int
	z       int32
	zprev   int
	znext   int
	steiner bool
	idx     int // self-reference, set once at insertion
}

// nullIndex is the reserved sentinel arena index. Its z field doubles as a
// branchless walk guard in isEarHashed; this is safe only because a single
// arena (and therefore its sentinel) is never shared across concurrent
// triangulations (see §5 of the spec: one arena per call, no shared state).
const nullIndex = 0

// arena is the append-only, growable node store backing one triangulation.
// It owns the bounding box and inverse hash scale used by the z-order
// index once hashing is enabled (see zorder_index.go).
type arena struct {
	nodes   []node
	minx    float64
	miny    float64
	maxx    float64
	maxy    float64
	invsize float64
	useHash bool

	// assertFinite enables a debug-time panic in filterPoints on
	// non-finite coordinates (see options.go WithAssertFinite); false by
	// default, matching the spec's release behavior.
	assertFinite bool

	// debugHook, when non-nil, is called by earcutLinked every time the
	// main ear-slicing loop escalates past a recovery pass, with the
	// pass number being escalated to and a DumpRing rendering of the
	// ring at that point (see options.go WithDebugHook).
	debugHook func(pass int, dump string)
}

func newArena(sizeHint int) *arena {
	a := &arena{
		nodes:   make([]node, 1, sizeHint+1),
		useHash: true,
	}
	a.nodes[nullIndex] = node{idx: nullIndex}
	return a
}

func (a *arena) node(i int) *node {
	return &a.nodes[i]
}

// insert appends a new node carrying vertex index vi and coordinates
// (x, y). If last is nullIndex the new node becomes a one-element self
// loop; otherwise it is spliced in immediately after last.
func (a *arena) insert(vi int, x, y float64, last int) int {
	i := len(a.nodes)
	n := node{vi: vi, x: x, y: y, idx: i}
	if last == nullIndex {
		n.prev = i
		n.next = i
	} else {
		n.next = a.nodes[last].next
		n.prev = last
		a.nodes[a.nodes[last].next].prev = i
		a.nodes[last].next = i
	}
	a.nodes = append(a.nodes, n)
	return i
}

// remove unlinks node i from its ring and from the z-order list. The
// node's own fields are left intact: cureLocalIntersections depends on
// being able to read a removed node's stale next link to reach its
// already-severed neighbor.
func (a *arena) remove(i int) {
	n := a.nodes[i]
	a.nodes[n.prev].next = n.next
	a.nodes[n.next].prev = n.prev
	// Writes land on the sentinel, not a live node, when z-links are
	// still nullIndex (z-order not yet computed); the sentinel absorbs
	// them harmlessly, same as earcutr's unconditional write.
	a.nodes[n.zprev].znext = n.znext
	a.nodes[n.znext].zprev = n.zprev
}
