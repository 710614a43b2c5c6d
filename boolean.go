// The `boolean.go` file implements plane2d's convex polygon Boolean operations: the direct
// convex-intersection construction (spec §4.9) and the general subdivision-and-reassembly engine
// shared by union and difference (spec §4.10).
//
// The edge-subdivision step (§4.10 Step 3) keeps each polygon edge's collected intersection
// parameters in a github.com/emirpasic/gods/trees/redblacktree.Tree keyed by parameter value,
// giving sorted, deduplicated traversal directly from the tree's in-order walk. The loop tracer
// (§4.10 Step 6) keeps each vertex's outgoing edges in a github.com/google/btree.BTreeG ordered
// by angle and walks it, skipping used edges, so the next edge of a loop is always the leftmost
// unused turn.
package plane2d

import (
	"math"

	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"

	"github.com/planekit/plane2d/internal/diag"
	"github.com/planekit/plane2d/options"
	"github.com/planekit/plane2d/scalar"
)

// angularEpsilon is the small positive floor the loop tracer (§4.10 Step 6) uses so the
// left-most-next rule never selects a zero-delta (immediate-reversal) turn.
const angularEpsilon = 1e-12

// BooleanResult is the outcome of a Boolean operation: every outer ring is CCW, every hole is
// CW, and every hole lies strictly inside exactly one outer (spec §3).
type BooleanResult[S scalar.Number[S]] struct {
	Outers []Polygon[S]
	Holes  []Polygon[S]
}

// IntersectConvexPolygons computes the intersection of two convex polygons, following spec §4.9.
//
// A and B are normalized (CCW, deduplicated) first. The candidate vertex pool is the union of A's
// vertices lying inside or on B, B's vertices lying inside or on A, and every edge-edge
// intersection point between A and B, deduplicated under pointsEqual. If fewer than three
// candidates survive, the result is empty (the intersection is empty or degenerate). Otherwise
// the candidate pool's convex hull, cleaned up, is the result — correct because the intersection
// of two convex sets is itself convex.
func IntersectConvexPolygons[S scalar.Number[S]](a, b Polygon[S], opts ...options.Option[S]) Polygon[S] {
	o := options.Apply(opts...)
	eps := o.Epsilon

	A := Polygon[S]{vertices: normalizePolygon(a.vertices, eps)}
	B := Polygon[S]{vertices: normalizePolygon(b.vertices, eps)}
	if len(A.vertices) < 3 || len(B.vertices) < 3 {
		return Polygon[S]{}
	}

	var candidates []Point[S]
	addCandidate := func(p Point[S]) {
		for _, c := range candidates {
			if pointsEqual(c, p, eps) {
				return
			}
		}
		candidates = append(candidates, p)
	}

	for _, v := range A.vertices {
		if loc, _ := LocatePointInConvexPolygon(B, v, options.WithEpsilon(eps)); loc != PointOutside {
			addCandidate(v)
		}
	}
	for _, v := range B.vertices {
		if loc, _ := LocatePointInConvexPolygon(A, v, options.WithEpsilon(eps)); loc != PointOutside {
			addCandidate(v)
		}
	}
	for _, ea := range A.edges() {
		for _, eb := range B.edges() {
			res := IntersectSegments(ea, eb, options.WithEpsilon(eps))
			switch res.Type {
			case IntersectionPoint:
				addCandidate(res.Point)
			case IntersectionOverlap:
				addCandidate(res.Overlap.start)
				addCandidate(res.Overlap.end)
			}
		}
	}

	if len(candidates) < 3 {
		return Polygon[S]{}
	}
	return ComputeConvexHull(candidates, options.WithEpsilon(eps))
}

// BooleanUnion computes the union of convex polygons a and b, following spec §4.10 with
// OP = union.
func BooleanUnion[S scalar.Number[S]](a, b Polygon[S], opts ...options.Option[S]) BooleanResult[S] {
	return booleanOp(a, b, opUnion, opts...)
}

// BooleanDifference computes a \ b for convex polygons a and b, following spec §4.10 with
// OP = difference.
func BooleanDifference[S scalar.Number[S]](a, b Polygon[S], opts ...options.Option[S]) BooleanResult[S] {
	return booleanOp(a, b, opDifference, opts...)
}

type booleanOpKind uint8

const (
	opUnion booleanOpKind = iota
	opDifference
)

// booleanOp is the shared engine behind BooleanUnion and BooleanDifference (spec §4.10).
func booleanOp[S scalar.Number[S]](a, b Polygon[S], op booleanOpKind, opts ...options.Option[S]) BooleanResult[S] {
	o := options.Apply(opts...)
	eps := o.Epsilon

	A := cleanupPolygon(a.vertices, eps)
	B := cleanupPolygon(b.vertices, eps)

	// Step 1: short-circuits.
	if len(A.vertices) == 0 {
		if op == opUnion {
			return BooleanResult[S]{Outers: nonEmptyPolygons(B)}
		}
		return BooleanResult[S]{}
	}
	if len(B.vertices) == 0 {
		if op == opUnion {
			return BooleanResult[S]{Outers: nonEmptyPolygons(A)}
		}
		return BooleanResult[S]{Outers: nonEmptyPolygons(A)}
	}

	if polygonContains(A, B, eps) {
		if op == opUnion {
			return BooleanResult[S]{Outers: nonEmptyPolygons(A)}
		}
		hole := Polygon[S]{vertices: reversedCopy(B.vertices)}
		return BooleanResult[S]{Outers: nonEmptyPolygons(A), Holes: nonEmptyPolygons(hole)}
	}
	if polygonContains(B, A, eps) {
		if op == opUnion {
			return BooleanResult[S]{Outers: nonEmptyPolygons(B)}
		}
		return BooleanResult[S]{}
	}
	if polygonsDisjoint(A, B, eps) {
		if op == opUnion {
			return BooleanResult[S]{Outers: nonEmptyPolygons(A, B)}
		}
		return BooleanResult[S]{Outers: nonEmptyPolygons(A)}
	}

	diag.Debugf("boolean: subdivision path entered, A has %d vertices, B has %d", len(A.vertices), len(B.vertices))

	// Step 2: collect all edge-edge intersections between A and B.
	aParams, bParams := collectEdgeIntersections(A, B, eps)

	// Step 3: subdivide each polygon's own boundary at its own intersection parameters.
	aPieces := subdivideBoundary(A, aParams, eps)
	bPieces := subdivideBoundary(B, bParams, eps)

	// Step 4: filter edge pieces by midpoint classification against the other polygon.
	var kept []Segment[S]
	for _, seg := range aPieces {
		mid := seg.Midpoint()
		loc, _ := LocatePointInConvexPolygon(B, mid, options.WithEpsilon(eps))
		if loc == PointOutside {
			kept = append(kept, seg)
		}
	}
	for _, seg := range bPieces {
		mid := seg.Midpoint()
		loc, _ := LocatePointInConvexPolygon(A, mid, options.WithEpsilon(eps))
		switch op {
		case opUnion:
			if loc == PointOutside {
				kept = append(kept, seg)
			}
		case opDifference:
			if loc == PointInside {
				kept = append(kept, NewSegment(seg.end, seg.start))
			}
		}
	}

	// Step 5: duplicate-edge pruning.
	kept = pruneDuplicateEdges(kept, eps)

	// Step 6: reassemble loops via the angle-ordered loop tracer.
	loops := traceLoops(kept, eps)

	// Step 7: classify loops into outers and holes, attributing each hole to its containing outer.
	return classifyLoops(loops, eps)
}

// nonEmptyPolygons returns the subset of the given polygons with at least three vertices.
func nonEmptyPolygons[S scalar.Number[S]](polys ...Polygon[S]) []Polygon[S] {
	var out []Polygon[S]
	for _, p := range polys {
		if len(p.vertices) >= 3 {
			out = append(out, p)
		}
	}
	return out
}

// reversedCopy returns a reversed copy of pts, leaving pts untouched.
func reversedCopy[S scalar.Number[S]](pts []Point[S]) []Point[S] {
	out := make([]Point[S], len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// polygonContains reports whether every vertex of inner lies inside or on outer (spec §4.10's
// containment test).
func polygonContains[S scalar.Number[S]](outer, inner Polygon[S], eps S) bool {
	for _, v := range inner.vertices {
		loc, _ := LocatePointInConvexPolygon(outer, v, options.WithEpsilon(eps))
		if loc == PointOutside {
			return false
		}
	}
	return true
}

// polygonsDisjoint reports whether no vertex of either polygon lies inside or on the other and
// no edge of either crosses the other (spec §4.10's disjoint test).
func polygonsDisjoint[S scalar.Number[S]](a, b Polygon[S], eps S) bool {
	for _, v := range a.vertices {
		if loc, _ := LocatePointInConvexPolygon(b, v, options.WithEpsilon(eps)); loc != PointOutside {
			return false
		}
	}
	for _, v := range b.vertices {
		if loc, _ := LocatePointInConvexPolygon(a, v, options.WithEpsilon(eps)); loc != PointOutside {
			return false
		}
	}
	for _, ea := range a.edges() {
		for _, eb := range b.edges() {
			if IntersectSegments(ea, eb, options.WithEpsilon(eps)).Type != IntersectionNone {
				return false
			}
		}
	}
	return true
}

// edgeIntersectionParams maps an edge index to the list of parameter values (in (0, 1)) at which
// the other polygon crosses it, in the order they were found; subdivideBoundary sorts and
// deduplicates them.
type edgeIntersectionParams[S scalar.Number[S]] map[int][]S

// collectEdgeIntersections implements spec §4.10 Step 2: for every pair of edges between A and
// B, records the intersection parameter along each polygon's own edge.
func collectEdgeIntersections[S scalar.Number[S]](a, b Polygon[S], eps S) (aParams, bParams edgeIntersectionParams[S]) {
	aEdges := a.edges()
	bEdges := b.edges()
	aParams = make(edgeIntersectionParams[S])
	bParams = make(edgeIntersectionParams[S])

	record := func(m edgeIntersectionParams[S], edgeIdx int, seg Segment[S], p Point[S]) {
		t := paramOnSegment(seg, p)
		if t.Sign() > 0 && t.Cmp(scalar.One[S]()) < 0 {
			m[edgeIdx] = append(m[edgeIdx], t)
		}
	}

	for i, ea := range aEdges {
		for j, eb := range bEdges {
			res := IntersectSegments(ea, eb, options.WithEpsilon(eps))
			switch res.Type {
			case IntersectionPoint:
				record(aParams, i, ea, res.Point)
				record(bParams, j, eb, res.Point)
			case IntersectionOverlap:
				record(aParams, i, ea, res.Overlap.start)
				record(aParams, i, ea, res.Overlap.end)
				record(bParams, j, eb, res.Overlap.start)
				record(bParams, j, eb, res.Overlap.end)
			}
		}
	}
	return aParams, bParams
}

// paramOnSegment returns t such that p = seg.start + t*(seg.end-seg.start), assuming p lies on
// seg's line.
func paramOnSegment[S scalar.Number[S]](seg Segment[S], p Point[S]) S {
	v := seg.Vector()
	vv := v.SquaredLength()
	if vv.IsZero() {
		return scalar.Zero[S]()
	}
	return p.Sub(seg.start).DotProduct(v).Div(vv)
}

// paramComparator returns a gods comparator over values of scalar family S, delegating to
// Number.Cmp.
func paramComparator[S scalar.Number[S]](a, b interface{}) int {
	return a.(S).Cmp(b.(S))
}

// subdivideBoundary implements spec §4.10 Step 3: for each edge, sorts its intersection
// parameters (via a redblacktree.Tree keyed by parameter value, which yields sorted,
// deduplicated traversal for free), then emits the piecewise segments in the edge's original
// direction.
func subdivideBoundary[S scalar.Number[S]](p Polygon[S], params edgeIntersectionParams[S], eps S) []Segment[S] {
	var out []Segment[S]
	for i, edge := range p.edges() {
		ts := params[i]
		if len(ts) == 0 {
			out = append(out, edge)
			continue
		}

		tree := rbt.NewWith(paramComparator[S])
		for _, t := range ts {
			tree.Put(t, nil)
		}

		cur := edge.start
		for _, key := range tree.Keys() {
			t := key.(S)
			brk := edge.start.Add(edge.Vector().Scale(t))
			if pointsEqual(cur, brk, eps) {
				continue
			}
			out = append(out, NewSegment(cur, brk))
			cur = brk
		}
		if !pointsEqual(cur, edge.end, eps) {
			out = append(out, NewSegment(cur, edge.end))
		}
	}
	return out
}

// edgeKey canonicalizes a segment as an undirected edge, keyed by the lex-ordered string form of
// its (unordered) endpoints, for spec §4.10 Step 5's duplicate-edge pruning.
func edgeKey[S scalar.Number[S]](seg Segment[S]) string {
	s, e := seg.start.String(), seg.end.String()
	if s > e {
		s, e = e, s
	}
	return s + "|" + e
}

// pruneDuplicateEdges implements spec §4.10 Step 5: groups surviving segments into undirected
// edges and drops any whose multiplicity is not exactly 1.
func pruneDuplicateEdges[S scalar.Number[S]](segs []Segment[S], eps S) []Segment[S] {
	counts := make(map[string]int)
	for _, s := range segs {
		counts[edgeKey(s)]++
	}
	var out []Segment[S]
	for _, s := range segs {
		if s.IsDegenerate(options.WithEpsilon(eps)) {
			continue
		}
		if counts[edgeKey(s)] == 1 {
			out = append(out, s)
		}
	}
	return out
}

// angleItem is a btree.BTreeG element ordering a vertex's outgoing edge by its direction angle.
type angleItem struct {
	angle   float64
	edgeIdx int
}

func angleItemLess(a, b angleItem) bool {
	if a.angle != b.angle {
		return a.angle < b.angle
	}
	return a.edgeIdx < b.edgeIdx
}

// vertexAngle returns the direction angle (atan2, normalized to [0, 2π)) of the vector from a to
// b, bridging through Number.Float64() since the loop tracer's angular sort is inherently a
// floating-point operation regardless of the caller's scalar family.
func vertexAngle[S scalar.Number[S]](a, b Point[S]) float64 {
	dx := b.x.Sub(a.x).Float64()
	dy := b.y.Sub(a.y).Float64()
	ang := math.Atan2(dy, dx)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return ang
}

// traceLoops implements spec §4.10 Step 6: builds a directed multigraph of the surviving
// segments keyed by tolerance-merged endpoint identity, then repeatedly traces closed loops using
// the "left-most next" rule — at each step, among unused outgoing edges at the current head,
// picking the one whose angular delta from the incoming edge's angle is smallest, with a small
// positive floor to skip immediate reversal.
func traceLoops[S scalar.Number[S]](segs []Segment[S], eps S) [][]Point[S] {
	n := len(segs)
	if n == 0 {
		return nil
	}

	// Merge tolerance-equal endpoints into canonical vertex indices.
	var verts []Point[S]
	vertexOf := func(p Point[S]) int {
		for i, v := range verts {
			if pointsEqual(v, p, eps) {
				return i
			}
		}
		verts = append(verts, p)
		return len(verts) - 1
	}
	from := make([]int, n)
	to := make([]int, n)
	for i, s := range segs {
		from[i] = vertexOf(s.start)
		to[i] = vertexOf(s.end)
	}

	outgoing := make(map[int]*btree.BTreeG[angleItem])
	for i := range segs {
		tr, ok := outgoing[from[i]]
		if !ok {
			tr = btree.NewG(2, angleItemLess)
			outgoing[from[i]] = tr
		}
		tr.ReplaceOrInsert(angleItem{angle: vertexAngle(segs[i].start, segs[i].end), edgeIdx: i})
	}

	used := make([]bool, n)
	var loops [][]Point[S]

	for start := 0; start < n; start++ {
		if used[start] {
			continue
		}
		loopEdges := []int{start}
		used[start] = true
		head := to[start]
		prevAngle := vertexAngle(segs[start].start, segs[start].end)
		startVertex := from[start]

		closed := false
		for head != startVertex {
			tr, ok := outgoing[head]
			if !ok {
				break
			}
			var chosenIdx = -1
			var chosenAngle float64
			var bestDelta = math.Inf(1)
			tr.Ascend(func(item angleItem) bool {
				if used[item.edgeIdx] {
					return true
				}
				delta := math.Mod(item.angle-prevAngle+2*math.Pi, 2*math.Pi)
				if delta < angularEpsilon {
					delta += 2 * math.Pi
				}
				if delta < bestDelta {
					bestDelta = delta
					chosenIdx = item.edgeIdx
					chosenAngle = item.angle
				}
				return true
			})
			if chosenIdx == -1 {
				break
			}
			used[chosenIdx] = true
			loopEdges = append(loopEdges, chosenIdx)
			prevAngle = chosenAngle
			head = to[chosenIdx]
			if head == startVertex {
				closed = true
			}
		}

		if !closed {
			diag.Debugf("boolean: loop trace starting at edge %d aborted after %d edges", start, len(loopEdges))
			for _, e := range loopEdges {
				used[e] = false
			}
			used[start] = true // permanently skip an edge that can never close a loop
			continue
		}

		pts := make([]Point[S], 0, len(loopEdges))
		for _, e := range loopEdges {
			pts = append(pts, segs[e].start)
		}
		loops = append(loops, pts)
	}

	return loops
}

// classifyLoops implements spec §4.10 Step 7: cleans up each closed loop, classifies it as an
// outer ring (positive raw signed area) or a hole (negative), and attributes each hole to the
// unique outer containing its first vertex. With at most two input polygons there is rarely more
// than one outer, so attribution only does real work in the rarer multi-outer case (e.g. a
// difference that splits A's boundary around a hole touching its edge).
func classifyLoops[S scalar.Number[S]](loops [][]Point[S], eps S) BooleanResult[S] {
	var result BooleanResult[S]
	var rawHoles [][]Point[S]

	for _, raw := range loops {
		if signedArea(raw).Sign() >= 0 {
			if cleaned := cleanupPolygon(raw, eps); len(cleaned.vertices) >= 3 {
				result.Outers = append(result.Outers, cleaned)
			}
			continue
		}
		rawHoles = append(rawHoles, raw)
	}

	for _, raw := range rawHoles {
		reversedRaw := reversedCopy(raw)
		cleanedCCW := cleanupPolygon(reversedRaw, eps)
		if len(cleanedCCW.vertices) < 3 {
			continue
		}
		hole := Polygon[S]{vertices: reversedCopy(cleanedCCW.vertices)}
		result.Holes = append(result.Holes, hole)
	}

	if len(result.Outers) > 1 && len(result.Holes) > 0 {
		result.Holes = attributeHolesToOuters(result.Outers, result.Holes)
	}
	return result
}

// attributeHolesToOuters applies spec §4.10 Step 7's attribution rule: a hole is kept when its
// first vertex lies inside or on the boundary of at least one outer, using the general
// winding-number test since a Boolean difference's outer ring need not be convex even when both
// inputs are. It does not check that the hole lies strictly inside, nor that only one outer
// contains it. A hole that cannot be attributed to any outer is a bug elsewhere in the pipeline
// (a loop misclassified as a hole); it is dropped rather than returned as an orphan, and the drop
// is logged for diagnosis.
func attributeHolesToOuters[S scalar.Number[S]](outers, holes []Polygon[S]) []Polygon[S] {
	kept := make([]Polygon[S], 0, len(holes))
	for _, hole := range holes {
		if hole.Len() == 0 {
			continue
		}
		first := hole.Vertices()[0]
		attributed := false
		for _, outer := range outers {
			if loc, err := LocatePointInPolygon(outer, first); err == nil && loc != PointOutside {
				attributed = true
				break
			}
		}
		if !attributed {
			diag.Debugf("boolean: dropping orphan hole with first vertex %v (no containing outer)", first)
			continue
		}
		kept = append(kept, hole)
	}
	return kept
}
