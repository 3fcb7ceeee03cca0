// Package trace: Step — one numbered snapshot of an algorithm's state —
// and the Recorder that appends Steps while guaranteeing snapshot
// independence.
package trace

// Step is one observable state transition of an algorithm run.
//
// All container fields are independent copies taken at record time.
// Steps are append-only and never mutated once recorded.
type Step struct {
	// Index is the zero-based position of this step in the trace.
	Index int

	// Current is the node the algorithm was processing, or "" when the
	// step has no current node (e.g. a terminal exhaustion step).
	Current string

	// Visited is the visited/closed set at this instant, in the order
	// nodes entered it.
	Visited []string

	// Frontier is the pending-work container at this instant: the queue
	// for BFS (front first), the stack for DFS (top last), the open set
	// for A* (node order). nil for Dijkstra, whose frontier is the
	// distance map below.
	Frontier []string

	// Distances is the distance map (Dijkstra) or f-score map (A*) at
	// this instant. nil for BFS/DFS.
	Distances map[string]float64

	// Path is the reconstructed start→target path, present only once the
	// target has been reached; nil before that and on runs without one.
	Path []string

	// Description is a human-readable account of what changed.
	Description string
}

// Recorder accumulates Steps for one run. Its Snap/SnapMap helpers copy
// the runner's live containers so no recorded Step aliases mutable state.
//
// The zero value is ready to use.
type Recorder struct {
	steps []Step
}

// Snap returns an independent copy of s (nil in, nil out).
// Recorded steps must never share backing arrays with live runner state.
func Snap(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)

	return out
}

// SnapMap returns an independent copy of m (nil in, nil out).
func SnapMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Record appends s to the trace, assigning its Index. The caller is
// expected to have built s's containers via Snap/SnapMap (or from
// storage it will not touch again).
func (r *Recorder) Record(s Step) {
	s.Index = len(r.steps)
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Steps hands over the accumulated trace. The Recorder must not be used
// after this call; the returned slice becomes the immutable trace.
func (r *Recorder) Steps() []Step {
	out := r.steps
	r.steps = nil

	return out
}
