package ggicon

import "fmt"

// Status is the state of one icon size within a run.
type Status int

const (
	// StatusPending means the size has not been processed yet.
	StatusPending Status = iota

	// StatusDone means the icon was written.
	StatusDone

	// StatusFailed means no icon could be written for the size.
	StatusFailed
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Origin records which path produced an icon.
type Origin int

const (
	// OriginNone means no icon was produced.
	OriginNone Origin = iota

	// OriginVector means the icon was rasterized from the SVG source.
	OriginVector

	// OriginProcedural means the icon was drawn from the built-in emblem.
	OriginProcedural
)

// String returns the name of the origin.
func (o Origin) String() string {
	switch o {
	case OriginNone:
		return "none"
	case OriginVector:
		return "vector"
	case OriginProcedural:
		return "procedural"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// Result is the outcome for a single icon size.
type Result struct {
	Size   int
	Path   string
	Status Status
	Origin Origin

	// Err is set when Status is StatusFailed.
	Err error

	// VectorErr is the rasterization failure that caused a fallback, if any.
	// Missing sources and unavailable rasterizers are not recorded here.
	VectorErr error
}

// Report aggregates the results of one run in generation order.
type Report struct {
	Results []Result
}

// Total returns the number of sizes processed.
func (r *Report) Total() int {
	return len(r.Results)
}

// Successes returns the number of icons written.
func (r *Report) Successes() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusDone {
			n++
		}
	}
	return n
}

// Failed returns the results that did not produce an icon.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Status != StatusDone {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every size produced an icon.
func (r *Report) OK() bool {
	return r.Successes() == r.Total()
}
