package search

import "github.com/audiencelab/intentforge/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterSemanticSearch(ids []uint64)
	VerbatimHit(segment *core.Segment)
	SemanticHit(segment *core.Segment)
	Finish(results []*core.SegmentResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                 {}
func (n *noopMonitor) AfterSemanticSearch(_ []uint64) {}
func (n *noopMonitor) VerbatimHit(_ *core.Segment)    {}
func (n *noopMonitor) SemanticHit(_ *core.Segment)    {}
func (n *noopMonitor) Finish(_ []*core.SegmentResult) {}
