package collision

import "sync/atomic"

// Stats is a snapshot of a Detector's counters. The counters are diagnostic
// only and never feed back into a result.
type Stats struct {
	Queries       uint64
	Intersections uint64
	Penetrations  uint64
	CircleFast    uint64
	GJKCapHits    uint64
	EPACapHits    uint64
}

type counters struct {
	queries       atomic.Uint64
	intersections atomic.Uint64
	penetrations  atomic.Uint64
	circleFast    atomic.Uint64
	gjkCapHits    atomic.Uint64
	epaCapHits    atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Queries:       c.queries.Load(),
		Intersections: c.intersections.Load(),
		Penetrations:  c.penetrations.Load(),
		CircleFast:    c.circleFast.Load(),
		GJKCapHits:    c.gjkCapHits.Load(),
		EPACapHits:    c.epaCapHits.Load(),
	}
}
