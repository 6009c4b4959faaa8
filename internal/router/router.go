package router

import (
	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
)

// Router assigns an incoming submission to a priority lane from its row
// count and the current fast-lane depth. Pure and deterministic: identical
// inputs always produce the same lane.
type Router struct {
	fastMaxRows  int
	bulkMinRows  int
	fastDepthCap int
}

func New(cfg common.RouterConfig) *Router {
	return &Router{
		fastMaxRows:  cfg.FastMaxRows,
		bulkMinRows:  cfg.BulkMinRows,
		fastDepthCap: cfg.FastDepthCap,
	}
}

// Assign returns the lane for a job of totalRows rows given the current
// fast-lane depth. Borderline jobs (within 10% above the fast threshold)
// are promoted to the fast lane only while it is shallow enough that
// interactive submitters are not starved behind them.
func (r *Router) Assign(totalRows, fastDepth int) constants.Lane {
	switch {
	case totalRows <= r.fastMaxRows:
		return constants.LaneFast
	case totalRows >= r.bulkMinRows:
		return constants.LaneBulk
	}

	borderline := totalRows <= r.fastMaxRows+r.fastMaxRows/10
	if borderline && fastDepth < r.fastDepthCap {
		return constants.LaneFast
	}
	return constants.LaneStandard
}
