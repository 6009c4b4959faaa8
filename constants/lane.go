package constants

// Lane is one of the priority queues a job is routed into.
type Lane string

const (
	LaneFast     Lane = "FAST"
	LaneStandard Lane = "STANDARD"
	LaneBulk     Lane = "BULK"
)

// LanesByPriority lists the lanes in draining order: workers attempt FAST
// before STANDARD before BULK.
var LanesByPriority = []Lane{LaneFast, LaneStandard, LaneBulk}

// Valid reports whether l is a known lane value.
func (l Lane) Valid() bool {
	switch l {
	case LaneFast, LaneStandard, LaneBulk:
		return true
	}
	return false
}
