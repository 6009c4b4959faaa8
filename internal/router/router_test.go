package router

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
)

func newTestRouter() *Router {
	return New(common.RouterConfig{
		FastMaxRows:  500,
		BulkMinRows:  10000,
		FastDepthCap: 32,
	})
}

func TestAssign(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name      string
		totalRows int
		fastDepth int
		want      constants.Lane
	}{
		{"tiny batch", 50, 0, constants.LaneFast},
		{"exactly at fast threshold", 500, 0, constants.LaneFast},
		{"mid-range", 5000, 0, constants.LaneStandard},
		{"exactly at bulk threshold", 10000, 0, constants.LaneBulk},
		{"huge batch", 50000, 0, constants.LaneBulk},
		{"borderline promoted when fast lane shallow", 540, 5, constants.LaneFast},
		{"borderline demoted when fast lane deep", 540, 32, constants.LaneStandard},
		{"past borderline band is standard even when idle", 600, 0, constants.LaneStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Assign(tt.totalRows, tt.fastDepth))
		})
	}
}

func TestAssignIsDeterministic(t *testing.T) {
	r := newTestRouter()
	for i := 0; i < 100; i++ {
		assert.Equal(t, r.Assign(540, 10), r.Assign(540, 10))
	}
}
