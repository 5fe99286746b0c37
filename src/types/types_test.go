package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApprovalChainOrder(t *testing.T) {
	assert.Len(t, ApprovalChain, 8)
	assert.Equal(t, LEVEL_IRM, ApprovalChain[0])
	assert.Equal(t, LEVEL_TRAVEL_DESK, ApprovalChain[len(ApprovalChain)-1])

	for i, level := range ApprovalChain {
		assert.Equal(t, i, level.Index())
		assert.True(t, level.Known())
	}
}

func TestPendingStatus(t *testing.T) {
	assert.Equal(t, TRF_PENDING_IRM, LEVEL_IRM.PendingStatus())
	assert.Equal(t, TRF_PENDING_CFO, LEVEL_CFO.PendingStatus())
	assert.Equal(t, TRF_PENDING_TRAVEL_DESK, LEVEL_TRAVEL_DESK.PendingStatus())
}

func TestNextStatusWalksTheChain(t *testing.T) {
	// Each level hands off to the next level's pending status; the
	// terminal level clears the chain.
	for i, level := range ApprovalChain {
		if i == len(ApprovalChain)-1 {
			assert.Equal(t, TRF_APPROVED, level.NextStatus())
			continue
		}
		assert.Equal(t, ApprovalChain[i+1].PendingStatus(), level.NextStatus())
	}
}

func TestUnknownLevel(t *testing.T) {
	bogus := ApprovalLevel("ceo")
	assert.False(t, bogus.Known())
	assert.Equal(t, -1, bogus.Index())
	assert.Equal(t, TRFStatus(""), bogus.NextStatus())
}

func TestPendingStatuses(t *testing.T) {
	statuses := PendingStatuses()
	assert.Len(t, statuses, len(ApprovalChain))
	assert.Contains(t, statuses, TRF_PENDING_IRM)
	assert.Contains(t, statuses, TRF_PENDING_TRAVEL_DESK)
	assert.NotContains(t, statuses, TRF_APPROVED)
	assert.NotContains(t, statuses, TRF_DRAFT)
}
