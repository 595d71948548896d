// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncResult_OK(t *testing.T) {
	ok := &SyncResult{Downloaded: []string{"a.laz"}}
	assert.True(t, ok.OK())

	failed := &SyncResult{Failed: []string{"b.laz"}}
	assert.False(t, failed.OK())

	cancelled := &SyncResult{Cancelled: true}
	assert.False(t, cancelled.OK())
}

func TestSyncResult_AverageSpeed(t *testing.T) {
	r := &SyncResult{
		StartedAt:       time.Now().Add(-2 * time.Second),
		TotalBytesMoved: 1000,
	}
	assert.InDelta(t, 500, r.AverageSpeed(), 50)

	empty := &SyncResult{}
	assert.Zero(t, empty.AverageSpeed())
	assert.Zero(t, empty.Elapsed())
}

func TestPlanEntry_RemainingBytes(t *testing.T) {
	fresh := PlanEntry{File: FileInfo{Size: 1000}}
	assert.False(t, fresh.IsResume())
	assert.Equal(t, uint64(1000), fresh.RemainingBytes())

	resumed := PlanEntry{File: FileInfo{Size: 1000}, ResumeFrom: 400}
	assert.True(t, resumed.IsResume())
	assert.Equal(t, uint64(600), resumed.RemainingBytes())

	// Remote shrank below the local partial; never underflow.
	shrunk := PlanEntry{File: FileInfo{Size: 100}, ResumeFrom: 400}
	assert.Zero(t, shrunk.RemainingBytes())
}

func TestFetchStatus_String(t *testing.T) {
	assert.Equal(t, "success", FetchSuccess.String())
	assert.Equal(t, "failed", FetchFailed.String())
	assert.Equal(t, "cancelled", FetchCancelled.String())
}
