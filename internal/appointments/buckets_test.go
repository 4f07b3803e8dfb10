package appointments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const today = "2026-08-28"

func apt(date, status string) *Appointment {
	return &Appointment{Date: date, Status: status}
}

func TestInBucketUpcoming(t *testing.T) {
	tests := []struct {
		name string
		apt  *Appointment
		want bool
	}{
		{"confirmed today", apt(today, StatusConfirmed), true},
		{"pending future", apt("2026-09-10", StatusPending), true},
		{"confirmed past", apt("2026-08-01", StatusConfirmed), false},
		{"cancelled future", apt("2026-09-10", StatusCancelled), false},
		{"completed future", apt("2026-09-10", StatusCompleted), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBucket(tt.apt, BucketUpcoming, today))
		})
	}
}

func TestInBucketHistory(t *testing.T) {
	tests := []struct {
		name string
		apt  *Appointment
		want bool
	}{
		{"past date any status", apt("2026-08-01", StatusConfirmed), true},
		{"completed future", apt("2026-09-10", StatusCompleted), true},
		{"cancelled future", apt("2026-09-10", StatusCancelled), true},
		{"confirmed today", apt(today, StatusConfirmed), false},
		{"pending future", apt("2026-09-10", StatusPending), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBucket(tt.apt, BucketHistory, today))
		})
	}
}

func TestCancelledBucketIsSubsetOfHistory(t *testing.T) {
	// Any cancelled appointment lands in history no matter the date.
	dates := []string{"2026-08-01", today, "2026-09-10", "2030-01-01"}
	for _, date := range dates {
		a := apt(date, StatusCancelled)
		assert.True(t, InBucket(a, BucketCancelled, today), "date %s", date)
		assert.True(t, InBucket(a, BucketHistory, today), "date %s", date)
	}
}

func TestBucketsOverlap(t *testing.T) {
	// A completed appointment with a past date is in completed and history.
	a := apt("2026-08-01", StatusCompleted)
	assert.True(t, InBucket(a, BucketCompleted, today))
	assert.True(t, InBucket(a, BucketHistory, today))
}

func TestFilterBucketPreservesOrder(t *testing.T) {
	list := []*Appointment{
		{ID: "a", Date: "2026-09-01", Status: StatusConfirmed},
		{ID: "b", Date: "2026-08-01", Status: StatusConfirmed},
		{ID: "c", Date: "2026-09-02", Status: StatusPending},
	}
	got := FilterBucket(list, BucketUpcoming, today)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestValidBucket(t *testing.T) {
	for _, name := range []string{"upcoming", "completed", "cancelled", "history"} {
		assert.True(t, ValidBucket(name), name)
	}
	assert.False(t, ValidBucket("archived"))
	assert.False(t, ValidBucket(""))
}
