package appointments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/medibook-platform/internal/simulate"
)

func newTestRepo() *InMemoryRepository {
	return NewInMemoryRepository(simulate.None())
}

func createReq(doctorID, patientID, date, status string) *CreateAppointmentRequest {
	return &CreateAppointmentRequest{
		DoctorID:         doctorID,
		PatientID:        patientID,
		DoctorName:       "Dr. Rajesh Kumar",
		PatientName:      "Rahul Sharma",
		Specialty:        "Cardiology",
		Date:             date,
		Time:             "10:00",
		Status:           status,
		ConsultationType: "clinic",
		Fee:              800,
	}
}

func TestCreateAssignsUniqueIDsAndMonotonicCreatedAt(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	seen := make(map[string]struct{})
	var prev *Appointment
	for i := 0; i < 20; i++ {
		apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
		require.NoError(t, err)

		if _, dup := seen[apt.ID]; dup {
			t.Fatalf("duplicate appointment id %s", apt.ID)
		}
		seen[apt.ID] = struct{}{}

		if prev != nil && apt.CreatedAt.Before(prev.CreatedAt) {
			t.Fatalf("createdAt went backwards: %s before %s", apt.CreatedAt, prev.CreatedAt)
		}
		prev = apt
	}
}

func TestCreateAcceptsOverlappingSlots(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	_, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)
	// Same doctor, same date and time. Accepted; there is no conflict check.
	_, err = repo.Create(ctx, createReq("1", "patient2", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)

	list, err := repo.GetByDoctorID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestGetByPatientIDPreservesInsertionOrder(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	first, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)
	_, err = repo.Create(ctx, createReq("2", "patient2", "2026-09-02", StatusConfirmed))
	require.NoError(t, err)
	second, err := repo.Create(ctx, createReq("3", "patient1", "2026-09-03", StatusPending))
	require.NoError(t, err)

	list, err := repo.GetByPatientID(ctx, "patient1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusPending))
	require.NoError(t, err)

	status := StatusConfirmed
	symptoms := "chest pain"
	updated, err := repo.Update(ctx, apt.ID, &UpdateAppointmentRequest{
		Status:   &status,
		Symptoms: &symptoms,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, "chest pain", updated.Symptoms)
	// Untouched fields survive the merge.
	assert.Equal(t, "2026-09-01", updated.Date)
	assert.Equal(t, 800, updated.Fee)
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newTestRepo()
	status := StatusConfirmed
	_, err := repo.Update(context.Background(), "nonexistent-id", &UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelThenRetrievable(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)

	found, err := repo.Cancel(ctx, apt.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// The appointment stays in the store with status cancelled.
	list, err := repo.GetByPatientID(ctx, "patient1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, StatusCancelled, list[0].Status)
}

func TestCancelUnknownIDLeavesStoreUnchanged(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)

	found, err := repo.Cancel(ctx, "nonexistent-id")
	require.NoError(t, err)
	assert.False(t, found)

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, apt.ID, list[0].ID)
	assert.Equal(t, StatusConfirmed, list[0].Status)
}

func TestCancelTwiceStillReportsTrue(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusCompleted))
	require.NoError(t, err)

	// No completed/cancelled guard; both calls succeed.
	for i := 0; i < 2; i++ {
		found, err := repo.Cancel(ctx, apt.ID)
		require.NoError(t, err)
		assert.True(t, found)
	}
}

func TestFailNextFailsExactlyOnce(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	boom := errors.New("store unavailable")
	repo.FailNext(boom)

	_, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	assert.ErrorIs(t, err, boom)

	// The fault is consumed; the retry succeeds.
	_, err = repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	assert.NoError(t, err)
}

func TestListingsReturnSnapshots(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	apt, err := repo.Create(ctx, createReq("1", "patient1", "2026-09-01", StatusConfirmed))
	require.NoError(t, err)

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	list[0].Status = "mangled"

	fresh, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, fresh[0].Status)
	assert.Equal(t, apt.ID, fresh[0].ID)
}
