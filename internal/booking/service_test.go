package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibook/medibook-platform/internal/appointments"
	"github.com/medibook/medibook-platform/internal/doctors"
	"github.com/medibook/medibook-platform/internal/locale"
	"github.com/medibook/medibook-platform/internal/notify"
	"github.com/medibook/medibook-platform/internal/observability/metrics"
	"github.com/medibook/medibook-platform/internal/simulate"
	"github.com/medibook/medibook-platform/pkg/logging"
)

// A Monday in IST, used to pin the availability window.
var monday = time.Date(2026, 8, 31, 9, 0, 0, 0, locale.IST)

func testDirectory() []*doctors.Doctor {
	dir := doctors.Seed()
	dir = append(dir,
		&doctors.Doctor{
			ID:        "100",
			Name:      "Dr. Kavita Nair",
			Specialty: "General Medicine",
			Availability: &doctors.Availability{
				Clinic: []string{"Monday", "Wednesday"},
			},
		},
		&doctors.Doctor{
			ID:        "101",
			Name:      "Dr. Arjun Mehta",
			Specialty: "General Medicine",
		},
	)
	return dir
}

func newServiceFixture() (*Service, *appointments.InMemoryRepository, *notify.Recorder) {
	aptRepo := appointments.NewInMemoryRepository(simulate.None())
	recorder := &notify.Recorder{}
	svc := NewService(
		doctors.NewInMemoryRepository(testDirectory(), simulate.None()),
		aptRepo,
		recorder,
		metrics.NewBookingMetrics(prometheus.NewRegistry()),
		simulate.None(),
		0,
		logging.Default(),
	)
	svc.now = func() time.Time { return monday }
	return svc, aptRepo, recorder
}

func bookingReq(doctorID, modality string) *Request {
	return &Request{
		DoctorID:         doctorID,
		PatientID:        "patient1",
		PatientName:      "Rahul Sharma",
		Date:             "2026-09-02",
		Time:             "10:00",
		ConsultationType: modality,
	}
}

func TestBookComputesFeeByModality(t *testing.T) {
	tests := []struct {
		modality string
		wantFee  int
	}{
		{"clinic", 800},
		{"video", 600},
		// A call consultation bills the video fee.
		{"call", 600},
	}
	for _, tt := range tests {
		t.Run(tt.modality, func(t *testing.T) {
			svc, _, _ := newServiceFixture()
			result, err := svc.Book(context.Background(), bookingReq("1", tt.modality))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, result.Fee)
			assert.Equal(t, tt.wantFee, result.Appointment.Fee)
		})
	}
}

func TestBookRunsStagesInOrder(t *testing.T) {
	svc, _, _ := newServiceFixture()

	result, err := svc.Book(context.Background(), bookingReq("1", "clinic"))
	require.NoError(t, err)

	titles := make([]string, len(result.Stages))
	for i, s := range result.Stages {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Checking Availability",
		"Verifying Connection",
		"Processing Payment",
		"Confirming Booking",
	}, titles)
}

func TestBookConfirmsAppointment(t *testing.T) {
	svc, aptRepo, recorder := newServiceFixture()

	result, err := svc.Book(context.Background(), bookingReq("1", "video"))
	require.NoError(t, err)

	assert.Equal(t, StateComplete, result.State)
	assert.Equal(t, appointments.StatusConfirmed, result.Appointment.Status)
	assert.Equal(t, "Dr. Rajesh Kumar", result.Appointment.DoctorName)
	assert.Equal(t, "Cardiology", result.Appointment.Specialty)
	assert.Equal(t, "₹600", result.FeeDisplay)
	assert.Equal(t, "Wednesday, 2 September 2026", result.DateDisplay)
	assert.Equal(t, "10:00 AM", result.TimeDisplay)

	stored, err := aptRepo.GetByPatientID(context.Background(), "patient1")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.Len(t, recorder.Notices, 1)
	assert.Equal(t, notify.SeveritySuccess, recorder.Notices[0].Severity)
}

func TestBookFailureRevertsToPayment(t *testing.T) {
	svc, aptRepo, recorder := newServiceFixture()
	aptRepo.FailNext(errors.New("store unavailable"))

	result, err := svc.Book(context.Background(), bookingReq("1", "clinic"))
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, StatePayment, result.State)
	assert.Nil(t, result.Appointment)

	// Nothing was stored and the patient got an error notice.
	stored, err := aptRepo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)

	require.Len(t, recorder.Notices, 1)
	assert.Equal(t, notify.SeverityError, recorder.Notices[0].Severity)
}

func TestBookRejectsMissingFields(t *testing.T) {
	svc, _, _ := newServiceFixture()

	req := bookingReq("1", "clinic")
	req.Date = ""
	_, err := svc.Book(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestBookUnknownDoctor(t *testing.T) {
	svc, _, _ := newServiceFixture()

	_, err := svc.Book(context.Background(), bookingReq("999", "clinic"))
	assert.ErrorIs(t, err, doctors.ErrDoctorNotFound)
}

func TestAvailableDatesTwoWeekWindow(t *testing.T) {
	svc, _, _ := newServiceFixture()

	// Window starts Monday 2026-08-31; Mondays and Wednesdays inside the
	// next 14 days are exactly these four.
	dates, err := svc.AvailableDates(context.Background(), "100", "clinic")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-31", "2026-09-02", "2026-09-07", "2026-09-09"}, dates)
}

func TestAvailableDatesUsesOnlineListForVideoAndCall(t *testing.T) {
	svc, _, _ := newServiceFixture()

	// Doctor 100 publishes clinic days only, so remote modalities get none.
	for _, modality := range []string{"video", "call"} {
		dates, err := svc.AvailableDates(context.Background(), "100", modality)
		require.NoError(t, err)
		assert.Empty(t, dates, modality)
	}
}

func TestAvailableDatesNoAvailability(t *testing.T) {
	svc, _, _ := newServiceFixture()

	dates, err := svc.AvailableDates(context.Background(), "101", "clinic")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestAvailableDatesWeekdayDoctor(t *testing.T) {
	svc, _, _ := newServiceFixture()

	// Dr. Rajesh Kumar sits in clinic Monday through Friday: two full work
	// weeks inside the window.
	dates, err := svc.AvailableDates(context.Background(), "1", "clinic")
	require.NoError(t, err)
	assert.Len(t, dates, 10)
}
