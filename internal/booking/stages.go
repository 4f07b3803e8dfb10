package booking

import "time"

// Flow states of a booking. A booking starts on the form, moves to payment,
// runs the processing pipeline and completes. A failure while creating the
// appointment sends the flow back to payment.
const (
	StateForm       = "form"
	StatePayment    = "payment"
	StateProcessing = "processing"
	StateComplete   = "complete"
)

// Stage is one step of the processing pipeline. Stages run strictly in
// order and each advances automatically after its duration elapses.
type Stage struct {
	Title    string
	Duration time.Duration
}

// Stages returns the scripted processing pipeline.
func Stages() []Stage {
	return []Stage{
		{Title: "Checking Availability", Duration: 1200 * time.Millisecond},
		{Title: "Verifying Connection", Duration: 1000 * time.Millisecond},
		{Title: "Processing Payment", Duration: 1000 * time.Millisecond},
		{Title: "Confirming Booking", Duration: 1200 * time.Millisecond},
	}
}
