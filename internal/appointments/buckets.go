package appointments

import "github.com/medibook/medibook-platform/internal/locale"

// Bucket is a lifecycle view over appointments. Buckets are evaluated at
// call time against the current IST date and deliberately overlap: a
// cancelled appointment shows up in both the cancelled and history buckets,
// and a confirmed appointment for today is upcoming but not yet history.
type Bucket string

const (
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
	BucketCancelled Bucket = "cancelled"
	BucketHistory   Bucket = "history"
)

// ValidBucket reports whether name is a recognized bucket.
func ValidBucket(name string) bool {
	switch Bucket(name) {
	case BucketUpcoming, BucketCompleted, BucketCancelled, BucketHistory:
		return true
	}
	return false
}

// InBucket reports whether apt belongs to the bucket when today is the
// current IST date in "YYYY-MM-DD" form. Date strings compare
// lexicographically, which matches chronological order for this layout.
func InBucket(apt *Appointment, bucket Bucket, today string) bool {
	switch bucket {
	case BucketUpcoming:
		return (apt.Status == StatusConfirmed || apt.Status == StatusPending) && apt.Date >= today
	case BucketCompleted:
		return apt.Status == StatusCompleted
	case BucketCancelled:
		return apt.Status == StatusCancelled
	case BucketHistory:
		return apt.Date < today || apt.Status == StatusCompleted || apt.Status == StatusCancelled
	}
	return false
}

// FilterBucket returns the appointments belonging to bucket, preserving
// input order. Today defaults to the current IST date when empty.
func FilterBucket(list []*Appointment, bucket Bucket, today string) []*Appointment {
	if today == "" {
		today = locale.Today()
	}
	var out []*Appointment
	for _, apt := range list {
		if InBucket(apt, bucket, today) {
			out = append(out, apt)
		}
	}
	return out
}
