// internal/billing/snapshot.go
package billing

import "time"

// Snapshot schema version. Readers must treat missing or older-shape fields
// as empty rather than failing the whole document.
const SnapshotVersion = 1

// Category bucket names carried in payment metadata.
const (
	CategoryBandFees  = "band_fees"
	CategoryTrip      = "trip"
	CategoryEquipment = "equipment"
	CategoryDonation  = "donation"
)

// Metadata keys attached to checkout sessions and payment intents.
const (
	MetaTenantID    = "tenant_id"
	MetaUserID      = "user_id"
	MetaStudentID   = "student_id"
	MetaStudentName = "student_name"
	MetaCategory    = "category"
	MetaPayerName   = "payer_name"
	MetaPayerEmail  = "payer_email"
	MetaPaymentType = "payment_type"

	// MetaEnrollments is the customer-metadata key holding the enrollment
	// document (EnrollmentState keyed by student id).
	MetaEnrollments = "enrollments"
)

// CustomerSnapshot is the per-user read model for "what has this user paid."
// It is always written as a full replacement so payments, totals and
// enrollments stay mutually consistent as of one sync pass.
type CustomerSnapshot struct {
	Version     int                          `json:"version"`
	CustomerID  string                       `json:"customerId"`
	Payments    []PaymentRecord              `json:"payments"`
	Totals      Totals                       `json:"totals"`
	Enrollments map[string]StudentEnrollment `json:"enrollments"`
	LastSync    time.Time                    `json:"lastSync"`
}

// PaymentRecord is a payment intent normalized for the snapshot, with
// checkout-session metadata folded in when present.
type PaymentRecord struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Status      string    `json:"status"`
	Category    string    `json:"category,omitempty"`
	StudentID   string    `json:"studentId,omitempty"`
	StudentName string    `json:"studentName,omitempty"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}

type Totals struct {
	BandFeesPaid  int64 `json:"bandFeesPaid"`
	TripPaid      int64 `json:"tripPaid"`
	EquipmentPaid int64 `json:"equipmentPaid"`
	DonationsPaid int64 `json:"donationsPaid"`
}

// Add accumulates amount into the bucket named by category. Unknown
// categories are ignored rather than failing the sync.
func (t *Totals) Add(category string, amount int64) {
	switch category {
	case CategoryBandFees:
		t.BandFeesPaid += amount
	case CategoryTrip:
		t.TripPaid += amount
	case CategoryEquipment:
		t.EquipmentPaid += amount
	case CategoryDonation:
		t.DonationsPaid += amount
	}
}

// StudentEnrollment is the per-student slice of the enrollment document.
type StudentEnrollment struct {
	StudentName string                        `json:"studentName"`
	Categories  map[string]CategoryEnrollment `json:"categories"`
}

type CategoryEnrollment struct {
	Enrolled   bool      `json:"enrolled"`
	EnrolledAt time.Time `json:"enrolledAt,omitempty"`
	TotalOwed  int64     `json:"totalOwed"`
	// AmountPaid is never trusted from provider metadata; each sync pass
	// overwrites it with the re-summed ledger figure.
	AmountPaid int64 `json:"amountPaid"`
}
