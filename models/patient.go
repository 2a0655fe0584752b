package models

import "time"

// Patient represents a clinic patient.
type Patient struct {
	ID       string `bson:"id" json:"id"`
	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	// Condition is the presenting complaint category.
	Condition string `bson:"condition,omitempty" json:"condition,omitempty"`
	// Constitution is the patient's body-type classification (dosha). Treated
	// as an opaque categorical input.
	Constitution string    `bson:"constitution,omitempty" json:"constitution,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PatientHistoryEntry is one completed session in a patient's treatment
// history, the read-only input to the history and sequence heuristics.
type PatientHistoryEntry struct {
	TherapistID     string    `bson:"therapistId" json:"therapistId"`
	TherapyCategory string    `bson:"therapyCategory" json:"therapyCategory"`
	Satisfaction    int       `bson:"satisfaction" json:"satisfaction"` // 1-5
	CompletedAt     time.Time `bson:"completedAt" json:"completedAt"`
}
