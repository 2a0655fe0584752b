package models

import "time"

// DayWindow is one weekday's working window, in minutes from midnight
// (e.g. 540 for 9:00 AM). Available=false means the therapist does not work
// that weekday at all.
type DayWindow struct {
	StartMinute int  `bson:"startMinute" json:"startMinute"`
	EndMinute   int  `bson:"endMinute" json:"endMinute"`
	Available   bool `bson:"available" json:"available"`
}

// WorkingHoursTemplate is a therapist's static weekly schedule, one window per
// weekday indexed by time.Weekday (Sunday = 0).
type WorkingHoursTemplate struct {
	Days [7]DayWindow `bson:"days" json:"days"`
}

// Window returns the working window for the given weekday.
func (t WorkingHoursTemplate) Window(d time.Weekday) DayWindow {
	return t.Days[int(d)%7]
}

// Therapist represents a clinic practitioner.
type Therapist struct {
	ID              string               `bson:"id" json:"id"`
	FullName        string               `bson:"fullName" json:"fullName"`
	Email           string               `bson:"email" json:"email"`
	Specializations []string             `bson:"specializations" json:"specializations"`
	YearsExperience int                  `bson:"yearsExperience" json:"yearsExperience"`
	WorkingHours    WorkingHoursTemplate `bson:"workingHours" json:"workingHours"`
	FCMToken        string               `bson:"fcmToken,omitempty" json:"-"`
	Active          bool                 `bson:"active" json:"active"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// HasSpecialization reports whether the therapist carries the given
// specialization. An empty requirement matches any therapist.
func (t Therapist) HasSpecialization(required string) bool {
	if required == "" {
		return true
	}
	for _, s := range t.Specializations {
		if s == required {
			return true
		}
	}
	return false
}
