package models

import "time"

// Room is a treatment room. Type groups interchangeable rooms
// (e.g. "steam", "massage", "consultation").
type Room struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Type      string    `bson:"type" json:"type"`
	Bookable  bool      `bson:"bookable" json:"bookable"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
