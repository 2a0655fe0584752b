package handlers

// HandlerBundle aggregates the HTTP handlers wired in main so route
// registration takes a single dependency.
type HandlerBundle struct {
	Booking        *BookingHandler
	Recommendation *RecommendationHandler
	Therapist      *TherapistHandler
	Patient        *PatientHandler
	Therapy        *TherapyHandler
	Room           *RoomHandler
}
