package notification

import (
	"context"
	"fmt"

	patientRepo "clinicore/database/repository/patient"
	therapistRepo "clinicore/database/repository/therapist"
	"clinicore/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendPatientPushNotification(ctx context.Context, patientID, title, body string, data map[string]string) error
	SendTherapistPushNotification(ctx context.Context, therapistID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	patients   patientRepo.PatientRepository
	therapists therapistRepo.TherapistRepository
}

func NewDefaultNotificationService(
	patients patientRepo.PatientRepository,
	therapists therapistRepo.TherapistRepository,
) (*DefaultNotificationService, error) {
	if patients == nil || therapists == nil {
		return nil, fmt.Errorf("notification service initialization error: patient or therapist repository is nil")
	}
	return &DefaultNotificationService{
		patients:   patients,
		therapists: therapists,
	}, nil
}

// SendPatientPushNotification looks up a patient's FCM token and sends a push.
func (s *DefaultNotificationService) SendPatientPushNotification(
	ctx context.Context,
	patientID, title, body string,
	data map[string]string,
) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return fmt.Errorf("SendPatientPushNotification: could not find patient %s: %w", patientID, err)
	}
	if p.FCMToken == "" {
		return fmt.Errorf("SendPatientPushNotification: patient %s has no FCM token", patientID)
	}

	if _, ok := data["role"]; !ok {
		data["role"] = "patient"
	}

	msg := &messaging.Message{
		Token: p.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPatientPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// SendTherapistPushNotification sends a high priority push to a therapist's
// device, used for new bookings and schedule changes.
func (s *DefaultNotificationService) SendTherapistPushNotification(
	ctx context.Context,
	therapistID, title, body string,
	data map[string]string,
) error {
	t, err := s.therapists.GetByID(ctx, therapistID)
	if err != nil {
		return fmt.Errorf("SendTherapistPushNotification: could not find therapist %s: %w", therapistID, err)
	}
	if t.FCMToken == "" {
		return fmt.Errorf("SendTherapistPushNotification: therapist %s has no FCM token", therapistID)
	}

	if _, ok := data["role"]; !ok {
		data["role"] = "therapist"
	}

	msg := &messaging.Message{
		Token: t.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendTherapistPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}
