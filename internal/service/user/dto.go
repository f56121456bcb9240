package user

import (
	"github.com/pharmanet/pharmacy-console/internal/session"
)

type Credentials struct {
	Principal string `json:"principal"`
	Password  string `json:"password"`
}

// Update carries a partial user update; nil fields are left untouched.
type Update struct {
	PhoneNumber *string `json:"phone_number"`
	Name        *string `json:"name"`
}

type Invitation struct {
	Email      string       `json:"email"`
	Role       session.Role `json:"role"`
	PharmacyID int64        `json:"pharmacy_id"`
}

type Registration struct {
	InviteToken            string                         `json:"invite_token"`
	Password               string                         `json:"password"`
	PhoneNumber            string                         `json:"phone_number"`
	Name                   string                         `json:"name"`
	NotificationPreference session.NotificationPreference `json:"notification_preference"`
}

type messageResponse struct {
	Message string `json:"message"`
}
