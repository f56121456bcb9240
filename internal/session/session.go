package session

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

type NotificationPreference string

const (
	NotifyEmail NotificationPreference = "EMAIL"
	NotifySMS   NotificationPreference = "SMS"
)

// Token is the opaque bearer credential issued by the user service.
type Token struct {
	Value     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// ExpiredAt reports whether the token is expired at the given moment.
// The boundary is exclusive: a token expiring exactly now is expired.
// Comparison is in whole unix seconds, truncated.
func (t Token) ExpiredAt(now time.Time) bool {
	return t.ExpiresAt <= now.Unix()
}

type UserRecord struct {
	ID                     int64                  `json:"id"`
	Email                  string                 `json:"email"`
	PhoneNumber            string                 `json:"phone_number"`
	Role                   Role                   `json:"role"`
	Name                   string                 `json:"name"`
	NotificationPreference NotificationPreference `json:"notification_preference"`
}

// UserProfile pairs the user record with the pharmacies the user belongs to.
type UserProfile struct {
	Info       UserRecord `json:"info"`
	Pharmacies []int64    `json:"pharmacies"`
}
