package models

import "time"

// Invitation represents the invitations table. The raw token travels by email
// only; the row stores a bcrypt hash of it.
type Invitation struct {
	InvitationID int        `gorm:"primaryKey;column:invitation_id" json:"invitation_id"`
	AccountID    int        `gorm:"column:account_id" json:"account_id"`
	Email        string     `gorm:"column:email" json:"email"`
	Role         string     `gorm:"column:role" json:"role"`
	TokenHash    string     `gorm:"column:token_hash" json:"-"`
	ExpiresAt    time.Time  `gorm:"column:expires_at" json:"expires_at"`
	AcceptedAt   *time.Time `gorm:"column:accepted_at" json:"accepted_at"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
}

// IsExpired reports whether the invitation has lapsed at the given instant.
func (i Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsAccepted reports whether the invitation has already been redeemed.
func (i Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// TableName overrides the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}
