package models

import (
	"time"

	"telecare-scheduler/internal/pkg/constvars"
)

// Credential holds one user's OAuth tokens for the calendar provider.
// Created out-of-band during user consent; the scheduler only replaces the
// access token on refresh and flips status to invalid when a refresh fails.
// An invalid credential is never reset automatically.
type Credential struct {
	UserID       string    `bson:"userId" json:"user_id"`
	AccessToken  string    `bson:"accessToken" json:"-"`
	RefreshToken string    `bson:"refreshToken" json:"-"`
	Status       string    `bson:"status" json:"status"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updated_at,omitempty"`
}

func (c *Credential) IsValid() bool {
	return c.Status == constvars.CredentialStatusValid
}
