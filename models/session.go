// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// GuestName is shown in place of a display name when the signed-in user's
// profile carries none.
const GuestName = "Guest"

// Credential is the opaque bearer token issued by the backend after a
// successful sign-in. The client never interprets it beyond decoding the
// display claims and sends it only in the Authorization header.
type Credential string

// String returns the raw token value.
func (c Credential) String() string {
	return string(c)
}

// IsEmpty reports whether the credential holds no token.
func (c Credential) IsEmpty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// UserProfile is the display information decoded from a [Credential].
//
// It is advisory only: the client never treats it as proof of identity.
type UserProfile struct {
	// ID is the subject claim ("sub") of the credential.
	ID string `json:"id"`

	// Name is the human readable name shown in the UI.
	Name string `json:"name"`

	// Email is the e-mail address the backend associated with the account.
	Email string `json:"email"`
}

// IsEmpty reports whether no field of the profile is populated.
func (p UserProfile) IsEmpty() bool {
	return p.ID == "" && p.Name == "" && p.Email == ""
}

// DisplayName returns the user's name, or [GuestName] when it is unknown.
func (p UserProfile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return GuestName
	}
	return p.Name
}

// Greeting returns the welcome line shown on the main surface.
func (p UserProfile) Greeting() string {
	return "Welcome, " + p.DisplayName() + "!"
}
