package moneta

import (
	"encoding/json"
	"fmt"
	"io"
)

// Profile is the authenticated-user record owned by the session layer.
// The core consumes it as opaque read-only context: no behavior here
// depends on its contents, and nothing in this package mutates it.
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// EncodeProfile writes the serialized identity record.
func EncodeProfile(w io.Writer, p Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("could not encode profile: %w", err)
	}
	return nil
}

// DecodeProfile reads a serialized identity record. Callers must treat a
// missing record (fresh, unauthenticated state) and a present one
// identically; only the transport error of an existing but unreadable
// record is surfaced.
func DecodeProfile(r io.Reader) (Profile, error) {
	var p Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("could not decode profile: %w", err)
	}
	return p, nil
}
