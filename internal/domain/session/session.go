package session

import (
	"encoding/json"

	"fuel-sense/internal/domain/notification"
	"fuel-sense/internal/domain/user"

	"github.com/google/uuid"
)

// Snapshot is the only state that survives a restart: the current user, the
// cargo they had selected and their notification list. Everything else
// reseeds from fixtures. There is no schema versioning; unknown fields are
// dropped and missing fields keep their zero values on hydration.
type Snapshot struct {
	CurrentUser   *user.User                   `json:"current_user,omitempty"`
	SelectedCargo *uuid.UUID                   `json:"selected_cargo,omitempty"`
	Notifications []*notification.Notification `json:"notifications"`
}

// Encode serializes the snapshot to its stored JSON form.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Decode hydrates a snapshot from stored JSON, merging whatever shape is
// present into defaults.
func Decode(raw []byte) (*Snapshot, error) {
	snap := &Snapshot{}
	if len(raw) == 0 {
		return snap, nil
	}
	if err := json.Unmarshal(raw, snap); err != nil {
		return nil, err
	}
	return snap, nil
}
