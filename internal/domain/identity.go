package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Identity is the opaque per-installation key used to address the remote
// mirror row. It is generated once and never regenerated while the local
// state file persists it.
type Identity string

func NewIdentity() Identity {
	id, err := uuid.NewRandom()
	if err != nil {
		return Identity(fmt.Sprintf("nms-%d", time.Now().UnixNano()))
	}

	return Identity("nms-" + id.String())
}
