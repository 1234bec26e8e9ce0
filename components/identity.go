package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// IdentityData is the stable id a saved entity is matched by.
type IdentityData struct {
	ID uuid.UUID
}

var Identity = donburi.NewComponentType[IdentityData]()
