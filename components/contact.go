package components

import (
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ContactEvent reports that A and B overlapped on layers whose rule asks for
// a contact outcome. It is published during collision and delivered after
// push-apart has run for the frame.
type ContactEvent struct {
	A, B   *donburi.Entry
	LayerA spatial.Layer
	LayerB spatial.Layer
}

// Involves returns the participant on layer l and the other one.
func (c ContactEvent) Involves(l spatial.Layer) (self, other *donburi.Entry, ok bool) {
	switch l {
	case c.LayerA:
		return c.A, c.B, true
	case c.LayerB:
		return c.B, c.A, true
	}
	return nil, nil, false
}

var Contact = events.NewEventType[ContactEvent]()
