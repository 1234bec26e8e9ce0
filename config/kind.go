package config

import "fmt"

// Kind is the closed set of entity variants the world knows how to update
// and draw.
type Kind int

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindItem
	KindScenery
	KindCount // Must be last - used for array sizing
)

var kindNames = [KindCount]string{"none", "player", "enemy", "item", "scenery"}

func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a catalog name to a Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name && Kind(i) != KindNone {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("unknown entity kind %q", name)
}
