package spatial

import "fmt"

// Layer tags a collidable for interaction filtering.
type Layer uint8

const (
	LayerNone Layer = iota
	LayerPlayer
	LayerEnemy
	LayerItem
	LayerEnvironment
	layerCount
)

var layerNames = [layerCount]string{"none", "player", "enemy", "item", "environment"}

func (l Layer) String() string {
	if l >= layerCount {
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
	return layerNames[l]
}

// ParseLayer maps a catalog name to a Layer.
func ParseLayer(name string) (Layer, error) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), nil
		}
	}
	return LayerNone, fmt.Errorf("unknown collision layer %q", name)
}

// Response is the set of outcomes an intersecting layer pair produces.
type Response uint8

const (
	// ResponsePush separates the pair by mass-weighted displacement.
	ResponsePush Response = 1 << iota
	// ResponseContact emits a contact event for gameplay to consume.
	ResponseContact
)

func (r Response) Has(flag Response) bool {
	return r&flag != 0
}

// Matrix is a symmetric lookup from a layer pair to its response. The zero
// value lets nothing interact.
type Matrix struct {
	rules [layerCount][layerCount]Response
}

// Set assigns the response for a and b in both orders.
func (m *Matrix) Set(a, b Layer, r Response) {
	if a >= layerCount || b >= layerCount {
		return
	}
	m.rules[a][b] = r
	m.rules[b][a] = r
}

// Response returns the outcomes for a pair on layers a and b.
func (m *Matrix) Response(a, b Layer) Response {
	if m == nil || a >= layerCount || b >= layerCount {
		return 0
	}
	return m.rules[a][b]
}

// Compatible reports whether a and b should ever interact.
func (m *Matrix) Compatible(a, b Layer) bool {
	return m.Response(a, b) != 0
}

// DefaultMatrix returns the standard interaction rules. Items never push and
// never interact with enemies or each other; merging nearby items is a
// separate proximity check.
func DefaultMatrix() *Matrix {
	m := &Matrix{}
	m.Set(LayerPlayer, LayerEnemy, ResponsePush|ResponseContact)
	m.Set(LayerPlayer, LayerItem, ResponseContact)
	m.Set(LayerPlayer, LayerEnvironment, ResponsePush)
	m.Set(LayerPlayer, LayerPlayer, ResponsePush)
	m.Set(LayerEnemy, LayerEnvironment, ResponsePush)
	m.Set(LayerEnemy, LayerEnemy, ResponsePush)
	return m
}
