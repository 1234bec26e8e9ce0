package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"

	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed entities.yaml
var embeddedCatalog []byte

// ErrUnknownEntityType is returned when a type name has no catalog entry.
var ErrUnknownEntityType = errors.New("unknown entity type")

type Vec struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

type Dim struct {
	W uint32 `yaml:"w"`
	H uint32 `yaml:"h"`
}

type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

type CollisionShape struct {
	Offset Vec `yaml:"offset"`
	Size   Dim `yaml:"size"`
}

// EntityType is the per-type configuration every instance of a type shares.
// Collision geometry and mass only ever come from here; they are never part
// of an instance's saved state.
type EntityType struct {
	Name    string `yaml:"-"`
	Extends string `yaml:"extends"`

	KindName  string        `yaml:"kind"`
	LayerName string        `yaml:"layer"`
	Kind      Kind          `yaml:"-"`
	Layer     spatial.Layer `yaml:"-"`

	Sprite    Dim            `yaml:"sprite"`
	Collision CollisionShape `yaml:"collision"`
	Mass      float32        `yaml:"mass"`
	Static    bool           `yaml:"static"`

	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contact_damage"`
	Knockback     int32   `yaml:"knockback"`
	Value         int     `yaml:"value"`
	Bob           bool    `yaml:"bob"`
	Color         RGB     `yaml:"color"`
}

func (t *EntityType) SpriteSize() spatial.Size {
	return spatial.Size{W: t.Sprite.W, H: t.Sprite.H}
}

func (t *EntityType) CollisionOffset() spatial.Point {
	return spatial.Point{X: t.Collision.Offset.X, Y: t.Collision.Offset.Y}
}

func (t *EntityType) CollisionSize() spatial.Size {
	return spatial.Size{W: t.Collision.Size.W, H: t.Collision.Size.H}
}

// EffectiveMass is the mass used for resolution: infinite for static types,
// clamped to a small positive value for misconfigured dynamic ones.
func (t *EntityType) EffectiveMass() float32 {
	if t.Static {
		return spatial.InfiniteMass
	}
	return spatial.ClampMass(t.Mass)
}

func (t *EntityType) RGBA() color.RGBA {
	return color.RGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: 255}
}

// catalogFile keeps each entry as a node so an extending entry can be
// decoded on top of its resolved base. Only the keys an entry spells out
// replace inherited values, including explicit zeros and false.
type catalogFile struct {
	Types map[string]yaml.Node `yaml:"types"`
}

// Catalog is the set of entity types keyed by name.
type Catalog struct {
	types map[string]*EntityType
	names []string
}

// Types is the active entity catalog.
var Types *Catalog

func init() {
	c, err := ParseCatalog(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded entity catalog: %v", err))
	}
	Types = c
}

// LoadCatalog reads a catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// LoadCatalogFile reads a catalog from a file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// ParseCatalog decodes YAML catalog data and resolves extends chains.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(file.Types) == 0 {
		return nil, errors.New("catalog has no types")
	}

	c := &Catalog{types: make(map[string]*EntityType, len(file.Types))}
	for name := range file.Types {
		if _, err := c.resolve(file.Types, name, nil); err != nil {
			return nil, err
		}
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c, nil
}

func (c *Catalog) resolve(raw map[string]yaml.Node, name string, chain []string) (*EntityType, error) {
	if t, ok := c.types[name]; ok {
		return t, nil
	}
	for _, seen := range chain {
		if seen == name {
			return nil, fmt.Errorf("entity type %q: extends cycle %v", name, append(chain, name))
		}
	}
	node, ok := raw[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
	}

	var header struct {
		Extends string `yaml:"extends"`
	}
	if err := node.Decode(&header); err != nil {
		return nil, fmt.Errorf("entity type %q: %w", name, err)
	}

	var merged EntityType
	if header.Extends != "" {
		base, err := c.resolve(raw, header.Extends, append(chain, name))
		if err != nil {
			return nil, fmt.Errorf("entity type %q: %w", name, err)
		}
		if err := copier.CopyWithOption(&merged, base, copier.Option{DeepCopy: true}); err != nil {
			return nil, fmt.Errorf("entity type %q: copy %q: %w", name, header.Extends, err)
		}
	}
	// Decoding into the copy only touches the keys present in this entry.
	if err := node.Decode(&merged); err != nil {
		return nil, fmt.Errorf("entity type %q: %w", name, err)
	}
	merged.Name = name
	merged.Extends = header.Extends

	kind, err := ParseKind(merged.KindName)
	if err != nil {
		return nil, fmt.Errorf("entity type %q: %w", name, err)
	}
	layer, err := spatial.ParseLayer(merged.LayerName)
	if err != nil {
		return nil, fmt.Errorf("entity type %q: %w", name, err)
	}
	merged.Kind = kind
	merged.Layer = layer

	t := &merged
	c.types[name] = t
	return t, nil
}

// Get returns the entity type called name.
func (c *Catalog) Get(name string) (*EntityType, error) {
	t, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, name)
	}
	return t, nil
}

// MustGet is Get for names that are known to exist.
func (c *Catalog) MustGet(name string) *EntityType {
	t, err := c.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the type names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Validate logs configuration mistakes that are corrected silently at
// runtime.
func (c *Catalog) Validate(log *zap.Logger) {
	for _, name := range c.names {
		t := c.types[name]
		if !t.Static && t.Mass <= 0 && t.Layer != spatial.LayerItem {
			log.Warn("non-positive mass clamped",
				zap.String("type", name),
				zap.Float32("mass", t.Mass),
				zap.Float32("clamped", spatial.MinMass),
			)
		}
		if t.Collision.Size.W == 0 || t.Collision.Size.H == 0 {
			log.Debug("entity type has an empty collision box", zap.String("type", name))
		}
	}
}
