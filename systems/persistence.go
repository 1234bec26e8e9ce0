package systems

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/hollowfield/components"
	cfg "github.com/automoto/hollowfield/config"
	"github.com/automoto/hollowfield/shared/spatial"
	"github.com/automoto/hollowfield/systems/factory"
	"github.com/automoto/hollowfield/tags"
	"github.com/google/uuid"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ErrNoSave is returned when loading a slot that has never been written.
var ErrNoSave = errors.New("no saved world")

// saveVersion is bumped when SavedWorld changes incompatibly.
const saveVersion = 1

// ItemStore is the key/value storage saves go through. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store ItemStore

// InitPersistence opens the platform save location for appName.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		zap.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// SetStore replaces the save storage. A nil store disables saving.
func SetStore(s ItemStore) {
	store = s
}

// SavedEntity is the per-instance state of one dynamic entity. Geometry and
// mass are never saved; they come back from the catalog by type name.
type SavedEntity struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"type"`
	X         int32          `json:"x"`
	Y         int32          `json:"y"`
	Health    int            `json:"health,omitempty"`
	Inventory map[string]int `json:"inventory,omitempty"`
	Value     int            `json:"value,omitempty"`
}

// SavedWorld is a snapshot of everything that moves. Static scenery and
// terrain are rebuilt from the level.
type SavedWorld struct {
	Version  int           `json:"version"`
	Level    string        `json:"level"`
	Entities []SavedEntity `json:"entities"`
}

// dynamicEntries returns players, enemies and items in spawn order.
func dynamicEntries(w donburi.World) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Spatial.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Player) || e.HasComponent(tags.Enemy) || e.HasComponent(tags.Item) {
			entries = append(entries, e)
		}
	})
	slices.SortFunc(entries, func(a, b *donburi.Entry) int {
		return cmp.Compare(components.Spatial.Get(a).Seq, components.Spatial.Get(b).Seq)
	})
	return entries
}

// SnapshotWorld captures the dynamic entities of the world.
func SnapshotWorld(e *ecs.ECS) SavedWorld {
	snap := SavedWorld{Version: saveVersion}
	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).Level; level != nil {
			snap.Level = level.Name
		}
	}

	for _, entry := range dynamicEntries(e.World) {
		sp := components.Spatial.Get(entry)
		saved := SavedEntity{
			Type: sp.Type.Name,
			X:    sp.Anchor.X,
			Y:    sp.Anchor.Y,
		}
		if entry.HasComponent(components.Identity) {
			saved.ID = components.Identity.Get(entry).ID
		}
		if entry.HasComponent(components.Health) {
			saved.Health = components.Health.Get(entry).Current
		}
		if entry.HasComponent(components.Inventory) {
			inv := components.Inventory.Get(entry)
			saved.Inventory = inv.Counts
			saved.Value = inv.Value
		}
		snap.Entities = append(snap.Entities, saved)
	}
	return snap
}

// SaveWorld writes a snapshot of the world to slot.
func SaveWorld(e *ecs.ECS, slot string) error {
	if store == nil {
		return errors.New("persistence not initialized")
	}
	data, err := json.Marshal(SnapshotWorld(e))
	if err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	if err := store.SaveItem(slot, data); err != nil {
		return fmt.Errorf("save %s: %w", slot, err)
	}
	return nil
}

// LoadWorld replaces the dynamic entities of the world with the snapshot in
// slot. Entities whose type is no longer in the catalog are skipped.
func LoadWorld(e *ecs.ECS, slot string) error {
	if store == nil {
		return errors.New("persistence not initialized")
	}
	data, err := store.LoadItem(slot)
	if err != nil {
		return fmt.Errorf("load %s: %w", slot, err)
	}
	if len(data) == 0 {
		return ErrNoSave
	}

	var snap SavedWorld
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode %s: %w", slot, err)
	}
	if snap.Version != saveVersion {
		return fmt.Errorf("save %s: unsupported version %d", slot, snap.Version)
	}

	RestoreWorld(e, snap)
	return nil
}

// RestoreWorld removes the current dynamic entities and spawns the ones in
// snap, in saved order.
func RestoreWorld(e *ecs.ECS, snap SavedWorld) {
	for _, entry := range dynamicEntries(e.World) {
		entry.Remove()
	}

	for _, saved := range snap.Entities {
		entry, err := factory.Spawn(e, saved.Type, spatial.Point{X: saved.X, Y: saved.Y})
		if err != nil {
			zap.L().Warn("skipping saved entity",
				zap.String("type", saved.Type),
				zap.Stringer("id", saved.ID),
				zap.Error(err),
			)
			continue
		}
		factory.AssignID(entry, saved.ID)

		if entry.HasComponent(components.Health) && saved.Health > 0 {
			hp := components.Health.Get(entry)
			hp.Current = min(saved.Health, hp.Max)
		}
		if entry.HasComponent(components.Inventory) {
			inv := components.Inventory.Get(entry)
			inv.Value = saved.Value
			if inv.Counts == nil && len(saved.Inventory) > 0 {
				inv.Counts = make(map[string]int, len(saved.Inventory))
			}
			for name, n := range saved.Inventory {
				inv.Counts[name] = n
			}
		}
	}
}

// UpdatePersistence saves or loads the world on the save and load keys.
func UpdatePersistence(e *ecs.ECS) {
	input := getOrCreateInput(e)
	slot := cfg.C.SaveSlot

	if GetAction(input, cfg.ActionSave).JustPressed {
		if err := SaveWorld(e, slot); err != nil {
			zap.L().Warn("save failed", zap.String("slot", slot), zap.Error(err))
			SetStatus(e, "Save failed")
		} else {
			SetStatus(e, "World saved")
		}
	}
	if GetAction(input, cfg.ActionLoad).JustPressed {
		switch err := LoadWorld(e, slot); {
		case errors.Is(err, ErrNoSave):
			SetStatus(e, "Nothing saved yet")
		case err != nil:
			zap.L().Warn("load failed", zap.String("slot", slot), zap.Error(err))
			SetStatus(e, "Load failed")
		default:
			SetStatus(e, "World loaded")
		}
	}
}
