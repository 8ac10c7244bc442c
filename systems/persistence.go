package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/gravenhold/roomgen/seeds"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for seed-record
// storage. Failure is non-fatal: saves and loads become no-ops.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// SaveDungeonRecord saves a dungeon seed record under the given name.
func SaveDungeonRecord(name string, rec seeds.DungeonSeedRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("Warning: Could not serialize seed record %q: %v", name, err)
		return err
	}

	if err := gdataManager.SaveItem(name, data); err != nil {
		log.Printf("Warning: Could not save seed record %q: %v", name, err)
		return err
	}
	return nil
}

// LoadDungeonRecord loads a saved dungeon seed record. A missing
// record returns nil without error.
func LoadDungeonRecord(name string) (*seeds.DungeonSeedRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(name)
	if err != nil {
		log.Printf("Warning: Could not load seed record %q: %v", name, err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var rec seeds.DungeonSeedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("Warning: Could not parse seed record %q: %v", name, err)
		return nil, err
	}
	if rec.SaveVersion != seeds.SaveVersion {
		log.Printf("Warning: seed record %q has save version %d, expected %d",
			name, rec.SaveVersion, seeds.SaveVersion)
	}

	return &rec, nil
}

// HasDungeonRecord returns true if a record exists under the name.
func HasDungeonRecord(name string) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(name)
	return err == nil && len(data) > 0
}

// ClearDungeonRecord removes any saved record under the name.
func ClearDungeonRecord(name string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	if err := gdataManager.SaveItem(name, nil); err != nil {
		log.Printf("Warning: Could not clear seed record %q: %v", name, err)
		return err
	}
	return nil
}
