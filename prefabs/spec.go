package prefabs

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/danmaku/common"
	"github.com/milk9111/danmaku/ecs/component"
)

// LoadSpec unmarshals an embedded yaml prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ArchetypeSpec is the yaml shape of one projectile archetype.
type ArchetypeSpec struct {
	Name     string   `yaml:"name"`
	Damage   int      `yaml:"damage"`
	Sprite   string   `yaml:"sprite"`
	Radius   float64  `yaml:"radius"`
	Layer    string   `yaml:"layer"`
	Mask     []string `yaml:"mask"`
	Lifetime float64  `yaml:"lifetime"` // seconds
}

// ArchetypeFile is the root of archetypes.yaml.
type ArchetypeFile struct {
	Archetypes []ArchetypeSpec `yaml:"archetypes"`
}

// Archetype is a resolved default attribute set for a projectile type.
type Archetype struct {
	Name           string
	Damage         int
	Sprite         string
	Radius         float64
	Layer          component.Layer
	Mask           component.Layer
	LifetimeFrames int
}

// DefaultArchetype is the fallback entry for unknown archetype names.
const DefaultArchetype = "default"

const archetypeFile = "archetypes.yaml"

// builtinDefault keeps fire working even when archetypes.yaml is missing or
// doesn't define a default entry.
var builtinDefault = Archetype{
	Name:           DefaultArchetype,
	Damage:         1,
	Sprite:         "bullet_round",
	Radius:         4,
	Layer:          component.LayerEnemyBullet,
	Mask:           component.LayerPlayer,
	LifetimeFrames: 10 * common.TPS,
}

var archetypes = map[string]Archetype{}

// LoadArchetypes (re)loads the archetype registry from archetypes.yaml.
// Mutated only from the tick thread; the watcher hands reload requests to
// the game loop rather than reloading from its own goroutine.
func LoadArchetypes() error {
	file, err := LoadSpec[ArchetypeFile](archetypeFile)
	if err != nil {
		return err
	}

	loaded := make(map[string]Archetype, len(file.Archetypes))
	for _, spec := range file.Archetypes {
		if spec.Name == "" {
			return fmt.Errorf("prefabs: %s: archetype with empty name", archetypeFile)
		}
		loaded[spec.Name] = Archetype{
			Name:           spec.Name,
			Damage:         spec.Damage,
			Sprite:         spec.Sprite,
			Radius:         spec.Radius,
			Layer:          component.ParseLayer(spec.Layer),
			Mask:           component.ParseMask(spec.Mask),
			LifetimeFrames: int(spec.Lifetime * common.TPS),
		}
	}
	archetypes = loaded
	return nil
}

// GetArchetype resolves a name to its archetype. Unknown names degrade to
// the default entry instead of failing: a missing visual default should not
// stop a gameplay-critical spawn. The second return is false on fallback.
func GetArchetype(name string) (Archetype, bool) {
	if a, ok := archetypes[name]; ok {
		return a, true
	}
	if name != DefaultArchetype {
		log.Printf("prefabs: unknown archetype %q, using %s", name, DefaultArchetype)
	}
	if a, ok := archetypes[DefaultArchetype]; ok {
		return a, false
	}
	return builtinDefault, false
}

// WatchArchetypes returns a watcher over the prefabs directory, or nil when
// the directory isn't on disk (release builds run purely from the embed).
func WatchArchetypes() *Watcher {
	w, err := NewWatcher("prefabs")
	if err != nil {
		log.Printf("prefabs: watch disabled: %v", err)
		return nil
	}
	return w
}
