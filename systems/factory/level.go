package factory

import (
	"github.com/automoto/lozo/archetypes"
	"github.com/automoto/lozo/assets"
	"github.com/automoto/lozo/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named map, falling back to the first map available
// when name is empty or unknown.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	loader := assets.NewLevelLoader()
	names, err := loader.Names()
	if err != nil {
		return nil, err
	}

	found := false
	for _, n := range names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		name = names[0]
	}

	current, err := loader.LoadLevel(name)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		Names:        names,
	})

	return level, nil
}
