package scene

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-hittables/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human-readable name
	Description string // One-line description
}

type sceneBuilder func(sampler core.Sampler, logger core.Logger) *Scene

var builtinScenes = map[string]struct {
	info  SceneInfo
	build sceneBuilder
}{
	"cornell-smoke": {
		info: SceneInfo{
			ID:          "cornell-smoke",
			DisplayName: "Cornell Smoke",
			Description: "Cornell box with two rotated blocks of smoke",
		},
		build: NewCornellSmokeScene,
	},
	"fog-spheres": {
		info: SceneInfo{
			ID:          "fog-spheres",
			DisplayName: "Fog Spheres",
			Description: "Spheres and a pyramid in a textured fog bank",
		},
		build: NewFogSpheresScene,
	},
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, entry := range builtinScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes
}

// NewSceneByID builds the scene registered under id
func NewSceneByID(id string, sampler core.Sampler, logger core.Logger) (*Scene, error) {
	entry, ok := builtinScenes[id]
	if !ok {
		ids := make([]string, 0, len(builtinScenes))
		for _, info := range ListScenes() {
			ids = append(ids, info.ID)
		}
		return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(ids, ", "))
	}
	return entry.build(sampler, logger), nil
}
