package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/log"
)

// ErrUnknownScene is returned by New for names that are not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

var logger = log.New("scene")

// Builder constructs a scene. Scenes with random layouts derive it from seed.
type Builder func(seed int64) (*Scene, error)

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
}

type entry struct {
	info  SceneInfo
	build Builder
}

// Listed in the order they are shown to users
var registry = []entry{
	{SceneInfo{"two-spheres", "Two diffuse spheres under a sky gradient"}, NewTwoSpheresScene},
	{SceneInfo{"materials", "Diffuse sphere between two fuzzy metal spheres"}, NewMaterialsScene},
	{SceneInfo{"glass", "Hollow glass sphere with defocus blur"}, NewGlassScene},
	{SceneInfo{"cover", "Random field of small spheres around three large ones"}, NewCoverScene},
}

// List returns all built-in scenes
func List() []SceneInfo {
	infos := make([]SceneInfo, len(registry))
	for i, e := range registry {
		infos[i] = e.info
	}
	return infos
}

// Names returns the names of all built-in scenes
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.info.Name
	}
	return names
}

// Lookup returns the description of the named scene
func Lookup(name string) (SceneInfo, bool) {
	for _, e := range registry {
		if e.info.Name == name {
			return e.info, true
		}
	}
	return SceneInfo{}, false
}

// New builds the named scene
func New(name string, seed int64) (*Scene, error) {
	for _, e := range registry {
		if e.info.Name != name {
			continue
		}
		s, err := e.build(seed)
		if err != nil {
			return nil, fmt.Errorf("building scene %q: %w", name, err)
		}
		logger.Debugf("built scene %q with %d objects", name, s.ObjectCount())
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
