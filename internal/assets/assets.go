// Package assets turns model files into entity geometry. Loading needs an
// open raylib window; the headless runner uses the built-in catalog shapes.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"

	"astrocore/internal/entity"
)

// ErrEmptyModel is returned for a model file without any triangles.
var ErrEmptyModel = errors.New("model has no triangles")

var manager = struct {
	sync.Mutex
	models     map[string]rl.Model
	geometries map[string]entity.Geometry
}{
	models:     map[string]rl.Model{},
	geometries: map[string]entity.Geometry{},
}

// LoadModel loads a model once and returns the cached copy afterwards.
func LoadModel(path string) (rl.Model, error) {
	manager.Lock()
	defer manager.Unlock()
	return loadModel(path)
}

func loadModel(path string) (rl.Model, error) {
	if model, ok := manager.models[path]; ok {
		return model, nil
	}
	if _, err := os.Stat(path); err != nil {
		return rl.Model{}, fmt.Errorf("load model: %w", err)
	}
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) {
		return rl.Model{}, fmt.Errorf("load model %s: unsupported format", path)
	}
	manager.models[path] = model
	return model, nil
}

// LoadGeometry returns the chunks of the model at path, one per mesh. The
// result is cached per path; callers get their own copy.
func LoadGeometry(path string) (entity.Geometry, error) {
	manager.Lock()
	defer manager.Unlock()

	if g, ok := manager.geometries[path]; ok {
		return g.Clone(), nil
	}
	model, err := loadModel(path)
	if err != nil {
		return entity.Geometry{}, err
	}
	g := GeometryFromModel(model, filepath.Base(path))
	if g.Empty() {
		return entity.Geometry{}, fmt.Errorf("%s: %w", path, ErrEmptyModel)
	}
	manager.geometries[path] = g
	return g.Clone(), nil
}

// GeometryFromModel extracts the triangles of every mesh of model. Chunks are
// named name#index, in mesh order.
func GeometryFromModel(model rl.Model, name string) entity.Geometry {
	var g entity.Geometry
	if model.MeshCount == 0 || model.Meshes == nil {
		return g
	}
	meshes := unsafe.Slice(model.Meshes, model.MeshCount)
	for i, mesh := range meshes {
		g.Chunks = append(g.Chunks, entity.Chunk{
			Name:      fmt.Sprintf("%s#%d", name, i),
			Triangles: meshTriangles(mesh),
		})
	}
	return g
}

func meshTriangles(mesh rl.Mesh) []entity.Triangle {
	if mesh.Vertices == nil || mesh.VertexCount == 0 {
		return nil
	}
	vertices := unsafe.Slice(mesh.Vertices, mesh.VertexCount*3)
	vertex := func(i int32) rl.Vector3 {
		return rl.Vector3{X: vertices[i*3+0], Y: vertices[i*3+1], Z: vertices[i*3+2]}
	}

	var tris []entity.Triangle
	if mesh.Indices != nil {
		// Indexed mesh
		indices := unsafe.Slice(mesh.Indices, mesh.TriangleCount*3)
		for i := int32(0); i < mesh.TriangleCount; i++ {
			tris = append(tris, entity.Triangle{
				vertex(int32(indices[i*3+0])),
				vertex(int32(indices[i*3+1])),
				vertex(int32(indices[i*3+2])),
			})
		}
		return tris
	}

	// Non-indexed mesh (every 3 vertices = 1 triangle)
	for i := int32(0); i < mesh.VertexCount/3; i++ {
		tris = append(tris, entity.Triangle{vertex(i*3 + 0), vertex(i*3 + 1), vertex(i*3 + 2)})
	}
	return tris
}

// Unload releases every cached model.
func Unload() {
	manager.Lock()
	defer manager.Unlock()

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}
	manager.models = map[string]rl.Model{}
	manager.geometries = map[string]entity.Geometry{}
}
