package maze

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/labyrinth/internal/logger"
	"github.com/Faultbox/labyrinth/pkg/formats"
)

// Load reads an OBJ file and builds a classified mesh from it.
//
// Malformed lines are logged and skipped, so the mesh holds every triangle
// that parsed. The returned mesh is never nil: when the file cannot be read
// the error is returned alongside an empty mesh, so the game can still start.
func Load(path string, opts Options) (*Mesh, error) {
	log := logger.Named("maze")

	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		log.Error("failed to load maze geometry", zap.String("path", path), zap.Error(err))
		return Build(nil, opts), fmt.Errorf("loading maze %s: %w", path, err)
	}
	for _, w := range obj.Warnings {
		log.Warn("OBJ warning", zap.String("path", path), zap.String("warning", w))
	}

	tris, skipped := obj.Triangles()
	m := Build(tris, opts)
	m.Stats.SkippedFaces = skipped
	m.Stats.Warnings = len(obj.Warnings)

	log.Info("maze loaded",
		zap.String("path", path),
		zap.Int("vertices", len(obj.Vertices)),
		zap.Int("triangles", len(tris)),
		zap.Int("skipped_faces", skipped),
		zap.Int("floor", len(m.Floor)),
		zap.Int("walls", len(m.Walls)),
		zap.Float32("model_size", m.ModelSize),
	)
	if len(tris) == 0 {
		log.Warn("maze has no triangles, every floor query will miss", zap.String("path", path))
	}
	return m, nil
}
