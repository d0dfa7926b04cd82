package asset

import (
	"fmt"
	"io"
	"strings"

	"backdrop/internal/scene"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
)

// DecodeOBJ parses a Wavefront OBJ stream into an object with one mesh per
// "o"/"g" group. Texture coordinates, materials and smoothing groups are read
// past but not kept.
func DecodeOBJ(name string, r io.Reader) (*scene.Object, error) {
	// Faces that precede any "o"/"g" statement land in a group named after the model
	head := strings.NewReader("o " + name + "\n")
	dec, err := obj.DecodeReader(io.MultiReader(head, r), nil)
	if err != nil {
		return nil, fmt.Errorf("could not decode obj %s: %w", name, err)
	}

	o := scene.NewObject(name)
	for i := range dec.Objects {
		group := &dec.Objects[i]
		if len(group.Faces) == 0 {
			continue
		}
		mesh, err := buildMesh(dec, group)
		if err != nil {
			return nil, fmt.Errorf("could not decode obj %s: group %q: %w", name, group.Name, err)
		}
		o.Meshes = append(o.Meshes, mesh)
	}
	if len(o.Meshes) == 0 {
		return nil, fmt.Errorf("obj %s contains no faces", name)
	}
	return o, nil
}

// buildMesh fan-triangulates every face and emits unindexed-per-corner
// vertices, so faces without normals can carry their own flat normal.
func buildMesh(dec *obj.Decoder, group *obj.Object) (*scene.Mesh, error) {
	mesh := &scene.Mesh{Name: group.Name, Material: scene.DefaultMaterial()}
	positions := len(dec.Vertices) / 3
	for fi, face := range group.Faces {
		corners := make([]mgl32.Vec3, len(face.Vertices))
		for i, vi := range face.Vertices {
			if vi < 0 || vi >= positions {
				return nil, fmt.Errorf("face %d: vertex index %d out of range (have %d)", fi+1, vi+1, positions)
			}
			corners[i] = vec3At(dec.Vertices, vi)
		}
		if len(corners) < 3 {
			return nil, fmt.Errorf("face %d needs at least 3 vertices, got %d", fi+1, len(corners))
		}

		flat := faceNormal(corners[0], corners[1], corners[2])
		normal := func(i int) mgl32.Vec3 {
			if i < len(face.Normals) {
				if ni := face.Normals[i]; ni >= 0 && 3*ni+2 < len(dec.Normals) {
					return vec3At(dec.Normals, ni)
				}
			}
			return flat
		}
		for i := 1; i+1 < len(corners); i++ {
			for _, c := range [3]int{0, i, i + 1} {
				p, n := corners[c], normal(c)
				mesh.Indices = append(mesh.Indices, uint32(mesh.VertexCount()))
				mesh.Vertices = append(mesh.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
			}
		}
	}
	return mesh, nil
}

func vec3At(a []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{a[3*i], a[3*i+1], a[3*i+2]}
}

func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return n.Normalize()
}
