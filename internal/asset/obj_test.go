package asset

import (
	"strings"
	"testing"
)

const cubeQuadsOBJ = `# cube
o Cube
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
vt 0 0
vn 0 0 1
usemtl Default
s off
f 1/1/1 2/1/1 3/1/1 4/1/1
f 8 7 6 5
f 4 3 7 8
f 5 6 2 1
f 2 6 7 3
f 5 1 4 8
`

func TestDecodeQuadsAreTriangulated(t *testing.T) {
	obj, err := DecodeOBJ("cube", strings.NewReader(cubeQuadsOBJ))
	if err != nil {
		t.Fatalf("Failed to decode cube: %v", err)
	}
	if len(obj.Meshes) != 1 {
		t.Fatalf("Expected 1 mesh, got %d", len(obj.Meshes))
	}
	mesh := obj.Meshes[0]
	if mesh.Name != "Cube" {
		t.Errorf("Expected mesh name 'Cube', got %q", mesh.Name)
	}
	// 6 quads -> 12 triangles -> 36 corners
	if len(mesh.Indices) != 36 {
		t.Errorf("Expected 36 indices, got %d", len(mesh.Indices))
	}
	if mesh.VertexCount() != 36 {
		t.Errorf("Expected 36 vertices, got %d", mesh.VertexCount())
	}
}

func TestDecodeUsesGivenNormals(t *testing.T) {
	obj, err := DecodeOBJ("cube", strings.NewReader(cubeQuadsOBJ))
	if err != nil {
		t.Fatalf("Failed to decode cube: %v", err)
	}
	v := obj.Meshes[0].Vertices
	// first corner of the first face uses vn 1 = (0,0,1)
	if v[3] != 0 || v[4] != 0 || v[5] != 1 {
		t.Errorf("Expected normal (0,0,1), got (%v,%v,%v)", v[3], v[4], v[5])
	}
}

func TestDecodeComputesFlatNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	obj, err := DecodeOBJ("tri", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to decode triangle: %v", err)
	}
	v := obj.Meshes[0].Vertices
	if v[3] != 0 || v[4] != 0 || v[5] != 1 {
		t.Errorf("Expected computed normal (0,0,1), got (%v,%v,%v)", v[3], v[4], v[5])
	}
}

func TestDecodeFacesWithoutGroupUseModelName(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	obj, err := DecodeOBJ("tri", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to decode triangle: %v", err)
	}
	if len(obj.Meshes) != 1 || obj.Meshes[0].Name != "tri" {
		t.Fatalf("Expected one mesh named 'tri', got %d meshes", len(obj.Meshes))
	}
	v := obj.Meshes[0].Vertices
	if v[6] != 1 || v[7] != 0 {
		t.Errorf("Expected second corner at (1,0), got (%v,%v)", v[6], v[7])
	}
}

func TestDecodeGroupsBecomeMeshes(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1
o Head
g face
f 1 2 3
g back
f 1 3 4
f 1 2 4
o Empty
`
	obj, err := DecodeOBJ("head", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to decode groups: %v", err)
	}
	if len(obj.Meshes) != 2 {
		t.Fatalf("Expected 2 meshes, got %d", len(obj.Meshes))
	}
	if obj.Meshes[0].Name != "face" || obj.Meshes[1].Name != "back" {
		t.Errorf("Unexpected mesh names %q, %q", obj.Meshes[0].Name, obj.Meshes[1].Name)
	}
	if len(obj.Meshes[1].Indices) != 6 {
		t.Errorf("Expected 6 indices in 'back', got %d", len(obj.Meshes[1].Indices))
	}
	if obj.Name != "head" {
		t.Errorf("Expected object name 'head', got %q", obj.Name)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"no faces", "v 0 0 0\n", "no faces"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nf 1 2 3\n", "out of range"},
		{"bad vertex", "v 0 zero 0\nf 1 1 1\n", "could not decode obj"},
		{"short vertex", "v 0 0\nf 1 1 1\n", "could not decode obj"},
		{"degenerate face", "v 0 0 0\nv 1 0 0\nf 1 2\n", "could not decode obj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOBJ("bad", strings.NewReader(tt.src))
			if err == nil {
				t.Fatalf("Expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDecodeMissingNormalFallsBackToFlat(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n"
	obj, err := DecodeOBJ("tri", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Failed to decode triangle: %v", err)
	}
	v := obj.Meshes[0].Vertices
	if v[3] != 0 || v[4] != 0 || v[5] != 1 {
		t.Errorf("Expected computed normal (0,0,1), got (%v,%v,%v)", v[3], v[4], v[5])
	}
}

func TestDecodeDefaultMaterial(t *testing.T) {
	obj, err := DecodeOBJ("cube", strings.NewReader(cubeQuadsOBJ))
	if err != nil {
		t.Fatalf("Failed to decode cube: %v", err)
	}
	if obj.Meshes[0].Material.Wireframe {
		t.Error("Decoded meshes should not start as wireframe")
	}
}
