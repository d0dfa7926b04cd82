package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes how a mesh is shaded
type Material struct {
	Color     Color
	Wireframe bool
	Basic     bool // unlit: lights are ignored
}

// DefaultMaterial is assigned to freshly decoded meshes
func DefaultMaterial() Material {
	return Material{Color: Color{R: 1, G: 1, B: 1}}
}

// Mesh is an indexed triangle list. Vertices are interleaved position and
// normal, six floats per vertex.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	Material Material
}

// VertexCount returns the number of interleaved vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 6
}

// Object is a model placed in the scene
type Object struct {
	Name        string
	Meshes      []*Mesh
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Orientation mgl32.Quat

	// Spin accumulates every angle applied through RotateX/Y/Z, per axis
	Spin mgl32.Vec3
}

// NewObject creates an object with identity transform
func NewObject(name string, meshes ...*Mesh) *Object {
	return &Object{
		Name:        name,
		Meshes:      meshes,
		Scale:       mgl32.Vec3{1, 1, 1},
		Orientation: mgl32.QuatIdent(),
	}
}

// RotateX rotates the object around its local X axis
func (o *Object) RotateX(angle float32) {
	o.rotateOnAxis(0, angle)
}

// RotateY rotates the object around its local Y axis
func (o *Object) RotateY(angle float32) {
	o.rotateOnAxis(1, angle)
}

// RotateZ rotates the object around its local Z axis
func (o *Object) RotateZ(angle float32) {
	o.rotateOnAxis(2, angle)
}

func (o *Object) rotateOnAxis(axis int, angle float32) {
	var a mgl32.Vec3
	a[axis] = 1
	o.Orientation = o.Orientation.Mul(mgl32.QuatRotate(angle, a)).Normalize()
	o.Spin[axis] += angle
}

// SetScale scales the object uniformly
func (o *Object) SetScale(s float32) {
	o.Scale = mgl32.Vec3{s, s, s}
}

// SetMaterial replaces the material of every mesh
func (o *Object) SetMaterial(m Material) {
	for _, mesh := range o.Meshes {
		mesh.Material = m
	}
}

// Model returns translate * rotate * scale
func (o *Object) Model() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	r := o.Orientation.Mat4()
	s := mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z())
	return t.Mul4(r).Mul4(s)
}
