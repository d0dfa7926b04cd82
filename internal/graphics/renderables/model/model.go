package model

import (
	"embed"

	"backdrop/internal/graphics"
	renderer "backdrop/internal/graphics/renderer"
	"backdrop/internal/profiling"
	"backdrop/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed shaders/model.vert shaders/model.frag
var shaders embed.FS

const (
	ModelVertShader = "shaders/model.vert"
	ModelFragShader = "shaders/model.frag"
)

// gpuMesh holds the buffers of one uploaded scene mesh
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// Model draws every object in the scene, uploading meshes the first time
// they are seen.
type Model struct {
	shader *graphics.Shader
	meshes map[*scene.Mesh]*gpuMesh
}

// NewModel creates a new model renderable
func NewModel() *Model {
	return &Model{meshes: make(map[*scene.Mesh]*gpuMesh)}
}

// Init compiles the model shader
func (m *Model) Init() error {
	var err error
	m.shader, err = graphics.NewShader(shaders, ModelVertShader, ModelFragShader)
	return err
}

// Render draws all scene objects
func (m *Model) Render(ctx renderer.RenderContext) {
	if len(ctx.Scene.Objects) == 0 {
		return
	}
	defer profiling.Track("renderer.model")()

	m.shader.Use()
	m.shader.SetMatrix4("proj", &ctx.Proj[0])
	m.shader.SetMatrix4("view", &ctx.View[0])

	lights := collectLights(ctx.Scene)
	m.shader.SetVector3("ambient", lights.ambient.R, lights.ambient.G, lights.ambient.B)
	m.shader.SetInt("pointLightCount", int32(lights.count))
	m.shader.SetVector3Array("pointLightPos", lights.positions)
	m.shader.SetVector3Array("pointLightColor", lights.colors)
	m.shader.SetFloatArray("pointLightPower", lights.powers)

	for _, obj := range ctx.Scene.Objects {
		model := obj.Model()
		m.shader.SetMatrix4("model", &model[0])
		for _, mesh := range obj.Meshes {
			m.drawMesh(mesh)
		}
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the model pass only depends on the camera matrices
func (m *Model) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (m *Model) Dispose() {
	for key, gm := range m.meshes {
		gl.DeleteVertexArrays(1, &gm.vao)
		gl.DeleteBuffers(1, &gm.vbo)
		gl.DeleteBuffers(1, &gm.ebo)
		delete(m.meshes, key)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}

func (m *Model) drawMesh(mesh *scene.Mesh) {
	gm, ok := m.meshes[mesh]
	if !ok {
		gm = upload(mesh)
		m.meshes[mesh] = gm
	}
	if gm.count == 0 {
		return
	}

	mat := mesh.Material
	m.shader.SetVector3("color", mat.Color.R, mat.Color.G, mat.Color.B)
	m.shader.SetBool("lit", !mat.Basic)
	if mat.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(gm.vao)
	gl.DrawElements(gl.TRIANGLES, gm.count, gl.UNSIGNED_INT, nil)
}

func upload(mesh *scene.Mesh) *gpuMesh {
	gm := &gpuMesh{count: int32(len(mesh.Indices))}
	if gm.count == 0 || len(mesh.Vertices) == 0 {
		gm.count = 0
		return gm
	}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*4, gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	gl.BindVertexArray(0)
	return gm
}
