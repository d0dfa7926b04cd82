package scene

import "github.com/go-gl/mathgl/mgl32"

type LightKind int

const (
	LightAmbient LightKind = iota
	LightPoint
)

// Light is either an ambient light (Color, Intensity) or a point light
// (Color, Position, Power).
type Light struct {
	Kind      LightKind
	Color     Color
	Position  mgl32.Vec3
	Power     float32
	Intensity float32
}

// NewPointLight creates a point light
func NewPointLight(color Color, position mgl32.Vec3, power float32) Light {
	return Light{Kind: LightPoint, Color: color, Position: position, Power: power}
}

// NewAmbientLight creates an ambient light
func NewAmbientLight(color Color, intensity float32) Light {
	return Light{Kind: LightAmbient, Color: color, Intensity: intensity}
}
