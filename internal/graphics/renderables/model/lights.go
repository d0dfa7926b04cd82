package model

import "backdrop/internal/scene"

// MaxPointLights matches MAX_POINT_LIGHTS in model.frag
const MaxPointLights = 8

type lightUniforms struct {
	ambient   scene.Color
	count     int
	positions []float32
	colors    []float32
	powers    []float32
}

// collectLights packs the scene lights into uniform-ready slices. Point
// lights past MaxPointLights are dropped.
func collectLights(s *scene.Scene) lightUniforms {
	u := lightUniforms{ambient: s.Ambient()}
	for _, l := range s.PointLights() {
		if u.count == MaxPointLights {
			break
		}
		u.positions = append(u.positions, l.Position.X(), l.Position.Y(), l.Position.Z())
		u.colors = append(u.colors, l.Color.R, l.Color.G, l.Color.B)
		u.powers = append(u.powers, l.Power)
		u.count++
	}
	return u
}
