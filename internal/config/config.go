package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LightSettings describes one light added to the scene at startup
type LightSettings struct {
	Kind      string     `yaml:"kind"` // "point" or "ambient"
	Color     Color      `yaml:"color"`
	Position  [3]float32 `yaml:"position"`
	Power     float32    `yaml:"power"`
	Intensity float32    `yaml:"intensity"`
}

// Settings holds everything the backdrop reads at startup
type Settings struct {
	ModelPath      string  `yaml:"model"`
	SoundtrackPath string  `yaml:"soundtrack"`
	Volume         float64 `yaml:"volume"`
	Mute           bool    `yaml:"mute"`

	Background Color `yaml:"background"`
	WireColor  Color `yaml:"wire_color"`

	CameraFOV      float32    `yaml:"camera_fov"`
	CameraPosition [3]float32 `yaml:"camera_position"`

	// Surface sizing
	MobileHeight    int     `yaml:"mobile_height"`
	DesktopFraction float64 `yaml:"desktop_fraction"`

	// FPSLimit paces frames in software; 0 leaves pacing to vsync
	FPSLimit int `yaml:"fps_limit"`

	Lights []LightSettings `yaml:"lights"`
}

// Default returns the settings the backdrop ships with
func Default() Settings {
	return Settings{
		ModelPath:       "assets/model_2.obj",
		SoundtrackPath:  "assets/soundtrack.mp3",
		Volume:          0.1,
		Background:      0xeeeeee,
		WireColor:       0x111111,
		CameraFOV:       1,
		CameraPosition:  [3]float32{0, 0, 100},
		MobileHeight:    200,
		DesktopFraction: 0.4,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("could not unmarshal config yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the values that would otherwise break layout or playback
func (s *Settings) Validate() error {
	if s.ModelPath == "" {
		return fmt.Errorf("model path is empty")
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("volume %v out of range [0,1]", s.Volume)
	}
	if s.MobileHeight <= 0 {
		return fmt.Errorf("mobile_height must be positive, got %d", s.MobileHeight)
	}
	if s.DesktopFraction <= 0 || s.DesktopFraction > 1 {
		return fmt.Errorf("desktop_fraction %v out of range (0,1]", s.DesktopFraction)
	}
	if s.CameraFOV <= 0 || s.CameraFOV >= 180 {
		return fmt.Errorf("camera_fov %v out of range (0,180)", s.CameraFOV)
	}
	if s.FPSLimit < 0 {
		return fmt.Errorf("fps_limit must not be negative, got %d", s.FPSLimit)
	}
	for i, l := range s.Lights {
		if l.Kind != "point" && l.Kind != "ambient" {
			return fmt.Errorf("light %d: unknown kind %q", i, l.Kind)
		}
	}
	return nil
}
