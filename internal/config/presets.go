package config

// Presets are named run configurations per pattern kind. Unset fields fall
// back to the defaults when resolved via GetPreset.
var Presets = map[string]map[string]*Config{
	"mandelbrot": {
		"classic": {
			Pattern: PatternConfig{
				Kind: "mandelbrot",
				XMin: -2.5, XMax: 1.0, YMin: -1.5, YMax: 1.5,
				MaxIter: 30, Threshold: 8,
			},
		},
		"wide": {
			Pattern: PatternConfig{
				Kind: "mandelbrot",
				XMin: -2.5, XMax: 1.5, YMin: -2.0, YMax: 2.0,
				MaxIter: 50, Threshold: 10,
			},
		},
	},
	"julia": {
		"classic": {
			Pattern: PatternConfig{
				Kind:  "julia",
				CReal: -0.7, CImag: 0.27015,
				XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
				MaxIter: 30, Threshold: 8,
			},
		},
		"swirl": {
			Pattern: PatternConfig{
				Kind:  "julia",
				CReal: -0.8, CImag: 0.156,
				XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
				MaxIter: 50, Threshold: 10,
			},
		},
	},
	"random": {
		"sparse": {
			Pattern: PatternConfig{Kind: "random", Density: 0.15},
		},
		"dense": {
			Pattern: PatternConfig{Kind: "random", Density: 0.45},
		},
		"storm": {
			Pattern: PatternConfig{Kind: "random", Density: 0.3},
			Chaos:   ChaosSettings{Preset: "high"},
		},
	},
}

// GetPreset resolves a named preset into a complete configuration: defaults
// overlaid with the preset's pattern and chaos settings.
func GetPreset(kind, name string) *Config {
	kindPresets, ok := Presets[kind]
	if !ok {
		return nil
	}
	p, ok := kindPresets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	pattern := p.Pattern
	if pattern.Color == "" {
		pattern.Color = cfg.Pattern.Color
	}
	if pattern.Density == 0 {
		pattern.Density = cfg.Pattern.Density
	}
	cfg.Pattern = pattern
	if p.Chaos != (ChaosSettings{}) {
		cfg.Chaos = p.Chaos
	}
	return cfg
}

// ListPresets returns the preset names for a pattern kind in a fixed order.
func ListPresets(kind string) []string {
	switch kind {
	case "mandelbrot":
		return []string{"classic", "wide"}
	case "julia":
		return []string{"classic", "swirl"}
	case "random":
		return []string{"sparse", "dense", "storm"}
	}
	return nil
}
