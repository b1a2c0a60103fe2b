package rules

import "fmt"

// Default mixing probabilities when chaos mode is switched on without
// explicit values.
const (
	DefaultCustomRuleProb    = 0.3
	DefaultRandomOutcomeProb = 0.1
)

// ChaosConfig controls the probabilistic mixing of rule variants. When
// disabled, the custom color rules always apply.
type ChaosConfig struct {
	Enabled bool

	// CustomRuleProb is the chance a cell uses the custom color rules
	// instead of the original monochrome rules.
	CustomRuleProb float64

	// RandomOutcomeProb is the chance a cell gets a fully random outcome,
	// bypassing both rule tables.
	RandomOutcomeProb float64
}

// Validate rejects probabilities outside [0,1].
func (c ChaosConfig) Validate() error {
	if c.CustomRuleProb < 0 || c.CustomRuleProb > 1 {
		return fmt.Errorf("custom rule probability must be in [0,1], got %f", c.CustomRuleProb)
	}
	if c.RandomOutcomeProb < 0 || c.RandomOutcomeProb > 1 {
		return fmt.Errorf("random outcome probability must be in [0,1], got %f", c.RandomOutcomeProb)
	}
	return nil
}

// Presets are the named chaos configurations.
var Presets = map[string]ChaosConfig{
	"off":    {},
	"low":    {Enabled: true, CustomRuleProb: 0.2, RandomOutcomeProb: 0.05},
	"medium": {Enabled: true, CustomRuleProb: 0.5, RandomOutcomeProb: 0.1},
	"high":   {Enabled: true, CustomRuleProb: 0.8, RandomOutcomeProb: 0.2},
}

// GetPreset looks up a named chaos configuration.
func GetPreset(name string) (ChaosConfig, bool) {
	c, ok := Presets[name]
	return c, ok
}

// ListPresets returns the preset names in a fixed order.
func ListPresets() []string {
	return []string{"off", "low", "medium", "high"}
}
