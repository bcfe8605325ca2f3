package trajectory

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// fileConfig mirrors the INI layout:
//
//	[Trajectory]
//	MaxSpeed = 7
//	MaxAccel = 10
//	MaxJerk = 20
//	SampleFreq = 100
//	Order = 2
//	Depth = 2
//	Method = hermite
//	Duration = 0
//	Samples = 0
type fileConfig struct {
	Trajectory struct {
		MaxSpeed   float64
		MaxAccel   float64
		MaxJerk    float64
		SampleFreq float64
		Order      int
		Depth      int
		Method     string
		Duration   float64
		Samples    int
	}
}

// newFileConfig returns a fileConfig holding DefaultConfig values, so that
// keys absent from the file keep them.
func newFileConfig() *fileConfig {
	d := DefaultConfig()
	fc := &fileConfig{}
	s := &fc.Trajectory
	s.MaxSpeed = d.MaxSpeed
	s.MaxAccel = d.MaxAccel
	s.MaxJerk = d.MaxJerk
	s.SampleFreq = d.SampleFreq
	s.Order = d.Order
	s.Depth = d.Depth
	s.Method = d.Method.String()
	s.Duration = d.Duration
	s.Samples = d.Samples
	return fc
}

// LoadConfig reads a configuration file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	fc := newFileConfig()
	if err := gcfg.ReadFileInto(fc, path); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return fc.config()
}

// ParseConfig is like LoadConfig but reads the configuration from text.
func ParseConfig(text string) (*Config, error) {
	fc := newFileConfig()
	if err := gcfg.ReadStringInto(fc, text); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return fc.config()
}

func (fc *fileConfig) config() (*Config, error) {
	s := fc.Trajectory

	method, err := ParseMethod(s.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c := &Config{
		MaxSpeed:   s.MaxSpeed,
		MaxAccel:   s.MaxAccel,
		MaxJerk:    s.MaxJerk,
		SampleFreq: s.SampleFreq,
		Order:      s.Order,
		Depth:      s.Depth,
		Method:     method,
		Duration:   s.Duration,
		Samples:    s.Samples,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
