package trajectory

import (
	"fmt"

	"github.com/tphakala/go-trajectory/internal/mathutil"
)

// Stats holds peak motion values of a sampled trajectory.
type Stats struct {
	PeakSpeed float64 // max |velocity|, from the fitted derivative
	PeakAccel float64 // max |acceleration| over the fitted segments
	PeakJerk  float64 // max |jerk| over the fitted segments
}

// Stats computes peak speed over the sample grid. Acceleration and jerk are
// taken from the fitted curve segment by segment, so they do not depend on
// the sample rate. Steps in acceleration at knots are not counted as jerk.
func (tr *Trajectory) Stats() Stats {
	s := Stats{PeakSpeed: mathutil.MaxAbs(tr.Velocities)}
	if tr.curve != nil {
		s.PeakAccel, s.PeakJerk = tr.curve.Peaks()
	}
	return s
}

// CheckLimits reports the first bound in config that the trajectory exceeds,
// in the order speed, acceleration, jerk. A bound of zero is not checked.
func (tr *Trajectory) CheckLimits(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	s := tr.Stats()
	switch {
	case config.MaxSpeed > 0 && s.PeakSpeed > config.MaxSpeed:
		return fmt.Errorf("%w: peak speed %.4g > %.4g", ErrLimitExceeded, s.PeakSpeed, config.MaxSpeed)
	case config.MaxAccel > 0 && s.PeakAccel > config.MaxAccel:
		return fmt.Errorf("%w: peak acceleration %.4g > %.4g", ErrLimitExceeded, s.PeakAccel, config.MaxAccel)
	case config.MaxJerk > 0 && s.PeakJerk > config.MaxJerk:
		return fmt.Errorf("%w: peak jerk %.4g > %.4g", ErrLimitExceeded, s.PeakJerk, config.MaxJerk)
	}
	return nil
}
