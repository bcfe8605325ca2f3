// Package trajectory generates 1-D reference trajectories from a handful of
// waypoints.
//
// A trajectory is produced in four steps:
//
//	waypoints -> duration -> time grids -> augmented control points -> fitted curve
//
// The duration comes from [ComputeRefTime]. Waypoints are spread evenly over
// that duration and the curve is sampled at [Config.SampleFreq].
// [AppendDerivatives] pins the derivatives of the points near each end of the
// sequence to zero so the fitted curve starts and stops smoothly, while the
// interior points are left free to bend.
//
// # Quick Start
//
//	traj, err := trajectory.Generate([]float64{0, 2, 8, 15, 10, 22, -1, -5, 0}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for i, t := range traj.Times {
//	    fmt.Println(t, traj.Positions[i])
//	}
//
// For repeated use, build a [Generator] once:
//
//	cfg := trajectory.DefaultConfig()
//	cfg.Order, cfg.Depth = 2, 2
//	g, err := trajectory.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	traj, err := g.Generate(waypoints)
//
// # Control Points
//
// [ControlPoint] is a tagged variant. Points within [Config.Depth] indices of
// either end are [KindDerivatives] vectors [p, 0, ..., 0] carrying
// [Config.Order] zero derivatives. Interior points are [KindScalar]. A scalar's
// [ControlPoint.Values] is the one-element vector [p], so code expecting every
// entry wrapped in a vector sees identical numbers.
//
// # Fit Methods
//
// The curve itself is fitted by gonum's interp package. [MethodHermite] is the
// only method that consumes the derivative constraints; the other methods are
// spline alternatives that fit the waypoint values alone.
//
// # Duration Formula
//
// [ComputeRefTime] evaluates sum |p[i] - p[i+1]/maxSpeed|. Only the second
// term of each pair is divided by the speed bound, so the result is not a
// physical traversal time. The formula is kept for compatibility with existing
// trajectories. Set [Config.Duration] to override it.
//
// # Thread Safety
//
// A [Generator] is immutable after [New] and safe for concurrent use.
package trajectory
