package trajectory

// Default motion limits
const (
	DefaultMaxSpeed   = 7.0   // [m/s]
	DefaultMaxAccel   = 10.0  // [m/s^2]
	DefaultMaxJerk    = 20.0  // [m/s^3]
	DefaultSampleFreq = 100.0 // [Hz]
)

// Default augmentation parameters
const (
	DefaultOrder = 1
	DefaultDepth = 1
)

// Waypoint limits
const (
	minWaypoints = 2 // Fewer waypoints cannot span a time interval
)
