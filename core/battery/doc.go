// Package battery implements the battery state model and its derived
// metrics: available capacity, range prediction, charging time, degradation
// estimation, EV versus ICE cost comparison and charging recommendations.
// All computations are pure functions over a Pack value.
package battery
