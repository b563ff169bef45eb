// Package route reduces surveyed line and pipeline trajectories to the
// parallel-exposure sections an interference study works on.
//
// Sectionize walks the pipeline polyline in fixed steps, measures the
// shortest separation to the overhead line at every step and averages the
// separations per pipeline segment. Each segment becomes one Section with
// its length and mean separation, ready to feed a corridor model.
//
// Coordinates are metres in a shared plan reference; Z is elevation and
// participates in the distance metric.
package route
