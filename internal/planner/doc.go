// Package planner decides, for every file of a class, whether it goes to the
// training or the validation subset.
//
// A single [Sampler] is seeded once per run and drawn once per class, in
// class listing order, so a fixed seed over an unchanged source tree always
// yields the same assignment.
package planner
