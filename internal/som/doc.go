// Package som implements the competitive learning engine of a Kohonen-style map.
//
// A WeightStore holds K neuron weight vectors of dimension D. Training draws
// patterns uniformly with replacement from a dataset, selects the closest
// neuron by Euclidean distance and pulls it (hard competition) or every neuron
// (soft competition) toward the pattern.
//
// The package is synchronous and performs no locking; callers serialize access
// to a store. All randomness comes from an injected Source.
package som
