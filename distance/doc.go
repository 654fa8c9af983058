// Package distance provides the Euclidean distance used for winner selection.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b) // checks lengths
//	d = distance.L2(a, b)              // caller guarantees equal lengths
//	sq := distance.SquaredL2(a, b)     // same ordering, no square root
package distance
