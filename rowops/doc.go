// Package rowops implements the elementary row operations on an augmented
// system [A | b]: Swap, Scale and Combine (with Eliminate as the subtracting
// form used by Gaussian elimination). Each returns a new System together
// with a description such as "R2 ← R2 − (1.5)·R1".
package rowops
