// Package dynamo provides the core value types shared by the numerical
// packages:
//
//   - [Problem]: initial condition, interval and step-count range
//   - [Grid]: evenly spaced abscissae built by [Linspace]
//   - [Series]: values aligned index-for-index with a grid
//   - [DomainError]: location of a NaN produced outside the equation's domain
//
// All types have value semantics. Functions in this package and its
// consumers never mutate a Grid or Series after returning it.
package dynamo
