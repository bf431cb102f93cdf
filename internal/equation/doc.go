// Package equation defines the fixed initial-value problem
//
//	y' = 3y - x·y^(1/3)
//
// and its closed-form solution for an initial condition y(x0) = y0:
//
//	C = (y0^(2/3) - x0/3 - 1/6) / exp(2·x0)
//	y(x) = (x/3 + 1/6 + exp(2x)·C)^(3/2)
//
// Fractional powers use [math.Pow], so a negative base evaluates to NaN.
// Callers decide how to surface that; see [dynamo.ErrDomainFault].
package equation
