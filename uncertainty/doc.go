// Package uncertainty evaluates and combines statistical uncertainties of a
// response-matrix fit.
//
// [Aggregator.Compute] fans out to an external fit-function evaluator for
// the simulation-statistics and spectrum-statistics contributions inside an
// analysis window and zeroes every bin outside it. [Quadrature] and
// [Aggregator.Combine] add independent contributions in quadrature.
package uncertainty
