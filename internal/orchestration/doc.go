// Package orchestration evaluates requests against the arbitrary-precision
// engines. It bounds each evaluation with a context and an operand size guard,
// runs comparison mode concurrently with one facade per engine, and aggregates
// the outcomes. Presentation is delegated through the ProgressReporter,
// ResultPresenter and ErrorHandler interfaces.
package orchestration
