// Package pipeline drives the two-stage batch computation for one power of 2
// at a time.
//
// Stage 1 (GenerateGraphs) builds one field graph per nontrivial factor n of
// 2^power − 1, with an edge {x, y} whenever x − y is a nonzero n-th power.
// Stage 2 (CheckGraphs) tests each graph for connectivity and, if connected,
// strong regularity. Stage 2 starts only after every stage-1 task has
// finished.
//
// Both stages fan out on an errgroup with a bounded worker count. Tasks never
// return errors to the group, so one failure never cancels its siblings;
// instead every task fills its own result slot with a record or a failure.
// Panics are recovered into failures and each task may carry a timeout.
//
// Run chains the stages over a sweep of powers, writes result lines through
// package report and returns a Summary.
package pipeline
