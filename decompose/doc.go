// SPDX-License-Identifier: EPL-2.0

// Package decompose implements the dyadic correlation matcher.
//
// Process takes a residual buffer and a basis of the same length. At every
// recursion node it correlates the node's residual segment with the node's
// basis, subtracts basis*correlation from the residual in place and records
// the same term in the output. The segment is then halved and each half is
// matched against a rescaled copy of the node's basis, one level lower.
//
//	residual: [--------------- N ---------------]   level L
//	          [------ N/2 ------][---- N-N/2 ----]   level L-1
//	          [-N/4-][--..--][-..-][----..-----]   level L-2
//
// All nodes work on disjoint ranges of one residual buffer and one output
// buffer. A parent always finishes its subtraction before its children run,
// and siblings never see each other's ranges, so the two children may run
// concurrently (see WithParallel).
//
// # Degenerate segments
//
// A segment or basis with zero variance has no defined correlation. The
// matcher treats that as a zero-confidence match: the node contributes
// nothing, its residual is left unchanged, and recursion continues. The
// Step passed to a Tracer has Degenerate set.
//
// # Odd segments
//
// When a segment has odd length its second half is one sample longer than
// its first. With SplitShared (the default) both halves are matched against
// the same basis of the first half's length and the last sample of the
// second half is not matched at that level. SplitExact rescales the basis to
// each half's own length instead.
package decompose
