// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes poll results from raw vote rows.

Aggregate is a pure function over the fetched polls and votes: for each
poll it produces national per-option counts and percentages, the total
vote count, and a sparse map of per-state counts with each state's leading
option. The caller controls poll ordering (the store query orders by
creation time, newest first) and Aggregate preserves it.

Rules:

  - Percentages are 0 when the relevant subtotal is 0; never NaN.
  - A state appears in the map only if it has at least one vote.
  - The leading option is the argmax of a state's counts; the lowest index
    wins ties.
  - Votes whose option index is out of range are skipped and counted in
    SkippedVotes instead of aborting the aggregation.
*/
package tally
