// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"github.com/frous/statepoll/models"
)

// Aggregate turns flat poll and vote lists into display-ready results:
// national per-option counts and percentages, total votes, and sparse
// per-state counts with each state's leading option.
//
// Pure function: no I/O, inputs are not mutated, and the input poll order
// is preserved in the output. Votes that reference a poll that is not in
// polls are ignored; votes whose option index is out of range for their
// poll are skipped and reported via SkippedVotes rather than failing the
// whole aggregation.
func Aggregate(polls []models.Poll, votes []models.Vote) []models.PollResult {
	// Group votes by poll in one pass
	votesByPoll := make(map[string][]models.Vote, len(polls))
	for _, v := range votes {
		votesByPoll[v.PollID] = append(votesByPoll[v.PollID], v)
	}

	results := make([]models.PollResult, len(polls))
	for i, poll := range polls {
		results[i] = aggregatePoll(poll, votesByPoll[poll.ID])
	}

	return results
}

func aggregatePoll(poll models.Poll, votes []models.Vote) models.PollResult {
	n := len(poll.Options)

	nationalCounts := make([]int, n)
	stateCounts := make(map[string][]int)
	skipped := 0

	for _, v := range votes {
		if v.OptionIndex < 0 || v.OptionIndex >= n {
			// Corrupt row; never fatal
			skipped++
			continue
		}

		nationalCounts[v.OptionIndex]++

		counts, ok := stateCounts[v.Region]
		if !ok {
			counts = make([]int, n)
			stateCounts[v.Region] = counts
		}
		counts[v.OptionIndex]++
	}

	total := 0
	for _, c := range nationalCounts {
		total += c
	}

	nationalPercent := make([]float64, n)
	for i, c := range nationalCounts {
		nationalPercent[i] = Percent(c, total)
	}

	stateResults := make(map[string]models.StateResult, len(stateCounts))
	for state, counts := range stateCounts {
		stateTotal := 0
		for _, c := range counts {
			stateTotal += c
		}
		stateResults[state] = models.StateResult{
			Counts:        counts,
			TotalVotes:    stateTotal,
			LeadingOption: Leading(counts),
		}
	}

	return models.PollResult{
		Poll:            poll,
		NationalCounts:  nationalCounts,
		NationalPercent: nationalPercent,
		TotalVotes:      total,
		StateResults:    stateResults,
		SkippedVotes:    skipped,
	}
}

// Percent returns count/total as a percentage, and 0 when total is 0 so
// empty polls never produce NaN.
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Leading returns the index of the largest count. Ties are deterministic:
// the lowest index achieving the maximum wins. Returns 0 for an all-zero
// slice and -1 only when counts is empty.
func Leading(counts []int) int {
	if len(counts) == 0 {
		return -1
	}

	leading := 0
	for i, c := range counts {
		if c > counts[leading] {
			leading = i
		}
	}
	return leading
}
