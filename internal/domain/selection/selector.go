package selection

import (
	"bytes"
	"sort"
	"time"

	"github.com/djsutherland/chips-with-friends/internal/domain/card"
	"github.com/djsutherland/chips-with-friends/internal/domain/usage"

	"github.com/google/uuid"
)

// Thresholds are the ascending reward tiers: reaching one of these counted
// use totals within a month earns the tier's reward.
var Thresholds = []int{3, 5, 8, 11}

const (
	// MonthlyUseCap is the counted-use total at which a card stops being
	// pushed for the rest of the month.
	MonthlyUseCap = 11

	// unreachablePenalty is added to usesLeft when the next tier cannot be
	// reached even with daily use for the rest of the month.
	unreachablePenalty = 10
)

// Candidate is the selector's view of one card: its urgency and its counted
// use total for the current month.
type Candidate struct {
	CardID     uuid.UUID
	Status     card.Status
	MonthCount int
}

// Score is the closeness-to-threshold score for a month count: the negated
// number of uses needed to reach the next reward tier, penalized when the
// tier is out of reach this month. Higher is better.
func Score(monthCount, daysLeft int) int {
	usesLeft := nextThreshold(monthCount) - monthCount
	if usesLeft > daysLeft {
		usesLeft += unreachablePenalty
	}
	return -usesLeft
}

// UsesToNextReward is the number of further counted uses needed before the
// card's next reward tier. Zero once the month count is past every tier.
func UsesToNextReward(monthCount int) int {
	return nextThreshold(monthCount) - monthCount
}

// nextThreshold finds the smallest threshold strictly greater than count.
// A count past every tier maps to itself, so usesLeft becomes zero: the
// card is scored as immediately about to give a reward and stays eligible.
func nextThreshold(count int) int {
	i := sort.SearchInts(Thresholds, count+1)
	if i == len(Thresholds) {
		return count
	}
	return Thresholds[i]
}

// Pick chooses the card to issue the next use for.
//
// Cards already used today are excluded outright, then cards at the monthly
// cap. Among what is left the winner maximizes worst status first, then the
// closeness score; remaining ties break to the smallest card id so repeated
// calls with identical input pick the same card. ok is false when nothing
// is eligible, which is a legitimate outcome rather than an error.
func Pick(today time.Time, candidates []Candidate, usedToday map[uuid.UUID]struct{}) (Candidate, bool) {
	daysLeft := usage.DaysLeftInMonth(today)

	var best Candidate
	found := false
	for _, c := range candidates {
		if _, used := usedToday[c.CardID]; used {
			continue
		}
		if c.MonthCount >= MonthlyUseCap {
			continue
		}
		if !found || beats(c, best, daysLeft) {
			best = c
			found = true
		}
	}
	return best, found
}

func beats(a, b Candidate, daysLeft int) bool {
	if a.Status != b.Status {
		return a.Status > b.Status
	}
	sa, sb := Score(a.MonthCount, daysLeft), Score(b.MonthCount, daysLeft)
	if sa != sb {
		return sa > sb
	}
	return bytes.Compare(a.CardID[:], b.CardID[:]) < 0
}
