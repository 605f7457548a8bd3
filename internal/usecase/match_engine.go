package usecase

import (
	"sort"

	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/skill"
)

// RankPostings scores every posting against the user's skills and sorts the
// results by match percent, highest first. Postings with equal scores keep
// their catalog order.
func RankPostings(userSkills []string, postings []domain.Posting) []domain.MatchResult {
	owned := skill.NormalizedSet(userSkills)

	results := make([]domain.MatchResult, 0, len(postings))
	for _, p := range postings {
		results = append(results, domain.MatchResult{
			PostingID:    p.ID,
			Title:        p.Title(),
			MatchPercent: MatchPercent(p.RequiredSkills(), owned),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercent > results[j].MatchPercent
	})
	return results
}

// MatchPercent is the share of required entries present in owned, rounded
// half up. Duplicate required entries are counted each time. An empty
// requirement list scores 0.
func MatchPercent(required []string, owned map[string]struct{}) int {
	n := len(required)
	if n == 0 {
		return 0
	}
	matched := 0
	for _, r := range required {
		if _, ok := owned[skill.Normalize(r)]; ok {
			matched++
		}
	}
	// round(matched/n*100) in integers: floor((200*matched + n) / 2n)
	return (200*matched + n) / (2 * n)
}
