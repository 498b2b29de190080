package algorithms

import (
	"sort"

	"mentorlink_backend/internal/models"
)

// MatchScore calculates how well a mentor matches a mentee's interests.
//
// score = |mentor.skills ∩ mentee.interests| + |mentor.interests ∩ mentee.interests|
//
// Comparison is exact and case-sensitive, no fuzzy matching or weighting.
// Absent or empty lists count as empty sets, so the function is total and
// never returns a negative score.
func MatchScore(mentee, mentor *models.Profile) (int, []string) {
	score := 0
	reasons := []string{}

	menteeInterests := toSet(mentee.GetInterests())
	if len(menteeInterests) == 0 {
		return 0, reasons
	}

	sharedSkills := intersect(mentor.GetSkills(), menteeInterests)
	score += len(sharedSkills)
	if len(sharedSkills) > 0 {
		reasons = append(reasons, "Has skills you are interested in")
	}

	sharedInterests := intersect(mentor.GetInterests(), menteeInterests)
	score += len(sharedInterests)
	if len(sharedInterests) > 0 {
		reasons = append(reasons, "Shares your interests")
	}

	return score, reasons
}

// RankedMentor - профиль ментора вместе с рассчитанным score.
type RankedMentor struct {
	Profile *models.Profile
	Score   int
	Reasons []string
}

// RankMentors scores every candidate against the mentee and sorts best first.
// The sort is stable: equal scores keep the candidates' input order.
// Zero-score mentors are ranked last but never excluded.
func RankMentors(mentee *models.Profile, candidates []models.Profile) []RankedMentor {
	ranked := make([]RankedMentor, 0, len(candidates))
	for i := range candidates {
		score, reasons := MatchScore(mentee, &candidates[i])
		ranked = append(ranked, RankedMentor{
			Profile: &candidates[i],
			Score:   score,
			Reasons: reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// intersect возвращает элементы values, входящие в set, без дубликатов.
func intersect(values []string, set map[string]struct{}) []string {
	seen := make(map[string]struct{}, len(values))
	var common []string
	for _, v := range values {
		if _, ok := set[v]; !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		common = append(common, v)
	}
	return common
}
