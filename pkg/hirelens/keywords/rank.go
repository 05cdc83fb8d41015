package keywords

import "sort"

// RankedMatch is a Match annotated with the dictionary it came from.
type RankedMatch struct {
	Match
	Source string `json:"source"`
}

// TopMatches merges all category lists of one Results and returns the
// best matches by score descending, keyword ascending on ties. A limit
// of zero or less returns everything.
func TopMatches(res Results, limit int) []RankedMatch {
	var all []RankedMatch
	add := func(source string, list []Match) {
		for _, m := range list {
			all = append(all, RankedMatch{Match: m, Source: source})
		}
	}
	add("skills", res.Skills)
	add("technologies", res.Technologies)
	add("soft_skills", res.SoftSkills)
	add("industry_terms", res.IndustryTerms)
	add("seniority_levels", res.SeniorityLevels)

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Keyword < all[j].Keyword
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}
