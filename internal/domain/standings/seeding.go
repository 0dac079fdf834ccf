package standings

import "sort"

// playoffFieldSize is the number of postseason berths per league:
// three division winners plus three wild cards.
const playoffFieldSize = 6

// SeedLeague ranks one league's teams into playoff seeds. Division leaders
// (divisionRank 1) take the top seeds ordered by winning percentage; the
// remaining teams fill out the field in percentage order. Ties keep
// upstream order (stable sort, no secondary key). Teams outside the field
// get a games-back-of-cutoff value measured against the 6 seed, or nil
// when the league has no 6 seed to measure against.
func SeedLeague(teams []TeamRecord) []SeededTeam {
	var leaders, rest []TeamRecord
	for _, team := range teams {
		if team.DivisionRank == 1 {
			leaders = append(leaders, team)
		} else {
			rest = append(rest, team)
		}
	}

	sortByPct(leaders)
	sortByPct(rest)

	seeded := make([]SeededTeam, 0, len(teams))
	seed := 1
	for _, team := range leaders {
		seeded = append(seeded, SeededTeam{
			TeamRecord:       team,
			Seed:             seed,
			IsDivisionLeader: true,
		})
		seed++
	}
	for _, team := range rest {
		entry := SeededTeam{TeamRecord: team, Seed: seed}
		entry.WildCardBerth = seed <= playoffFieldSize &&
			team.Clinch.Playoff && !team.Clinch.Division
		seeded = append(seeded, entry)
		seed++
	}

	cutoff, hasCutoff := cutoffTeam(seeded)
	for i := range seeded {
		if seeded[i].Seed <= playoffFieldSize {
			zero := 0.0
			seeded[i].GBPlayoffs = &zero
			continue
		}
		if !hasCutoff {
			continue
		}
		gb := gamesBack(cutoff, seeded[i].TeamRecord)
		seeded[i].GBPlayoffs = &gb
	}

	return seeded
}

func sortByPct(teams []TeamRecord) {
	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Pct > teams[j].Pct
	})
}

func cutoffTeam(seeded []SeededTeam) (TeamRecord, bool) {
	for _, team := range seeded {
		if team.Seed == playoffFieldSize {
			return team.TeamRecord, true
		}
	}
	return TeamRecord{}, false
}

// gamesBack is the standard metric against the cutoff team, clamped to
// zero so ties and rounding edges never read negative.
func gamesBack(cutoff, team TeamRecord) float64 {
	gb := (float64(cutoff.Wins-team.Wins) + float64(team.Losses-cutoff.Losses)) / 2
	if gb < 0 {
		return 0
	}
	return gb
}
