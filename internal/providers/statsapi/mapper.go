package statsapi

import (
	"fmt"
	"strconv"
	"strings"

	"mlb-scores-service/internal/domain/games"
	"mlb-scores-service/internal/domain/standings"
)

func mapGame(g gameResponse) games.GameSummary {
	status := g.Status.DetailedState
	inning := g.Linescore.CurrentInning

	return games.GameSummary{
		ID:           g.GamePk,
		StartTime:    g.GameDate,
		Status:       status,
		StatusDetail: games.StatusDetail(status, inning, g.Linescore.IsTopInning),
		Venue:        g.Venue.Name,
		DoubleHeader: isDoubleHeader(g.DoubleHeader),
		GameNumber:   g.GameNumber,
		Inning:       inning,
		IsTopInning:  g.Linescore.IsTopInning,
		IsFinal:      games.IsFinalStatus(status),
		IsLive:       games.IsLiveStatus(status),
		Home:         mapTeamSide(g.Teams.Home, g.Linescore.Teams.Home, "Home"),
		Away:         mapTeamSide(g.Teams.Away, g.Linescore.Teams.Away, "Away"),
	}
}

func mapTeamSide(side gameTeam, line linescoreSide, fallback string) games.TeamSide {
	abbr := side.Team.Abbreviation
	if abbr == "" {
		abbr = side.Team.TeamName
	}
	if abbr == "" {
		abbr = fallback
	}

	record := ""
	if side.LeagueRecord.Wins > 0 || side.LeagueRecord.Losses > 0 {
		record = fmt.Sprintf("%d-%d", side.LeagueRecord.Wins, side.LeagueRecord.Losses)
	}

	return games.TeamSide{
		ID:           side.Team.ID,
		Name:         side.Team.Name,
		Abbreviation: abbr,
		Record:       record,
		Score:        resolveScore(side.Score, line.Runs),
	}
}

// resolveScore prefers the explicit team score, falls back to linescore
// runs, and otherwise stays nil. Absent is never coerced to zero.
func resolveScore(score, runs *int) *int {
	if score != nil {
		v := *score
		return &v
	}
	if runs != nil {
		v := *runs
		return &v
	}
	return nil
}

// "Y" is a traditional double-header, "S" a split one.
func isDoubleHeader(code string) bool {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "Y", "S":
		return true
	default:
		return false
	}
}

func mapStandings(payload standingsResponse) []standings.LeagueStandings {
	var leagues []standings.LeagueStandings
	index := make(map[int]int)

	for _, group := range payload.Records {
		id := group.League.ID
		pos, ok := index[id]
		if !ok {
			leagues = append(leagues, standings.LeagueStandings{
				LeagueID: id,
				League:   leagueLabel(id, group.League.Name),
			})
			pos = len(leagues) - 1
			index[id] = pos
		}

		division := standings.DivisionStanding{
			Label: standings.DivisionLabel(group.Division.ID, divisionName(group.Division), group.League.Name),
		}
		for _, tr := range group.TeamRecords {
			rec := mapTeamRecord(tr)
			division.Teams = append(division.Teams, rec)
			leagues[pos].Teams = append(leagues[pos].Teams, rec)
		}
		leagues[pos].Divisions = append(leagues[pos].Divisions, division)
	}

	return leagues
}

func mapTeamRecord(tr teamRecordResponse) standings.TeamRecord {
	flags := standings.InterpretClinch(standings.ClinchSignals{
		DivisionChamp:   tr.DivisionChamp,
		Clinched:        tr.Clinched,
		HasWildcard:     tr.HasWildcard,
		ClinchIndicator: tr.ClinchIndicator,
	})

	rank, _ := strconv.Atoi(strings.TrimSpace(tr.DivisionRank))

	return standings.TeamRecord{
		TeamID:       tr.Team.ID,
		Name:         tr.Team.Name,
		Abbreviation: tr.Team.Abbreviation,
		Wins:         tr.Wins,
		Losses:       tr.Losses,
		Pct:          parsePct(tr.WinningPercentage, tr.Wins, tr.Losses),
		PctText:      formatPct(tr.WinningPercentage, tr.Wins, tr.Losses),
		GamesBack:    tr.GamesBack,
		DivisionRank: rank,
		Clinch:       flags,
		WildCard:     standings.WildCardBadge(flags),
	}
}

func parsePct(text string, wins, losses int) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		return v
	}
	if total := wins + losses; total > 0 {
		return float64(wins) / float64(total)
	}
	return 0
}

// formatPct renders the baseball-style percentage (".586"), preferring
// upstream text when present.
func formatPct(text string, wins, losses int) string {
	text = strings.TrimSpace(text)
	if text != "" {
		return text
	}
	formatted := fmt.Sprintf("%.3f", parsePct("", wins, losses))
	return strings.TrimPrefix(formatted, "0")
}

func divisionName(d divisionResponse) string {
	if d.NameShort != "" {
		return d.NameShort
	}
	return d.Name
}

func leagueLabel(id int, name string) string {
	switch id {
	case americanLeagueID:
		return "AL"
	case nationalLeagueID:
		return "NL"
	}
	name = strings.Replace(name, "American League", "AL", 1)
	return strings.Replace(name, "National League", "NL", 1)
}
