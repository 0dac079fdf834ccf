package standings

import "strings"

// divisionShortNames maps the six standard division ids to display labels.
var divisionShortNames = map[int]string{
	200: "AL West",
	201: "AL East",
	202: "AL Central",
	203: "NL West",
	204: "NL East",
	205: "NL Central",
}

// DivisionLabel resolves a short display label for a division. Resolution
// order: the known id table, AL/NL shortening of the division's own name,
// the same shortening of the league name, then a generic literal.
func DivisionLabel(divisionID int, divisionName, leagueName string) string {
	if label, ok := divisionShortNames[divisionID]; ok {
		return label
	}
	if label := shortenLeaguePrefix(divisionName); label != "" {
		return label
	}
	if label := shortenLeaguePrefix(leagueName); label != "" {
		return label
	}
	return "Division"
}

func shortenLeaguePrefix(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = strings.Replace(name, "American League", "AL", 1)
	name = strings.Replace(name, "National League", "NL", 1)
	return name
}
