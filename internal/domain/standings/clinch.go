package standings

import "strings"

// Indicator codes the upstream attaches to clinched teams:
// z = best league record, y = division, x = postseason, w = wild card.
const (
	indicatorBestRecord = "z"
	indicatorDivision   = "y"
	indicatorPostseason = "x"
	indicatorWildCard   = "w"
)

// InterpretClinch reduces the mixed raw clinch signals into two booleans.
// The booleans and the letter code are OR-ed together because upstream
// populates either inconsistently depending on season and timing. Total
// over all inputs; missing fields read as false/empty.
func InterpretClinch(sig ClinchSignals) ClinchFlags {
	code := strings.ToLower(strings.TrimSpace(sig.ClinchIndicator))

	division := sig.DivisionChamp ||
		code == indicatorDivision || code == indicatorBestRecord

	playoff := sig.Clinched || sig.HasWildcard ||
		code == indicatorPostseason || code == indicatorDivision ||
		code == indicatorBestRecord || code == indicatorWildCard

	return ClinchFlags{Division: division, Playoff: playoff}
}

// WildCardBadge reports whether the standings view should show the
// wild-card badge: a playoff clinch that is not a division clinch, so a
// team never carries both badges.
func WildCardBadge(flags ClinchFlags) bool {
	return flags.Playoff && !flags.Division
}
