package strategy

import "github.com/scorelens/scorelens/pkg/credit"

// bureauProfiles holds the per-bureau tactics reference data.
var bureauProfiles = map[credit.Bureau]BureauProfile{
	credit.BureauExperian: {
		Bureau: credit.BureauExperian,
		Name:   "Experian",
		Weaknesses: []string{
			"Relies heavily on e-OSCAR code matching; detailed written disputes fall outside the automation and draw human review.",
			"Historically the quickest to delete when a furnisher misses the 30-day investigation window.",
		},
		Tactics: []string{
			"Mail disputes with certified return receipt; portal disputes strip the supporting documentation.",
			"After any verification, demand the method of verification under FCRA §611(a)(7).",
			"Dispute with the furnisher in parallel so the two responses can be cross-checked.",
		},
	},
	credit.BureauEquifax: {
		Bureau: credit.BureauEquifax,
		Name:   "Equifax",
		Weaknesses: []string{
			"Large manual review backlog; responses often land right at the statutory deadline.",
			"Mixed-file errors are disproportionately common for similar names and addresses.",
		},
		Tactics: []string{
			"Front-load identity documents to head off a stall letter requesting them.",
			"Cite the 30-day clock explicitly and calendar the deadline; a late response supports a deletion demand.",
			"Escalate to the executive consumer office after a second verification.",
		},
	},
	credit.BureauTransUnion: {
		Bureau: credit.BureauTransUnion,
		Name:   "TransUnion",
		Weaknesses: []string{
			"Aggressive frivolous-dispute flagging on repeated similar letters.",
			"Leans on automated furnisher verification with little independent review.",
		},
		Tactics: []string{
			"Change the dispute's substance and evidence each round to stay clear of the frivolous flag.",
			"Attach supporting documents; undocumented disputes get template verifications.",
			"A CFPB complaint reliably routes the file to a human investigator.",
		},
	},
}

// ProfileFor returns the tactics profile for a bureau, or nil when the
// bureau is unknown or unset.
func ProfileFor(b credit.Bureau) *BureauProfile {
	if p, ok := bureauProfiles[b]; ok {
		return &p
	}
	return nil
}

// BureauProfiles returns all profiles in canonical bureau order.
func BureauProfiles() []BureauProfile {
	out := make([]BureauProfile, 0, len(bureauProfiles))
	for _, b := range credit.AllBureaus() {
		out = append(out, bureauProfiles[b])
	}
	return out
}
