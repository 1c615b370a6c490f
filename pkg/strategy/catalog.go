package strategy

import "github.com/scorelens/scorelens/pkg/credit"

// itemStrategies is the static dispute playbook. Read-only after load;
// coverage of the full item-type enum is enforced by ValidateCatalogs.
var itemStrategies = map[credit.ItemType]ItemTypeStrategy{
	credit.ItemLatePayment: {
		ItemType:     credit.ItemLatePayment,
		Name:         "Late Payment",
		Primary:      DisputeInaccurateInfo,
		Alternatives: []DisputeType{DisputeGoodwillAdjustment, DisputeOutdatedInfo},
		Impact:       Range{Min: 20, Max: 40},
		Tips: []string{
			"Pull the full payment history and compare every reported late against bank statements.",
			"A goodwill letter to the original creditor often clears an isolated late faster than a bureau dispute.",
		},
		Citations: []string{
			"FCRA §611 (15 U.S.C. §1681i)",
			"FCRA §623 (15 U.S.C. §1681s-2)",
		},
	},
	credit.ItemCollection: {
		ItemType:     credit.ItemCollection,
		Name:         "Collection Account",
		Primary:      DisputeNotMine,
		Alternatives: []DisputeType{DisputeDebtValidation, DisputePaidInFull},
		Impact:       Range{Min: 40, Max: 80},
		Tips: []string{
			"Never acknowledge the debt in writing before validation completes.",
			"Ask the collector for the full chain of assignment from the original creditor.",
		},
		Citations: []string{
			"FDCPA §809 (15 U.S.C. §1692g)",
			"FCRA §611 (15 U.S.C. §1681i)",
		},
	},
	credit.ItemChargeOff: {
		ItemType:     credit.ItemChargeOff,
		Name:         "Charge-Off",
		Primary:      DisputeInaccurateInfo,
		Alternatives: []DisputeType{DisputeNotMine, DisputeIncorrectBalance},
		Impact:       Range{Min: 50, Max: 90},
		Tips: []string{
			"Charged-off balances frequently keep accruing in error; compare the reported balance across bureaus.",
			"A charge-off with a balance plus a collection for the same debt is double reporting.",
		},
		Citations: []string{
			"FCRA §611 (15 U.S.C. §1681i)",
			"FCRA §605 (15 U.S.C. §1681c)",
		},
	},
	credit.ItemBankruptcy: {
		ItemType:     credit.ItemBankruptcy,
		Name:         "Bankruptcy",
		Primary:      DisputeOutdatedInfo,
		Alternatives: []DisputeType{DisputeInaccurateInfo},
		Impact:       Range{Min: 80, Max: 150},
		Tips: []string{
			"Bureaus verify bankruptcies against record vendors, not the court; dispute the verification trail.",
			"Every account included in the filing must report as discharged with a zero balance.",
		},
		Citations: []string{
			"FCRA §605 (15 U.S.C. §1681c)",
			"FCRA §611 (15 U.S.C. §1681i)",
		},
	},
	credit.ItemForeclosure: {
		ItemType:     credit.ItemForeclosure,
		Name:         "Foreclosure",
		Primary:      DisputeInaccurateInfo,
		Alternatives: []DisputeType{DisputeNotMine, DisputeOutdatedInfo},
		Impact:       Range{Min: 60, Max: 120},
		Tips: []string{
			"Confirm the recorded sale date; the reporting clock runs from it, not from the last payment.",
			"Servicing transfers often duplicate the tradeline under two servicers.",
		},
		Citations: []string{
			"FCRA §605 (15 U.S.C. §1681c)",
			"FCRA §623 (15 U.S.C. §1681s-2)",
		},
	},
	credit.ItemRepossession: {
		ItemType:     credit.ItemRepossession,
		Name:         "Repossession",
		Primary:      DisputeIncorrectBalance,
		Alternatives: []DisputeType{DisputeInaccurateInfo, DisputeDebtValidation},
		Impact:       Range{Min: 50, Max: 100},
		Tips: []string{
			"Deficiency balances must net out the auction proceeds; demand the accounting.",
			"A voluntary surrender reported as a repossession is inaccurate.",
		},
		Citations: []string{
			"FCRA §611 (15 U.S.C. §1681i)",
			"UCC §9-610 (commercially reasonable disposition)",
		},
	},
	credit.ItemInquiry: {
		ItemType:     credit.ItemInquiry,
		Name:         "Hard Inquiry",
		Primary:      DisputeUnauthorizedInquiry,
		Alternatives: []DisputeType{DisputeNotMine, DisputeIdentityTheft},
		Impact:       Range{Min: 5, Max: 15},
		Tips: []string{
			"Only inquiries tied to an application the client actually made are permissible.",
			"Bureaus rarely verify inquiries with the furnisher; most fall off when disputed.",
		},
		Citations: []string{
			"FCRA §604 (15 U.S.C. §1681b)",
		},
	},
	credit.ItemOther: {
		ItemType:     credit.ItemOther,
		Name:         "Other Derogatory",
		Primary:      DisputeInaccurateInfo,
		Alternatives: []DisputeType{DisputeNotMine},
		Impact:       Range{Min: 10, Max: 30},
		Tips: []string{
			"Request the full file disclosure first; uncategorized items often carry reporting errors.",
		},
		Citations: []string{
			"FCRA §609 (15 U.S.C. §1681g)",
			"FCRA §611 (15 U.S.C. §1681i)",
		},
	},
}

// StrategyFor returns the playbook entry for an item type. Unknown
// types resolve through the "other" entry so callers never miss.
func StrategyFor(t credit.ItemType) ItemTypeStrategy {
	if strat, ok := itemStrategies[t]; ok {
		return strat
	}
	return itemStrategies[credit.ItemOther]
}

// ItemStrategies returns the playbook in enum order.
func ItemStrategies() []ItemTypeStrategy {
	out := make([]ItemTypeStrategy, 0, len(itemStrategies))
	for _, t := range credit.AllItemTypes() {
		out = append(out, itemStrategies[t])
	}
	return out
}
