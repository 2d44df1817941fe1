package catalog

import (
	"snapengine/internal/models"
)

// DefaultVersion tags the built-in rule set. Catalogs loaded from YAML carry
// their own version.
const DefaultVersion = "builtin-1"

// Category labels shared between the built-in rules and the review UI.
const (
	CategoryWagesOrPayroll    = "WAGES_OR_PAYROLL"
	CategoryBenefitsOrSupport = "BENEFITS_OR_SUPPORT"
	CategoryBankInterest      = "BANK_INTEREST"
	CategoryGiftOrIrregular   = "GIFT_OR_IRREGULAR"
	CategoryTransfer          = "TRANSFER"
	CategoryRefund            = "REFUND_OR_REIMBURSEMENT"
	CategoryCreditCardPayment = "CREDIT_CARD_PAYMENT"
	CategoryRent              = "RENT"
	CategoryMortgage          = "MORTGAGE"
	CategoryInternetOrPhone   = "INTERNET_OR_PHONE"
	CategoryElectric          = "ELECTRIC"
	CategoryGas               = "GAS"
	CategoryUtilitiesOther    = "UTILITIES_OTHER"
	CategoryDependentCare     = "DEPENDENT_CARE"
	CategoryMedicalExpense    = "MEDICAL_EXPENSE"
	CategoryChildSupport      = "CHILD_SUPPORT"
)

// Default returns the built-in catalog. The rule set encodes current SNAP
// countability policy; revising policy means revising this table (or the
// YAML override), never the classifier.
func Default() *Catalog {
	c, err := New(DefaultVersion, DefaultRules())
	if err != nil {
		// The built-in rules are validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return c
}

// DefaultRules returns the built-in rules in priority order. Within each
// signal tier the order is: exclusions first, then countable categories,
// then review-only heuristics.
func DefaultRules() []Rule {
	var rules []Rule
	rules = append(rules, categorySignalRules()...)
	rules = append(rules, merchantSignalRules()...)
	rules = append(rules, descriptionSignalRules()...)
	return rules
}

// categorySignalRules match the partner's enrichment taxonomy. The detailed
// values follow the partner's published vocabulary.
func categorySignalRules() []Rule {
	return []Rule{
		{
			Name:            "pfc-transfer",
			Signal:          SignalCategory,
			Direction:       DirectionEither,
			Effect:          EffectNotCountable,
			Category:        CategoryTransfer,
			Reason:          "INTERNAL_TRANSFER_OR_NONINCOME_TRANSFER",
			Confidence:      models.ConfidenceHigh,
			CategoryPrimary: []string{"TRANSFER_IN", "TRANSFER_OUT"},
		},
		{
			Name:            "pfc-debt-payment",
			Signal:          SignalCategory,
			Direction:       DirectionExpense,
			Effect:          EffectNotCountable,
			Category:        CategoryCreditCardPayment,
			DeductionType:   models.DeductionNone,
			Reason:          "PAYING_DEBT_NOT_DEDUCTION",
			Confidence:      models.ConfidenceHigh,
			CategoryPrimary: []string{"LOAN_PAYMENTS"},
		},
		{
			Name:             "pfc-wages",
			Signal:           SignalCategory,
			Direction:        DirectionIncome,
			Effect:           EffectCountable,
			Category:         CategoryWagesOrPayroll,
			IncomeType:       models.IncomeEarned,
			Reason:           "EARNED_INCOME_SOURCE",
			Confidence:       models.ConfidenceHigh,
			CategoryPrimary:  []string{"INCOME"},
			CategoryDetailed: []string{"INCOME_WAGES"},
		},
		{
			Name:             "pfc-benefits",
			Signal:           SignalCategory,
			Direction:        DirectionIncome,
			Effect:           EffectCountable,
			Category:         CategoryBenefitsOrSupport,
			IncomeType:       models.IncomeUnearned,
			Reason:           "UNEARNED_INCOME_SOURCE",
			Confidence:       models.ConfidenceHigh,
			CategoryPrimary:  []string{"INCOME"},
			CategoryDetailed: []string{"INCOME_UNEMPLOYMENT", "INCOME_RETIREMENT_PENSION", "INCOME_OTHER_INCOME"},
		},
		{
			Name:             "pfc-interest",
			Signal:           SignalCategory,
			Direction:        DirectionIncome,
			Effect:           EffectCountable,
			Category:         CategoryBankInterest,
			IncomeType:       models.IncomeUnearned,
			Reason:           "BANK_INTEREST_IS_UNEARNED_INCOME",
			Confidence:       models.ConfidenceHigh,
			CategoryPrimary:  []string{"INCOME"},
			CategoryDetailed: []string{"INCOME_INTEREST_EARNED", "INCOME_DIVIDENDS"},
		},
		{
			Name:             "pfc-rent",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryRent,
			DeductionType:    models.DeductionShelter,
			Reason:           "SHELTER_COST",
			Confidence:       models.ConfidenceHigh,
			CategoryPrimary:  []string{"RENT_AND_UTILITIES"},
			CategoryDetailed: []string{"RENT_AND_UTILITIES_RENT"},
		},
		{
			Name:             "pfc-mortgage",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryMortgage,
			DeductionType:    models.DeductionShelter,
			Reason:           "SHELTER_COST",
			Confidence:       models.ConfidenceHigh,
			CategoryPrimary:  []string{"LOAN_PAYMENTS"},
			CategoryDetailed: []string{"LOAN_PAYMENTS_MORTGAGE_PAYMENT"},
		},
		{
			Name:             "pfc-utilities-energy",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryElectric,
			DeductionType:    models.DeductionUtilities,
			Reason:           "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:       models.ConfidenceHigh,
			CategoryDetailed: []string{"RENT_AND_UTILITIES_GAS_AND_ELECTRICITY"},
		},
		{
			Name:             "pfc-utilities-internet",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryInternetOrPhone,
			DeductionType:    models.DeductionUtilities,
			Reason:           "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:       models.ConfidenceHigh,
			CategoryDetailed: []string{"RENT_AND_UTILITIES_INTERNET_AND_CABLE", "RENT_AND_UTILITIES_TELEPHONE"},
		},
		{
			Name:             "pfc-utilities-other",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryUtilitiesOther,
			DeductionType:    models.DeductionUtilities,
			Reason:           "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:       models.ConfidenceHigh,
			CategoryDetailed: []string{"RENT_AND_UTILITIES_WATER", "RENT_AND_UTILITIES_SEWAGE_AND_WASTE_MANAGEMENT", "RENT_AND_UTILITIES_OTHER_UTILITIES"},
		},
		{
			Name:             "pfc-childcare",
			Signal:           SignalCategory,
			Direction:        DirectionExpense,
			Effect:           EffectCountable,
			Category:         CategoryDependentCare,
			DeductionType:    models.DeductionChildcare,
			Reason:           "DEPENDENT_CARE_IF_WORK_OR_TRAINING",
			Confidence:       models.ConfidenceHigh,
			CategoryDetailed: []string{"GENERAL_SERVICES_CHILDCARE"},
		},
		{
			Name:            "pfc-medical",
			Signal:          SignalCategory,
			Direction:       DirectionExpense,
			Effect:          EffectReview,
			Category:        CategoryMedicalExpense,
			DeductionType:   models.DeductionMedical,
			Reason:          "MEDICAL_DEDUCTION_ONLY_IF_ELDERLY_OR_DISABLED",
			Confidence:      models.ConfidenceHigh,
			CategoryPrimary: []string{"MEDICAL"},
		},
	}
}

// merchantSignalRules match known counterparties by name.
func merchantSignalRules() []Rule {
	return []Rule{
		{
			Name:       "merchant-payroll-processor",
			Signal:     SignalMerchant,
			Direction:  DirectionIncome,
			Effect:     EffectCountable,
			Category:   CategoryWagesOrPayroll,
			IncomeType: models.IncomeEarned,
			Reason:     "EARNED_INCOME_SOURCE",
			Confidence: models.ConfidenceHigh,
			Keywords:   []string{"adp", "gusto", "workday", "paychex", "square payroll"},
		},
		{
			Name:          "merchant-utility-company",
			Signal:        SignalMerchant,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryUtilitiesOther,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceMedium,
			Keywords: []string{
				"coned", "con ed", "con edison", "national grid", "xcel",
				"spectrum", "comcast", "xfinity", "verizon fios",
			},
		},
		{
			Name:          "merchant-energy-generic",
			Signal:        SignalMerchant,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryUtilitiesOther,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceLow,
			Keywords:      []string{"energy", "electric", "gas", "utility", "power"},
		},
		{
			Name:          "merchant-shelter",
			Signal:        SignalMerchant,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryRent,
			DeductionType: models.DeductionShelter,
			Reason:        "SHELTER_COST",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"landlord", "property mgmt", "property management", "leasing"},
		},
		{
			Name:          "merchant-childcare",
			Signal:        SignalMerchant,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryDependentCare,
			DeductionType: models.DeductionChildcare,
			Reason:        "DEPENDENT_CARE_IF_WORK_OR_TRAINING",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"care.com", "bright horizons", "kindercare"},
		},
	}
}

// descriptionSignalRules are the last-resort free-text rules, the only
// signal available for document-extracted transactions.
func descriptionSignalRules() []Rule {
	return []Rule{
		// Exclusions come first so "credit card payment refund" never counts
		// as anything.
		{
			Name:       "desc-refund",
			Signal:     SignalDescription,
			Direction:  DirectionIncome,
			Effect:     EffectNotCountable,
			Category:   CategoryRefund,
			Reason:     "REIMBURSEMENT_REFUND_LOAN_OR_SIMILAR",
			Confidence: models.ConfidenceMedium,
			Keywords: []string{
				"reimbursement", "refund", "chargeback", "returned item",
				"cash advance", "loan", "disbursement",
				"venmo transfer between", "paypal transfer between",
			},
		},
		{
			Name:       "desc-transfer",
			Signal:     SignalDescription,
			Direction:  DirectionEither,
			Effect:     EffectNotCountable,
			Category:   CategoryTransfer,
			Reason:     "INTERNAL_TRANSFER_OR_NONINCOME_TRANSFER",
			Confidence: models.ConfidenceMedium,
			Keywords: []string{
				"transfer", "internal transfer", "to savings",
				"zelle from self", "zelle to self", "from my account",
				"venmo to self", "cash app to self",
			},
		},
		{
			Name:          "desc-credit-card-payment",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectNotCountable,
			Category:      CategoryCreditCardPayment,
			DeductionType: models.DeductionNone,
			Reason:        "PAYING_DEBT_NOT_DEDUCTION",
			Confidence:    models.ConfidenceMedium,
			Keywords: []string{
				"credit card payment", "cc payment", "card payment",
				"payment to chase", "payment to amex", "payment to citi",
			},
		},
		{
			Name:       "desc-earned-income",
			Signal:     SignalDescription,
			Direction:  DirectionIncome,
			Effect:     EffectCountable,
			Category:   CategoryWagesOrPayroll,
			IncomeType: models.IncomeEarned,
			Reason:     "EARNED_INCOME_SOURCE",
			Confidence: models.ConfidenceHigh,
			Keywords: []string{
				"payroll", "paycheck", "wages", "salary", "direct deposit",
				"adp", "gusto", "workday", "paychex", "square payroll",
			},
		},
		{
			Name:       "desc-unearned-income",
			Signal:     SignalDescription,
			Direction:  DirectionIncome,
			Effect:     EffectCountable,
			Category:   CategoryBenefitsOrSupport,
			IncomeType: models.IncomeUnearned,
			Reason:     "UNEARNED_INCOME_SOURCE",
			Confidence: models.ConfidenceMedium,
			Keywords: []string{
				"unemployment", "social security", "ssi", "ssdi",
				"pension", "child support", "alimony",
			},
		},
		{
			Name:       "desc-bank-interest",
			Signal:     SignalDescription,
			Direction:  DirectionIncome,
			Effect:     EffectCountable,
			Category:   CategoryBankInterest,
			IncomeType: models.IncomeUnearned,
			Reason:     "BANK_INTEREST_IS_UNEARNED_INCOME",
			Confidence: models.ConfidenceHigh,
			Keywords:   []string{"interest earned", "int earned", "interest"},
		},
		{
			Name:       "desc-gift-or-irregular",
			Signal:     SignalDescription,
			Direction:  DirectionIncome,
			Effect:     EffectReview,
			Category:   CategoryGiftOrIrregular,
			Reason:     "POSSIBLE_GIFT_OR_IRREGULAR_INCOME",
			Confidence: models.ConfidenceLow,
			Keywords:   []string{"gift", "birthday"},
		},
		// Mortgage before rent: "mtg" descriptions also contain shelter
		// keywords.
		{
			Name:          "desc-mortgage",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryMortgage,
			DeductionType: models.DeductionShelter,
			Reason:        "SHELTER_COST",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"mortgage", "mtg"},
		},
		{
			Name:          "desc-rent",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryRent,
			DeductionType: models.DeductionShelter,
			Reason:        "SHELTER_COST",
			Confidence:    models.ConfidenceMedium,
			Keywords: []string{
				"rent", "landlord", "property mgmt", "property management",
				"leasing", "apt", "apartment",
			},
		},
		{
			Name:          "desc-utility-internet",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryInternetOrPhone,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"internet", "fios", "spectrum", "comcast", "xfinity"},
		},
		{
			Name:          "desc-utility-electric",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryElectric,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"electric", "coned", "con ed", "con edison", "xcel"},
		},
		{
			Name:          "desc-utility-gas",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryGas,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"national grid", "gas bill"},
		},
		{
			Name:          "desc-utility-other",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryUtilitiesOther,
			DeductionType: models.DeductionUtilities,
			Reason:        "UTILITY_EXPENSE_SUA_EVIDENCE",
			Confidence:    models.ConfidenceLow,
			Keywords: []string{
				"water", "sewer", "trash", "waste", "utility", "energy",
				"heat", "heating",
			},
		},
		{
			Name:          "desc-childcare",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryDependentCare,
			DeductionType: models.DeductionChildcare,
			Reason:        "DEPENDENT_CARE_IF_WORK_OR_TRAINING",
			Confidence:    models.ConfidenceMedium,
			Keywords: []string{
				"daycare", "childcare", "child care", "nursery", "preschool",
				"after school", "babysitter", "nanny", "care.com",
				"bright horizons", "kindercare",
			},
		},
		{
			Name:          "desc-medical",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectReview,
			Category:      CategoryMedicalExpense,
			DeductionType: models.DeductionMedical,
			Reason:        "MEDICAL_DEDUCTION_ONLY_IF_ELDERLY_OR_DISABLED",
			Confidence:    models.ConfidenceLow,
			Keywords: []string{
				"pharmacy", "rx", "prescription", "copay", "co-pay",
				"hospital", "clinic", "medical", "doctor", "dental",
				"vision", "therap", "medicare", "medicaid premium",
			},
		},
		{
			Name:          "desc-child-support-paid",
			Signal:        SignalDescription,
			Direction:     DirectionExpense,
			Effect:        EffectCountable,
			Category:      CategoryChildSupport,
			DeductionType: models.DeductionChildSupport,
			Reason:        "CHILD_SUPPORT_PAYMENT",
			Confidence:    models.ConfidenceMedium,
			Keywords:      []string{"child support", "support payment", "iv-d", "ocse"},
		},
	}
}
