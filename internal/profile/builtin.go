package profile

import (
	"taxtract/internal/domain"
)

// The builtin profiles are declarative data: one record per document type,
// no per-type code. Field declaration order is the OCR extraction order, so
// identifier fields come first and amount rules can reject values that
// collide with an already-extracted account or tax-ID number.

func amountSpec(name string, aliases []string, labels []string, box string) FieldSpec {
	var rules []Rule
	for _, l := range labels {
		rules = append(rules, amountAfterLabel(l))
	}
	if box != "" {
		rules = append(rules, amountInBox(box))
	}
	return FieldSpec{Name: name, Kind: domain.KindAmount, Aliases: aliases, Rules: rules}
}

func textSpec(name string, kind domain.ValueKind, aliases []string, rules ...Rule) FieldSpec {
	return FieldSpec{Name: name, Kind: kind, Aliases: aliases, Rules: rules}
}

// party1099Specs is the payer/recipient identity block shared by every 1099
// and 1098 variant. Recipient-name matching is gated on the target name for
// files carrying several recipient records.
func party1099Specs() []FieldSpec {
	return []FieldSpec{
		textSpec("accountNumber", domain.KindIdentifier,
			[]string{"AccountNumber"},
			identifierAfterLabel("Account number")),
		textSpec("payerTIN", domain.KindIdentifier,
			[]string{"Payer.TIN", "PayerTIN"},
			tinAfterLabel("PAYER'S TIN"),
			tinAfterLabel("PAYER'S federal identification number")),
		textSpec("recipientTIN", domain.KindIdentifier,
			[]string{"Recipient.TIN", "RecipientTIN"},
			tinAfterLabel("RECIPIENT'S TIN"),
			tinAfterLabel("RECIPIENT'S identification number")),
		textSpec("payerName", domain.KindFreeText,
			[]string{"Payer.Name", "PayerName"},
			nameAfterLabel("PAYER'S name", false)),
		textSpec("recipientName", domain.KindFreeText,
			[]string{"Recipient.Name", "RecipientName"},
			nameAfterLabel("RECIPIENT'S name", true)),
		textSpec("payerAddress", domain.KindFreeText,
			[]string{"Payer.Address", "PayerAddress"},
			addressAfterLabel("PAYER'S name"),
			addressTwoLines()),
		textSpec("recipientAddress", domain.KindFreeText,
			[]string{"Recipient.Address", "RecipientAddress"},
			addressAfterLabel("Street address"),
			addressAfterLabel("RECIPIENT'S name"),
			addressTwoLines(),
			addressOneLine()),
	}
}

func builtinProfiles() []*FormProfile {
	return []*FormProfile{
		{
			Type: domain.DocTypeW2,
			Fields: append([]FieldSpec{
				textSpec("employeeSSN", domain.KindIdentifier,
					[]string{"Employee.SocialSecurityNumber", "EmployeeSSN"},
					tinAfterLabel("Employee's social security number"),
					tinAfterLabel("social security number")),
				textSpec("employerEIN", domain.KindIdentifier,
					[]string{"Employer.IdNumber", "EmployerEIN"},
					tinAfterLabel("Employer identification number"),
					tinAfterLabel("EIN")),
				textSpec("employeeName", domain.KindFreeText,
					[]string{"Employee.Name", "EmployeeName"},
					nameAfterLabel("Employee's first name and initial", true),
					nameAfterLabel("Employee's name", true)),
				textSpec("employerName", domain.KindFreeText,
					[]string{"Employer.Name", "EmployerName"},
					nameAfterLabel("Employer's name", false)),
				textSpec("employeeAddress", domain.KindFreeText,
					[]string{"Employee.Address", "EmployeeAddress"},
					addressAfterLabel("Employee's address"),
					addressTwoLines(),
					addressOneLine()),
				textSpec("employerAddress", domain.KindFreeText,
					[]string{"Employer.Address", "EmployerAddress"},
					addressAfterLabel("Employer's name"),
					addressTwoLines()),
			},
				amountSpec("wagesTipsOtherComp",
					[]string{"WagesTipsAndOtherCompensation", "WagesTipsOtherCompensation"},
					[]string{"Wages, tips, other compensation", "Wages, tips, other comp"}, "1"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld"},
					[]string{"Federal income tax withheld"}, "2"),
				amountSpec("socialSecurityWages",
					[]string{"SocialSecurityWages"},
					[]string{"Social security wages"}, "3"),
				amountSpec("socialSecurityTaxWithheld",
					[]string{"SocialSecurityTaxWithheld"},
					[]string{"Social security tax withheld"}, "4"),
				amountSpec("medicareWagesAndTips",
					[]string{"MedicareWagesAndTips"},
					[]string{"Medicare wages and tips"}, "5"),
				amountSpec("medicareTaxWithheld",
					[]string{"MedicareTaxWithheld"},
					[]string{"Medicare tax withheld"}, "6"),
				amountSpec("socialSecurityTips",
					[]string{"SocialSecurityTips"},
					[]string{"Social security tips"}, "7"),
				amountSpec("allocatedTips",
					[]string{"AllocatedTips"},
					[]string{"Allocated tips"}, "8"),
			),
			Indicators: []string{
				"form w-2", "wage and tax statement",
				"wages, tips, other compensation",
				"social security wages", "medicare wages",
			},
			Critical: []string{
				"wagesTipsOtherComp", "federalIncomeTaxWithheld",
				"socialSecurityWages", "socialSecurityTaxWithheld",
				"medicareWagesAndTips", "medicareTaxWithheld",
				"employeeName", "employeeSSN", "employeeAddress",
			},
			Adjacent: [][2]string{
				{"wagesTipsOtherComp", "federalIncomeTaxWithheld"},
				{"socialSecurityWages", "socialSecurityTaxWithheld"},
				{"medicareWagesAndTips", "medicareTaxWithheld"},
			},
		},
		{
			Type: domain.DocType1099INT,
			Fields: append(party1099Specs(),
				amountSpec("interestIncome",
					[]string{"InterestIncome", "Box1"},
					[]string{"Interest income"}, "1"),
				amountSpec("earlyWithdrawalPenalty",
					[]string{"EarlyWithdrawalPenalty", "Box2"},
					[]string{"Early withdrawal penalty"}, "2"),
				amountSpec("interestOnUSSavingsBonds",
					[]string{"InterestOnUSSavingsBondsAndTreasuryObligations", "Box3"},
					[]string{"Interest on U.S. Savings Bonds"}, "3"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
				amountSpec("investmentExpenses",
					[]string{"InvestmentExpenses", "Box5"},
					[]string{"Investment expenses"}, "5"),
				amountSpec("foreignTaxPaid",
					[]string{"ForeignTaxPaid", "Box6"},
					[]string{"Foreign tax paid"}, "6"),
				amountSpec("taxExemptInterest",
					[]string{"TaxExemptInterest", "Box8"},
					[]string{"Tax-exempt interest"}, "8"),
				amountSpec("specifiedPrivateActivityBondInterest",
					[]string{"SpecifiedPrivateActivityBondInterest", "Box9"},
					[]string{"Specified private activity bond interest"}, "9"),
				amountSpec("marketDiscount",
					[]string{"MarketDiscount", "Box10"},
					[]string{"Market discount"}, "10"),
				amountSpec("bondPremium",
					[]string{"BondPremium", "Box11"},
					[]string{"Bond premium"}, "11"),
			),
			Indicators: []string{
				"form 1099-int", "interest income",
				"early withdrawal penalty",
				"specified private activity bond",
			},
			Critical: []string{
				"interestIncome", "earlyWithdrawalPenalty",
				"federalIncomeTaxWithheld", "taxExemptInterest",
				"specifiedPrivateActivityBondInterest",
				"payerName", "recipientName", "recipientAddress",
			},
			Adjacent: [][2]string{
				{"interestIncome", "earlyWithdrawalPenalty"},
				{"taxExemptInterest", "specifiedPrivateActivityBondInterest"},
				{"marketDiscount", "bondPremium"},
			},
		},
		{
			Type: domain.DocType1099DIV,
			Fields: append(party1099Specs(),
				amountSpec("totalOrdinaryDividends",
					[]string{"TotalOrdinaryDividends", "Box1a"},
					[]string{"Total ordinary dividends"}, "1a"),
				amountSpec("qualifiedDividends",
					[]string{"QualifiedDividends", "Box1b"},
					[]string{"Qualified dividends"}, "1b"),
				amountSpec("totalCapitalGainDistribution",
					[]string{"TotalCapitalGainDistribution", "Box2a"},
					[]string{"Total capital gain distr"}, "2a"),
				amountSpec("nondividendDistributions",
					[]string{"NonDividendDistributions", "Box3"},
					[]string{"Nondividend distributions"}, "3"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
				amountSpec("section199ADividends",
					[]string{"Section199ADividends", "Box5"},
					[]string{"Section 199A dividends"}, "5"),
				amountSpec("investmentExpenses",
					[]string{"InvestmentExpenses", "Box6"},
					[]string{"Investment expenses"}, "6"),
				amountSpec("foreignTaxPaid",
					[]string{"ForeignTaxPaid", "Box7"},
					[]string{"Foreign tax paid"}, "7"),
				amountSpec("exemptInterestDividends",
					[]string{"ExemptInterestDividends", "Box12"},
					[]string{"Exempt-interest dividends"}, "12"),
			),
			Indicators: []string{
				"form 1099-div", "dividends and distributions",
				"total ordinary dividends", "qualified dividends",
			},
			Critical: []string{
				"totalOrdinaryDividends", "qualifiedDividends",
				"totalCapitalGainDistribution", "federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"totalOrdinaryDividends", "qualifiedDividends"},
				{"nondividendDistributions", "federalIncomeTaxWithheld"},
			},
		},
		{
			Type: domain.DocType1099MISC,
			Fields: append(party1099Specs(),
				amountSpec("rents",
					[]string{"Rents", "Box1"},
					[]string{"Rents"}, "1"),
				amountSpec("royalties",
					[]string{"Royalties", "Box2"},
					[]string{"Royalties"}, "2"),
				amountSpec("otherIncome",
					[]string{"OtherIncome", "Box3"},
					[]string{"Other income"}, "3"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
				amountSpec("fishingBoatProceeds",
					[]string{"FishingBoatProceeds", "Box5"},
					[]string{"Fishing boat proceeds"}, "5"),
				amountSpec("medicalAndHealthCarePayments",
					[]string{"MedicalAndHealthCarePayments", "Box6"},
					[]string{"Medical and health care payments"}, "6"),
				amountSpec("substitutePayments",
					[]string{"SubstitutePayments", "Box8"},
					[]string{"Substitute payments"}, "8"),
				amountSpec("cropInsuranceProceeds",
					[]string{"CropInsuranceProceeds", "Box9"},
					[]string{"Crop insurance proceeds"}, "9"),
				amountSpec("grossProceedsPaidToAttorney",
					[]string{"GrossProceedsPaidToAnAttorney", "Box10"},
					[]string{"Gross proceeds paid to an attorney"}, "10"),
			),
			Indicators: []string{
				"form 1099-misc", "miscellaneous information",
				"miscellaneous income", "fishing boat proceeds",
			},
			Critical: []string{
				"rents", "royalties", "otherIncome",
				"federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"rents", "royalties"},
				{"otherIncome", "federalIncomeTaxWithheld"},
			},
		},
		{
			Type: domain.DocType1099NEC,
			Fields: append(party1099Specs(),
				amountSpec("nonemployeeCompensation",
					[]string{"NonemployeeCompensation", "Box1"},
					[]string{"Nonemployee compensation"}, "1"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
			),
			Indicators: []string{
				"form 1099-nec", "nonemployee compensation",
			},
			Critical: []string{
				"nonemployeeCompensation", "federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"nonemployeeCompensation", "federalIncomeTaxWithheld"},
			},
		},
		{
			Type: domain.DocType1099R,
			Fields: append(party1099Specs(),
				textSpec("distributionCode", domain.KindIdentifier,
					[]string{"DistributionCode", "Box7"},
					identifierAfterLabel("Distribution code")),
				amountSpec("grossDistribution",
					[]string{"GrossDistribution", "Box1"},
					[]string{"Gross distribution"}, "1"),
				amountSpec("taxableAmount",
					[]string{"TaxableAmount", "Box2a"},
					[]string{"Taxable amount"}, "2a"),
				amountSpec("capitalGain",
					[]string{"CapitalGain", "Box3"},
					[]string{"Capital gain"}, "3"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
				amountSpec("employeeContributions",
					[]string{"EmployeeContributions", "Box5"},
					[]string{"Employee contributions"}, "5"),
			),
			Indicators: []string{
				"form 1099-r", "distributions from pensions",
				"gross distribution", "taxable amount",
			},
			Critical: []string{
				"grossDistribution", "taxableAmount",
				"federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"grossDistribution", "taxableAmount"},
				{"capitalGain", "federalIncomeTaxWithheld"},
			},
		},
		{
			Type: domain.DocType1099G,
			Fields: append(party1099Specs(),
				amountSpec("unemploymentCompensation",
					[]string{"UnemploymentCompensation", "Box1"},
					[]string{"Unemployment compensation"}, "1"),
				amountSpec("stateOrLocalTaxRefund",
					[]string{"StateOrLocalIncomeTaxRefunds", "Box2"},
					[]string{"State or local income tax refund"}, "2"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
				amountSpec("taxableGrants",
					[]string{"TaxableGrants", "Box6"},
					[]string{"Taxable grants"}, "6"),
			),
			Indicators: []string{
				"form 1099-g", "certain government payments",
				"unemployment compensation",
			},
			Critical: []string{
				"unemploymentCompensation", "stateOrLocalTaxRefund",
				"federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"unemploymentCompensation", "stateOrLocalTaxRefund"},
			},
		},
		{
			Type: domain.DocType1099K,
			Fields: append(party1099Specs(),
				amountSpec("grossPaymentAmount",
					[]string{"GrossAmount", "Box1a"},
					[]string{"Gross amount of payment card"}, "1a"),
				amountSpec("cardNotPresentTransactions",
					[]string{"CardNotPresentTransactions", "Box1b"},
					[]string{"Card not present transactions"}, "1b"),
				amountSpec("federalIncomeTaxWithheld",
					[]string{"FederalIncomeTaxWithheld", "Box4"},
					[]string{"Federal income tax withheld"}, "4"),
			),
			Indicators: []string{
				"form 1099-k", "payment card and third party",
				"gross amount of payment",
			},
			Critical: []string{
				"grossPaymentAmount", "cardNotPresentTransactions",
				"federalIncomeTaxWithheld",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"grossPaymentAmount", "cardNotPresentTransactions"},
			},
		},
		{
			Type: domain.DocType1098,
			Fields: append(party1099Specs(),
				amountSpec("mortgageInterestReceived",
					[]string{"MortgageInterestReceived", "Box1"},
					[]string{"Mortgage interest received"}, "1"),
				amountSpec("outstandingMortgagePrincipal",
					[]string{"OutstandingMortgagePrincipal", "Box2"},
					[]string{"Outstanding mortgage principal"}, "2"),
				amountSpec("refundOfOverpaidInterest",
					[]string{"RefundOfOverpaidInterest", "Box4"},
					[]string{"Refund of overpaid interest"}, "4"),
				amountSpec("mortgageInsurancePremiums",
					[]string{"MortgageInsurancePremiums", "Box5"},
					[]string{"Mortgage insurance premiums"}, "5"),
				amountSpec("pointsPaid",
					[]string{"PointsPaidOnPurchaseOfPrincipalResidence", "Box6"},
					[]string{"Points paid on purchase"}, "6"),
			),
			Indicators: []string{
				"form 1098", "mortgage interest statement",
				"mortgage interest received",
				"outstanding mortgage principal",
			},
			Critical: []string{
				"mortgageInterestReceived", "outstandingMortgagePrincipal",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"mortgageInterestReceived", "outstandingMortgagePrincipal"},
				{"mortgageInsurancePremiums", "pointsPaid"},
			},
		},
		{
			Type: domain.DocType1098E,
			Fields: append(party1099Specs(),
				amountSpec("studentLoanInterestReceived",
					[]string{"StudentLoanInterestReceived", "Box1"},
					[]string{"Student loan interest received"}, "1"),
			),
			Indicators: []string{
				"form 1098-e", "student loan interest statement",
				"student loan interest received",
			},
			Critical: []string{
				"studentLoanInterestReceived",
				"payerName", "recipientName",
			},
		},
		{
			Type: domain.DocType1098T,
			Fields: append(party1099Specs(),
				amountSpec("paymentsReceivedForTuition",
					[]string{"PaymentsReceivedForQualifiedTuition", "Box1"},
					[]string{"Payments received for qualified tuition"}, "1"),
				amountSpec("scholarshipsOrGrants",
					[]string{"ScholarshipsOrGrants", "Box5"},
					[]string{"Scholarships or grants"}, "5"),
				amountSpec("adjustmentsToScholarships",
					[]string{"AdjustmentsToScholarshipsOrGrants", "Box6"},
					[]string{"Adjustments to scholarships"}, "6"),
			),
			Indicators: []string{
				"form 1098-t", "tuition statement",
				"payments received for qualified tuition",
				"scholarships or grants",
			},
			Critical: []string{
				"paymentsReceivedForTuition", "scholarshipsOrGrants",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"paymentsReceivedForTuition", "scholarshipsOrGrants"},
			},
		},
		{
			Type: domain.DocType5498,
			Fields: append(party1099Specs(),
				amountSpec("iraContributions",
					[]string{"IRAContributions", "Box1"},
					[]string{"IRA contributions"}, "1"),
				amountSpec("rolloverContributions",
					[]string{"RolloverContributions", "Box2"},
					[]string{"Rollover contributions"}, "2"),
				amountSpec("rothIRAConversionAmount",
					[]string{"RothIRAConversionAmount", "Box3"},
					[]string{"Roth IRA conversion amount"}, "3"),
				amountSpec("recharacterizedContributions",
					[]string{"RecharacterizedContributions", "Box4"},
					[]string{"Recharacterized contributions"}, "4"),
				amountSpec("fairMarketValueOfAccount",
					[]string{"FairMarketValueOfAccount", "Box5"},
					[]string{"Fair market value of account"}, "5"),
			),
			Indicators: []string{
				"form 5498", "ira contribution information",
				"fair market value of account",
			},
			Critical: []string{
				"iraContributions", "rolloverContributions",
				"fairMarketValueOfAccount",
				"payerName", "recipientName",
			},
			Adjacent: [][2]string{
				{"iraContributions", "rolloverContributions"},
				{"rothIRAConversionAmount", "recharacterizedContributions"},
			},
		},
	}
}
