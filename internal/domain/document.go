package domain

type DocumentType string

const (
	DocumentVerifyIdentity DocumentType = "verify_identity"
	DocumentIncomeProof    DocumentType = "income_proof"
	DocumentTaxDeclaration DocumentType = "tax_declaration"
	DocumentUtilityBills   DocumentType = "utility_bills"
	DocumentBankStatement  DocumentType = "bank_statement"
	DocumentCustom         DocumentType = "custom"
)

// DocumentBasePoints is the closed per-category weight table for score
// accumulation. A validated document earns basePoints * qualityScore / 100
// raw points.
var DocumentBasePoints = map[DocumentType]int64{
	DocumentVerifyIdentity: 150,
	DocumentIncomeProof:    250,
	DocumentTaxDeclaration: 200,
	DocumentUtilityBills:   100,
	DocumentBankStatement:  100,
	DocumentCustom:         50,
}
