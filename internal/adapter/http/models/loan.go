package models

type InstallmentResponse struct {
	ID         string `json:"id"`
	Number     int    `json:"number"`
	AmountDue  string `json:"amountDue"`
	AmountPaid string `json:"amountPaid"`
	DueDate    string `json:"dueDate"`
	PaidAt     string `json:"paidAt,omitempty"`
	Status     string `json:"status"`
}

type LoanResponse struct {
	ID              string                `json:"id"`
	CreditRequestID string                `json:"creditRequestId"`
	BorrowerID      string                `json:"borrowerId"`
	InvestorID      string                `json:"investorId,omitempty"`
	PoolID          string                `json:"poolId,omitempty"`
	Principal       string                `json:"principal"`
	InterestRate    string                `json:"interestRate"`
	TermMonths      int                   `json:"termMonths"`
	Status          string                `json:"status"`
	DisbursedAt     string                `json:"disbursedAt"`
	Installments    []InstallmentResponse `json:"installments,omitempty"`
}

type RecordPaymentResponse struct {
	LoanID            string `json:"loanId"`
	InstallmentNumber int    `json:"installmentNumber"`
	AmountPaid        string `json:"amountPaid"`
	LoanStatus        string `json:"loanStatus"`
	TransactionID     string `json:"transactionId"`
}
