package domain

import "fmt"

type OwnerKind string

const (
	OwnerKindBorrower OwnerKind = "borrower"
	OwnerKindInvestor OwnerKind = "investor"
)

func ParseOwnerKind(raw string) (OwnerKind, error) {
	switch OwnerKind(raw) {
	case OwnerKindBorrower:
		return OwnerKindBorrower, nil
	case OwnerKindInvestor:
		return OwnerKindInvestor, nil
	default:
		return "", fmt.Errorf("unknown owner kind %q", raw)
	}
}

// PartyRef identifies a balance-holding party. Every wallet owner and every
// transaction leg carries the kind tag so borrower and investor IDs never mix.
type PartyRef struct {
	Kind OwnerKind
	ID   string
}

func BorrowerRef(id string) PartyRef {
	return PartyRef{Kind: OwnerKindBorrower, ID: id}
}

func InvestorRef(id string) PartyRef {
	return PartyRef{Kind: OwnerKindInvestor, ID: id}
}
