package domain

import "time"

// Profile is the engine-facing slice of a platform account: enough to own
// wallets and pools, and to carry the evolving credit score. Registration,
// authentication flows, and KYC document collection live outside this core.
type Profile struct {
	ID              string
	Kind            OwnerKind
	Email           string
	FullName        string
	PasswordHash    string
	Document        string
	KYCApproved     bool
	CalculatedScore int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p Profile) Ref() PartyRef {
	return PartyRef{Kind: p.Kind, ID: p.ID}
}
