package domain

type Currency string

const (
	CurrencyBRL  Currency = "BRL"
	CurrencyUSDT Currency = "USDT"
	CurrencyUSDC Currency = "USDC"
	CurrencyEUR  Currency = "EUR"
)

// DefaultCurrency is the funding currency: loans disburse into the borrower's
// BRL wallet and pools hold BRL capital.
const DefaultCurrency = CurrencyBRL

func SupportedCurrencies() []Currency {
	return []Currency{CurrencyBRL, CurrencyUSDT, CurrencyUSDC, CurrencyEUR}
}

func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies() {
		if string(c) == code {
			return true
		}
	}
	return false
}
