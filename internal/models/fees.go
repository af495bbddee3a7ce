package models

import "github.com/shopspring/decimal"

// CryptoFeeRate holds per-currency fee rates, each a fraction of the
// transacted amount.
type CryptoFeeRate struct {
	ProcessingFeeRate decimal.Decimal `json:"processing_fee_rate"`
	NetworkFeeRate    decimal.Decimal `json:"network_fee_rate"`
	SpreadRate        decimal.Decimal `json:"spread_rate"`
}

// FeeSchedule is the fee-rate table used by the fee calculator.
type FeeSchedule struct {
	CardRate  decimal.Decimal              `json:"card_rate"`
	CardFixed decimal.Decimal              `json:"card_fixed"`
	BankRate  decimal.Decimal              `json:"bank_rate"`
	BankFixed decimal.Decimal              `json:"bank_fixed"`
	Crypto    map[CryptoType]CryptoFeeRate `json:"crypto"`
}

// Clone returns a copy that does not share the crypto rate map.
func (s FeeSchedule) Clone() FeeSchedule {
	out := s
	out.Crypto = make(map[CryptoType]CryptoFeeRate, len(s.Crypto))
	for k, v := range s.Crypto {
		out.Crypto[k] = v
	}
	return out
}

func cryptoRate(processing, network, spread string) CryptoFeeRate {
	return CryptoFeeRate{
		ProcessingFeeRate: decimal.RequireFromString(processing),
		NetworkFeeRate:    decimal.RequireFromString(network),
		SpreadRate:        decimal.RequireFromString(spread),
	}
}

// DefaultFeeSchedule returns the standard rates: 2.9% + $0.30 for cards,
// 0.8% + $0.50 for bank transfers and per-currency rates for crypto.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		CardRate:  decimal.RequireFromString("0.029"),
		CardFixed: decimal.RequireFromString("0.30"),
		BankRate:  decimal.RequireFromString("0.008"),
		BankFixed: decimal.RequireFromString("0.50"),
		Crypto: map[CryptoType]CryptoFeeRate{
			CryptoETH:   cryptoRate("0.015", "0.002", "0.005"),
			CryptoUSDT:  cryptoRate("0.01", "0.001", "0.002"),
			CryptoUSDC:  cryptoRate("0.01", "0.001", "0.002"),
			CryptoMATIC: cryptoRate("0.015", "0.0005", "0.005"),
			CryptoBNB:   cryptoRate("0.015", "0.001", "0.005"),
		},
	}
}
