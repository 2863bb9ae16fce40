package market

import (
	"math"

	"github.com/virtualzone/virtualzone-api/config"
	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

// Policy holds the tunable valuation constants. The multipliers are policy,
// not contract; deployments override them through the environment.
type Policy struct {
	// MinFeeRatio is the fraction of the base value a transfer offer must
	// reach to be considered.
	MinFeeRatio float64
	// RatingMultiplier converts an overall rating into a default value for
	// players with no explicit transfer or market value.
	RatingMultiplier int64
	// Suggestion bands for the offer form (low-ball, fair, strong).
	SuggestLowBand  float64
	SuggestFairBand float64
	SuggestHighBand float64
}

// DefaultPolicy mirrors the league's historical defaults.
func DefaultPolicy() Policy {
	return Policy{
		MinFeeRatio:      1.0,
		RatingMultiplier: 10000,
		SuggestLowBand:   0.7,
		SuggestFairBand:  0.9,
		SuggestHighBand:  1.2,
	}
}

// PolicyFromConfig builds a Policy from the loaded configuration.
func PolicyFromConfig(cfg *config.Config) Policy {
	return Policy{
		MinFeeRatio:      cfg.Market.MinFeeRatio,
		RatingMultiplier: cfg.Market.RatingMultiplier,
		SuggestLowBand:   cfg.Market.SuggestLowBand,
		SuggestFairBand:  cfg.Market.SuggestFairBand,
		SuggestHighBand:  cfg.Market.SuggestHighBand,
	}
}

// Valuation is a player's computed market baseline.
type Valuation struct {
	BaseValue      int64 `json:"base_value"`
	MinTransferFee int64 `json:"min_transfer_fee"`
}

// ComputeValuation derives a player's baseline value and minimum transfer
// fee. Fallback chain: explicit transfer value, then market value, then a
// rating-derived default. The minimum fee is floored at 1 currency unit.
func ComputeValuation(p *player.Player, pol Policy) Valuation {
	base := p.TransferValue
	if base <= 0 {
		base = p.MarketValue
	}
	if base <= 0 {
		base = int64(p.Rating) * pol.RatingMultiplier
	}

	minFee := int64(math.Round(float64(base) * pol.MinFeeRatio))
	if minFee < 1 {
		minFee = 1
	}
	return Valuation{BaseValue: base, MinTransferFee: minFee}
}

// SuggestedAmounts returns the low/fair/strong offer suggestions shown in
// the offer form.
func (pol Policy) SuggestedAmounts(v Valuation) (low, fair, high int64) {
	low = int64(math.Round(float64(v.BaseValue) * pol.SuggestLowBand))
	fair = int64(math.Round(float64(v.BaseValue) * pol.SuggestFairBand))
	high = int64(math.Round(float64(v.BaseValue) * pol.SuggestHighBand))
	return
}

// IsFreeAgent reports whether the player has no club affiliation. Free
// agents bypass the transfer-listed requirement and the offer cycle.
func IsFreeAgent(p *player.Player) bool {
	return p != nil && p.ClubID == nil
}

// ValidateOfferBasics checks a proposed offer against the market rules.
// It returns "" when every rule passes, or a user-facing denial reason.
// It never returns an error: all failures are reasons for the caller to
// surface.
func ValidateOfferBasics(p *player.Player, buyer *club.Club, amount int64, pol Policy) string {
	if buyer == nil {
		return ReasonBuyerNotFound
	}
	if p == nil {
		return ReasonPlayerNotFound
	}
	if amount <= 0 {
		return ReasonInvalidAmount
	}
	if buyer.Budget < amount {
		return ReasonInsufficientBudget
	}
	if !IsFreeAgent(p) && !p.TransferListed {
		return ReasonNotListed
	}
	if v := ComputeValuation(p, pol); amount < v.MinTransferFee {
		return ReasonBelowMinFee
	}
	return ""
}
