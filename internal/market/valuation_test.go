package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

func TestComputeValuationFallbackChain(t *testing.T) {
	pol := DefaultPolicy()

	tests := []struct {
		name     string
		player   player.Player
		wantBase int64
	}{
		{
			name:     "explicit transfer value wins",
			player:   player.Player{Rating: 80, TransferValue: 750_000, MarketValue: 600_000},
			wantBase: 750_000,
		},
		{
			name:     "market value when no transfer value",
			player:   player.Player{Rating: 80, MarketValue: 600_000},
			wantBase: 600_000,
		},
		{
			name:     "rating-derived default",
			player:   player.Player{Rating: 80},
			wantBase: 800_000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ComputeValuation(&tt.player, pol)
			assert.Equal(t, tt.wantBase, v.BaseValue)
			assert.Equal(t, tt.wantBase, v.MinTransferFee) // default ratio is 1.0
		})
	}
}

func TestComputeValuationMinFeeFloor(t *testing.T) {
	v := ComputeValuation(&player.Player{Rating: 0}, DefaultPolicy())
	assert.Equal(t, int64(1), v.MinTransferFee)
}

func TestComputeValuationHonorsRatio(t *testing.T) {
	pol := DefaultPolicy()
	pol.MinFeeRatio = 0.5
	v := ComputeValuation(&player.Player{TransferValue: 1_000_000}, pol)
	assert.Equal(t, int64(1_000_000), v.BaseValue)
	assert.Equal(t, int64(500_000), v.MinTransferFee)
}

func TestSuggestedAmounts(t *testing.T) {
	low, fair, high := DefaultPolicy().SuggestedAmounts(Valuation{BaseValue: 1_000_000})
	assert.Equal(t, int64(700_000), low)
	assert.Equal(t, int64(900_000), fair)
	assert.Equal(t, int64(1_200_000), high)
}

func TestIsFreeAgent(t *testing.T) {
	clubID := uint(3)
	assert.True(t, IsFreeAgent(&player.Player{}))
	assert.False(t, IsFreeAgent(&player.Player{ClubID: &clubID}))
	assert.False(t, IsFreeAgent(nil))
}

func TestValidateOfferBasics(t *testing.T) {
	pol := DefaultPolicy()
	clubID := uint(1)
	listed := player.Player{Name: "X", ClubID: &clubID, TransferValue: 400_000, TransferListed: true}
	buyer := club.Club{Name: "Leones", Budget: 1_000_000}

	tests := []struct {
		name   string
		player *player.Player
		buyer  *club.Club
		amount int64
		want   string
	}{
		{"valid offer", &listed, &buyer, 400_000, ""},
		{"missing buyer", &listed, nil, 400_000, ReasonBuyerNotFound},
		{"missing player", nil, &buyer, 400_000, ReasonPlayerNotFound},
		{"zero amount", &listed, &buyer, 0, ReasonInvalidAmount},
		{"over budget", &listed, &buyer, 1_500_000, ReasonInsufficientBudget},
		{"below minimum fee", &listed, &buyer, 100_000, ReasonBelowMinFee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateOfferBasics(tt.player, tt.buyer, tt.amount, pol))
		})
	}
}

func TestValidateOfferBasicsRequiresListing(t *testing.T) {
	pol := DefaultPolicy()
	clubID := uint(1)
	unlisted := player.Player{ClubID: &clubID, TransferValue: 400_000}
	buyer := club.Club{Budget: 1_000_000}

	assert.Equal(t, ReasonNotListed, ValidateOfferBasics(&unlisted, &buyer, 400_000, pol))

	// Free agents bypass the listing requirement.
	freeAgent := player.Player{TransferValue: 400_000}
	assert.Empty(t, ValidateOfferBasics(&freeAgent, &buyer, 400_000, pol))
}
