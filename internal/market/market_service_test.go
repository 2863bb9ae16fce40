package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

// In-memory repository fakes. They mimic the database semantics the service
// relies on: lookups return copies, not-found returns (nil, nil), updates
// store by primary key.

type fakeMarketRepo struct {
	offers    map[uint]TransferOffer
	transfers map[uint]Transfer
	settings  MarketSettings
	nextOffer uint
	nextXfer  uint
}

func newFakeMarketRepo() *fakeMarketRepo {
	return &fakeMarketRepo{
		offers:    map[uint]TransferOffer{},
		transfers: map[uint]Transfer{},
		settings:  MarketSettings{Open: true},
		nextOffer: 1,
		nextXfer:  1,
	}
}

func (f *fakeMarketRepo) CreateOffer(o *TransferOffer) error {
	o.ID = f.nextOffer
	f.nextOffer++
	f.offers[o.ID] = *o
	return nil
}

func (f *fakeMarketRepo) GetOfferByID(id uint) (*TransferOffer, error) {
	o, ok := f.offers[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeMarketRepo) GetOffers(page, limit int, filters map[string]interface{}) ([]TransferOffer, int64, error) {
	var out []TransferOffer
	for _, o := range f.offers {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMarketRepo) GetPendingOffer(playerID, toClubID uint) (*TransferOffer, error) {
	for _, o := range f.offers {
		if o.PlayerID == playerID && o.ToClubID == toClubID &&
			(o.Status == OfferPending || o.Status == OfferCounterOffer) {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeMarketRepo) UpdateOffer(o *TransferOffer) error {
	f.offers[o.ID] = *o
	return nil
}

func (f *fakeMarketRepo) CreateTransfer(t *Transfer) error {
	t.ID = f.nextXfer
	f.nextXfer++
	f.transfers[t.ID] = *t
	return nil
}

func (f *fakeMarketRepo) GetTransferByID(id uint) (*Transfer, error) {
	t, ok := f.transfers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeMarketRepo) GetTransfers(page, limit int, filters map[string]interface{}) ([]Transfer, int64, error) {
	var out []Transfer
	for _, t := range f.transfers {
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMarketRepo) UpdateTransfer(t *Transfer) error {
	f.transfers[t.ID] = *t
	return nil
}

func (f *fakeMarketRepo) GetSettings() (*MarketSettings, error) {
	s := f.settings
	return &s, nil
}

func (f *fakeMarketRepo) SaveSettings(s *MarketSettings) error {
	f.settings = *s
	return nil
}

type fakePlayerRepo struct {
	players map[uint]player.Player
}

func (f *fakePlayerRepo) Create(p *player.Player) error {
	f.players[p.ID] = *p
	return nil
}

func (f *fakePlayerRepo) GetByID(id uint) (*player.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePlayerRepo) GetAll(page, limit int, filters map[string]interface{}) ([]player.Player, int64, error) {
	return nil, 0, nil
}

func (f *fakePlayerRepo) GetByClubID(clubID uint) ([]player.Player, error) { return nil, nil }
func (f *fakePlayerRepo) GetTransferListed() ([]player.Player, error)      { return nil, nil }
func (f *fakePlayerRepo) GetFreeAgents() ([]player.Player, error)          { return nil, nil }

func (f *fakePlayerRepo) Update(p *player.Player) error {
	f.players[p.ID] = *p
	return nil
}

func (f *fakePlayerRepo) SetTransferListed(id uint, listed bool) error {
	p := f.players[id]
	p.TransferListed = listed
	f.players[id] = p
	return nil
}

func (f *fakePlayerRepo) Delete(id uint) error {
	delete(f.players, id)
	return nil
}

func (f *fakePlayerRepo) WithTransaction(txFunc func(player.PlayerRepository) error) error {
	return txFunc(f)
}

type fakeClubRepo struct {
	clubs map[uint]club.Club
}

func (f *fakeClubRepo) Create(c *club.Club) error {
	f.clubs[c.ID] = *c
	return nil
}

func (f *fakeClubRepo) GetByID(id uint) (*club.Club, error) {
	c, ok := f.clubs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeClubRepo) GetByName(name string) (*club.Club, error) {
	for _, c := range f.clubs {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeClubRepo) GetAll(page, limit int, filters map[string]interface{}) ([]club.Club, int64, error) {
	return nil, 0, nil
}

func (f *fakeClubRepo) Update(c *club.Club) error {
	f.clubs[c.ID] = *c
	return nil
}

func (f *fakeClubRepo) Delete(id uint) error {
	delete(f.clubs, id)
	return nil
}

func (f *fakeClubRepo) AdjustBudget(id uint, delta int64) error {
	c, ok := f.clubs[id]
	if !ok {
		return fmt.Errorf("club %d not found", id)
	}
	c.Budget += delta
	f.clubs[id] = c
	return nil
}

func (f *fakeClubRepo) AssignManager(clubID uint, userID *uint) error { return nil }

func (f *fakeClubRepo) WithTransaction(txFunc func(club.ClubRepository) error) error {
	return txFunc(f)
}

type fakeActivityRepo struct {
	entries []activity.ActivityLog
}

func (f *fakeActivityRepo) Append(actor, action, detail string) error {
	f.entries = append(f.entries, activity.ActivityLog{Actor: actor, Action: action, Detail: detail})
	return nil
}

func (f *fakeActivityRepo) GetAll(page, limit int) ([]activity.ActivityLog, int64, error) {
	return f.entries, int64(len(f.entries)), nil
}

type fakeTxRunner struct {
	market  *fakeMarketRepo
	players *fakePlayerRepo
	clubs   *fakeClubRepo
}

func (f *fakeTxRunner) RunInTransaction(fn func(m MarketRepository, p player.PlayerRepository, c club.ClubRepository) error) error {
	return fn(f.market, f.players, f.clubs)
}

type fixture struct {
	svc      *Service
	market   *fakeMarketRepo
	players  *fakePlayerRepo
	clubs    *fakeClubRepo
	activity *fakeActivityRepo
}

func newFixture() *fixture {
	m := newFakeMarketRepo()
	p := &fakePlayerRepo{players: map[uint]player.Player{}}
	c := &fakeClubRepo{clubs: map[uint]club.Club{}}
	a := &fakeActivityRepo{}
	svc := NewService(m, p, c, a, &fakeTxRunner{market: m, players: p, clubs: c}, DefaultPolicy())
	return &fixture{svc: svc, market: m, players: p, clubs: c, activity: a}
}

func uintPtr(v uint) *uint { return &v }

// addClub and addPlayer seed the fakes with pre-assigned IDs.
func (fx *fixture) addClub(id uint, name string, budget int64) {
	c := club.Club{Name: name, Budget: budget}
	c.ID = id
	fx.clubs.clubs[id] = c
}

func (fx *fixture) addPlayer(id uint, name string, clubID *uint, value int64, listed bool) {
	p := player.Player{Name: name, ClubID: clubID, Rating: 70, TransferValue: value, TransferListed: listed}
	p.ID = id
	fx.players.players[id] = p
}

func (fx *fixture) pendingOfferID(t *testing.T) uint {
	t.Helper()
	for id := range fx.market.offers {
		return id
	}
	t.Fatal("no offer was created")
	return 0
}

func TestMakeOfferCreatesPendingOffer(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{
		PlayerID: 10, FromClub: "Tiburones", ToClub: "Leones", Amount: 500_000, UserID: 7,
	})
	require.NoError(t, err)
	require.Empty(t, reason)

	offer := fx.market.offers[fx.pendingOfferID(t)]
	assert.Equal(t, OfferPending, offer.Status)
	assert.Equal(t, "Tiburones", offer.FromClub)
	assert.Equal(t, "Leones", offer.ToClub)
	assert.Equal(t, int64(500_000), offer.Amount)
	require.Len(t, offer.History, 1)
	assert.Equal(t, ActorBuyer, offer.History[0].Actor)
	assert.NotEmpty(t, offer.History[0].ID)

	// Creating an offer moves no money.
	assert.Equal(t, int64(800_000), fx.clubs.clubs[2].Budget)
	assert.Equal(t, int64(1_000_000), fx.clubs.clubs[1].Budget)
}

func TestMakeOfferDeniedWhenMarketClosed(t *testing.T) {
	fx := newFixture()
	fx.market.settings.Open = false
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonMarketClosed, reason)
	assert.Empty(t, fx.market.offers)
}

func TestMakeOfferDeniedForUnlistedPlayer(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, false)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonNotListed, reason)
}

func TestMakeOfferDeniedOverBudget(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 100_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonInsufficientBudget, reason)
	assert.Empty(t, fx.market.offers)
}

func TestMakeOfferDeniedBelowMinimumFee(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 300_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonBelowMinFee, reason)
}

func TestMakeOfferDeniedDuplicate(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 2_000_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)

	reason, err = fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 600_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonDuplicateOffer, reason)
	assert.Len(t, fx.market.offers, 1)
}

func TestFreeAgentSignedDirectly(t *testing.T) {
	fx := newFixture()
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Hugo Sánchez", nil, 0, false)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 300_000})
	require.NoError(t, err)
	require.Empty(t, reason)

	// No offer cycle: the signing is immediate.
	assert.Empty(t, fx.market.offers)
	require.Len(t, fx.market.transfers, 1)
	xfer := fx.market.transfers[1]
	assert.Equal(t, TransferApproved, xfer.Status)
	assert.Equal(t, int64(300_000), xfer.Fee)
	assert.Empty(t, xfer.FromClub)

	p := fx.players.players[10]
	require.NotNil(t, p.ClubID)
	assert.Equal(t, uint(2), *p.ClubID)
	assert.False(t, p.TransferListed)
	assert.Equal(t, int64(500_000), fx.clubs.clubs[2].Budget)
}

func TestFreeAgentSigningDeniedOverBudget(t *testing.T) {
	fx := newFixture()
	fx.addClub(2, "Leones", 100_000)
	fx.addPlayer(10, "Hugo Sánchez", nil, 0, false)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 300_000})
	require.NoError(t, err)
	assert.Equal(t, ReasonInsufficientBudget, reason)
	assert.Equal(t, int64(100_000), fx.clubs.clubs[2].Budget)
	assert.Nil(t, fx.players.players[10].ClubID)
}

func TestProcessTransferConservesBudget(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	totalBefore := fx.clubs.clubs[1].Budget + fx.clubs.clubs[2].Budget

	reason, err = fx.svc.ProcessTransfer(offerID)
	require.NoError(t, err)
	require.Empty(t, reason)

	buyer := fx.clubs.clubs[2]
	seller := fx.clubs.clubs[1]
	assert.Equal(t, int64(300_000), buyer.Budget)
	assert.Equal(t, int64(1_500_000), seller.Budget)
	assert.Equal(t, totalBefore, buyer.Budget+seller.Budget)
	assert.GreaterOrEqual(t, buyer.Budget, int64(0))

	p := fx.players.players[10]
	require.NotNil(t, p.ClubID)
	assert.Equal(t, uint(2), *p.ClubID)
	assert.False(t, p.TransferListed)
	// The fee paid is historical; the player's valuation fields stay put.
	assert.Equal(t, int64(500_000), p.TransferValue)

	offer := fx.market.offers[offerID]
	assert.Equal(t, OfferAccepted, offer.Status)
	require.Len(t, offer.History, 2)
	assert.Equal(t, "offer_created", offer.History[0].Action)
	assert.Equal(t, "accepted", offer.History[1].Action)

	require.Len(t, fx.market.transfers, 1)
	assert.Equal(t, TransferApproved, fx.market.transfers[1].Status)
	assert.Equal(t, int64(500_000), fx.market.transfers[1].Fee)
}

func TestProcessTransferRevalidatesBudgetAtAcceptance(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	// The buyer spends money between offer creation and acceptance.
	require.NoError(t, fx.clubs.AdjustBudget(2, -700_000))

	reason, err = fx.svc.ProcessTransfer(offerID)
	require.NoError(t, err)
	assert.Equal(t, ReasonInsufficientBudget, reason)

	// Fail safe: the offer is force-rejected, no money or player moves.
	offer := fx.market.offers[offerID]
	assert.Equal(t, OfferRejected, offer.Status)
	assert.Equal(t, int64(100_000), fx.clubs.clubs[2].Budget)
	assert.Equal(t, int64(1_000_000), fx.clubs.clubs[1].Budget)
	assert.Equal(t, uint(1), *fx.players.players[10].ClubID)
	assert.Empty(t, fx.market.transfers)
}

func TestProcessTransferRejectsOfferWithMissingPlayer(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	require.NoError(t, fx.players.Delete(10))

	reason, err = fx.svc.ProcessTransfer(offerID)
	require.NoError(t, err)
	assert.Equal(t, ReasonPlayerNotFound, reason)
	assert.Equal(t, OfferRejected, fx.market.offers[offerID].Status)
}

func TestTerminalOfferIsImmutable(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	reason, err = fx.svc.RejectOffer(offerID, "no gracias")
	require.NoError(t, err)
	require.Empty(t, reason)
	historyLen := len(fx.market.offers[offerID].History)

	for name, op := range map[string]func() (string, error){
		"accept":  func() (string, error) { return fx.svc.ProcessTransfer(offerID) },
		"reject":  func() (string, error) { return fx.svc.RejectOffer(offerID, "") },
		"counter": func() (string, error) { return fx.svc.MakeCounterOffer(offerID, 600_000, "") },
		"respond": func() (string, error) { return fx.svc.RespondToCounterOffer(offerID, true, "") },
	} {
		reason, err := op()
		require.NoError(t, err, name)
		assert.Equal(t, ReasonAlreadyProcessed, reason, name)
	}

	offer := fx.market.offers[offerID]
	assert.Equal(t, OfferRejected, offer.Status)
	assert.Len(t, offer.History, historyLen)
}

func TestCounterOfferNegotiation(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	reason, err = fx.svc.MakeCounterOffer(offerID, 650_000, "queremos más")
	require.NoError(t, err)
	require.Empty(t, reason)

	offer := fx.market.offers[offerID]
	assert.Equal(t, OfferCounterOffer, offer.Status)
	require.NotNil(t, offer.CounterAmount)
	assert.Equal(t, int64(650_000), *offer.CounterAmount)

	// Only one counter step: countering again is denied.
	reason, err = fx.svc.MakeCounterOffer(offerID, 700_000, "")
	require.NoError(t, err)
	assert.Equal(t, ReasonCounterPending, reason)

	reason, err = fx.svc.RespondToCounterOffer(offerID, true, "")
	require.NoError(t, err)
	require.Empty(t, reason)

	// The counter amount, not the original, is what moves.
	assert.Equal(t, int64(150_000), fx.clubs.clubs[2].Budget)
	assert.Equal(t, int64(1_650_000), fx.clubs.clubs[1].Budget)
	assert.Equal(t, OfferAccepted, fx.market.offers[offerID].Status)
	require.Len(t, fx.market.transfers, 1)
	assert.Equal(t, int64(650_000), fx.market.transfers[1].Fee)
}

func TestCounterOfferRejectedByBuyer(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)
	offerID := fx.pendingOfferID(t)

	reason, err = fx.svc.MakeCounterOffer(offerID, 900_000, "")
	require.NoError(t, err)
	require.Empty(t, reason)

	reason, err = fx.svc.RespondToCounterOffer(offerID, false, "demasiado caro")
	require.NoError(t, err)
	require.Empty(t, reason)

	offer := fx.market.offers[offerID]
	assert.Equal(t, OfferRejected, offer.Status)
	assert.Equal(t, ActorBuyer, offer.History[len(offer.History)-1].Actor)
	assert.Equal(t, int64(800_000), fx.clubs.clubs[2].Budget)
}

func TestRespondWithoutCounterIsDenied(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 1_000_000)
	fx.addClub(2, "Leones", 800_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)

	reason, err = fx.svc.RespondToCounterOffer(fx.pendingOfferID(t), true, "")
	require.NoError(t, err)
	assert.Equal(t, ReasonNoCounter, reason)
}

func TestDecideTransferFlipsStatusOnly(t *testing.T) {
	fx := newFixture()
	fx.addClub(2, "Leones", 800_000)
	require.NoError(t, fx.market.CreateTransfer(&Transfer{
		PlayerID: 10, PlayerName: "Carlos Vela",
		FromClub: "Tiburones", ToClub: "Leones",
		Fee: 500_000, Status: TransferPending,
	}))

	reason, err := fx.svc.DecideTransfer(1, true, "")
	require.NoError(t, err)
	require.Empty(t, reason)
	assert.Equal(t, TransferApproved, fx.market.transfers[1].Status)

	// No budget movement on this path.
	assert.Equal(t, int64(800_000), fx.clubs.clubs[2].Budget)

	// Deciding twice is denied.
	reason, err = fx.svc.DecideTransfer(1, false, "cambio de opinión")
	require.NoError(t, err)
	assert.Equal(t, ReasonTransferProcessed, reason)
	assert.Equal(t, TransferApproved, fx.market.transfers[1].Status)
}

func TestDecideTransferRejectRecordsReason(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.market.CreateTransfer(&Transfer{
		PlayerID: 10, PlayerName: "Carlos Vela",
		FromClub: "Tiburones", ToClub: "Leones",
		Fee: 500_000, Status: TransferPending,
	}))

	reason, err := fx.svc.DecideTransfer(1, false, "documentación incompleta")
	require.NoError(t, err)
	require.Empty(t, reason)
	assert.Equal(t, TransferRejected, fx.market.transfers[1].Status)
	assert.Equal(t, "documentación incompleta", fx.market.transfers[1].Reason)
}

func TestSetMarketOpenTogglesAndLogs(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.svc.SetMarketOpen(false))
	assert.False(t, fx.market.settings.Open)
	require.Len(t, fx.activity.entries, 1)

	// Idempotent: no extra activity when the state does not change.
	require.NoError(t, fx.svc.SetMarketOpen(false))
	assert.Len(t, fx.activity.entries, 1)
}

func TestExactBudgetOfferSucceeds(t *testing.T) {
	fx := newFixture()
	fx.addClub(1, "Tiburones", 0)
	fx.addClub(2, "Leones", 500_000)
	fx.addPlayer(10, "Carlos Vela", uintPtr(1), 500_000, true)

	reason, err := fx.svc.MakeOffer(OfferRequest{PlayerID: 10, ToClub: "Leones", Amount: 500_000})
	require.NoError(t, err)
	require.Empty(t, reason)

	reason, err = fx.svc.ProcessTransfer(fx.pendingOfferID(t))
	require.NoError(t, err)
	require.Empty(t, reason)
	assert.Equal(t, int64(0), fx.clubs.clubs[2].Budget)
	assert.Equal(t, int64(500_000), fx.clubs.clubs[1].Budget)
}
