package market

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/virtualzone/virtualzone-api/internal/activity"
	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

// Service runs the transfer-market workflow: offer creation, counter-offer
// negotiation and atomic transfer execution.
//
// Every operation reports business failures as a user-facing denial reason
// (the first return value, "" on success) and reserves the error return for
// infrastructure problems. No operation panics; state is left untouched on
// any denial except where the spec of the operation says otherwise (a failed
// ProcessTransfer force-rejects the offer so it cannot hang pending against
// missing data).
type Service struct {
	market   MarketRepository
	players  player.PlayerRepository
	clubs    club.ClubRepository
	activity activity.ActivityRepository
	tx       TxRunner
	policy   Policy
}

// NewService wires the market workflow service.
func NewService(
	market MarketRepository,
	players player.PlayerRepository,
	clubs club.ClubRepository,
	activityRepo activity.ActivityRepository,
	tx TxRunner,
	policy Policy,
) *Service {
	return &Service{
		market:   market,
		players:  players,
		clubs:    clubs,
		activity: activityRepo,
		tx:       tx,
		policy:   policy,
	}
}

// OfferRequest carries the parameters of a new offer. FromClub is the
// selling club's name, ToClub the buying club's.
type OfferRequest struct {
	PlayerID uint
	FromClub string
	ToClub   string
	Amount   int64
	UserID   uint
}

func newEvent(actor, action, details string) OfferEvent {
	return OfferEvent{
		ID:      uuid.NewString(),
		Date:    time.Now(),
		Actor:   actor,
		Action:  action,
		Details: details,
	}
}

// MakeOffer creates a pending offer for a listed player, or signs a free
// agent directly without an offer cycle. Returns a denial reason or "".
func (s *Service) MakeOffer(req OfferRequest) (string, error) {
	settings, err := s.market.GetSettings()
	if err != nil {
		return "", err
	}
	if !settings.Open {
		return ReasonMarketClosed, nil
	}

	p, err := s.players.GetByID(req.PlayerID)
	if err != nil {
		return "", err
	}
	if p == nil {
		return ReasonPlayerNotFound, nil
	}

	buyer, err := s.clubs.GetByName(req.ToClub)
	if err != nil {
		return "", err
	}
	if buyer == nil {
		return ReasonBuyerNotFound, nil
	}

	if IsFreeAgent(p) {
		return s.signFreeAgent(p, buyer, req.Amount)
	}

	if reason := ValidateOfferBasics(p, buyer, req.Amount, s.policy); reason != "" {
		return reason, nil
	}

	seller, err := s.clubs.GetByID(*p.ClubID)
	if err != nil {
		return "", err
	}
	if seller == nil {
		return ReasonSellerNotFound, nil
	}

	existing, err := s.market.GetPendingOffer(p.ID, buyer.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return ReasonDuplicateOffer, nil
	}

	offer := TransferOffer{
		PlayerID:    p.ID,
		PlayerName:  p.Name,
		FromClubID:  seller.ID,
		FromClub:    seller.Name,
		ToClubID:    buyer.ID,
		ToClub:      buyer.Name,
		Amount:      req.Amount,
		Status:      OfferPending,
		CreatedByID: req.UserID,
		History: OfferHistory{
			newEvent(ActorBuyer, "offer_created",
				fmt.Sprintf("Oferta de %d por %s", req.Amount, p.Name)),
		},
	}
	if err := s.market.CreateOffer(&offer); err != nil {
		return "", err
	}

	s.activity.Append(buyer.Name, "offer_created",
		fmt.Sprintf("%s ofrece %d por %s (%s)", buyer.Name, req.Amount, p.Name, seller.Name))
	return "", nil
}

// signFreeAgent executes the direct signing of a player with no club:
// budget debit, club assignment and a Transfer record in one transaction.
// No TransferOffer is ever created on this path.
func (s *Service) signFreeAgent(p *player.Player, buyer *club.Club, amount int64) (string, error) {
	if amount < 0 {
		return ReasonInvalidAmount, nil
	}
	if buyer.Budget < amount {
		return ReasonInsufficientBudget, nil
	}

	err := s.tx.RunInTransaction(func(m MarketRepository, players player.PlayerRepository, clubs club.ClubRepository) error {
		if err := clubs.AdjustBudget(buyer.ID, -amount); err != nil {
			return err
		}
		p.ClubID = &buyer.ID
		p.TransferListed = false
		if err := players.Update(p); err != nil {
			return err
		}
		return m.CreateTransfer(&Transfer{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			FromClub:   "",
			ToClub:     buyer.Name,
			Fee:        amount,
			Date:       time.Now(),
			Status:     TransferApproved,
		})
	})
	if err != nil {
		return "", err
	}

	s.activity.Append(buyer.Name, "free_agent_signed",
		fmt.Sprintf("%s ficha al agente libre %s por %d", buyer.Name, p.Name, amount))
	return "", nil
}

// ProcessTransfer executes the club/player mutation for an offer moving to
// accepted: buyer debit, seller credit, ownership change and a Transfer
// record, all atomically. On missing data or insufficient budget the offer
// is force-rejected and the reason returned, with no budget or ownership
// mutation.
func (s *Service) ProcessTransfer(offerID uint) (string, error) {
	return s.processTransfer(offerID, ActorSeller)
}

func (s *Service) processTransfer(offerID uint, actor string) (string, error) {
	offer, err := s.market.GetOfferByID(offerID)
	if err != nil {
		return "", err
	}
	if offer == nil {
		return ReasonOfferNotFound, nil
	}
	if offer.IsTerminal() {
		return ReasonAlreadyProcessed, nil
	}

	fee := offer.FinalAmount()

	p, err := s.players.GetByID(offer.PlayerID)
	if err != nil {
		return "", err
	}
	buyer, err := s.clubs.GetByID(offer.ToClubID)
	if err != nil {
		return "", err
	}
	seller, err := s.clubs.GetByID(offer.FromClubID)
	if err != nil {
		return "", err
	}

	var reason string
	switch {
	case p == nil:
		reason = ReasonPlayerNotFound
	case buyer == nil:
		reason = ReasonBuyerNotFound
	case seller == nil:
		reason = ReasonSellerNotFound
	case buyer.Budget < fee:
		reason = ReasonInsufficientBudget
	}
	if reason != "" {
		// Fail safe: an offer referencing missing data or an unaffordable
		// fee must not stay pending. Reject it, move no money.
		offer.Status = OfferRejected
		offer.History = append(offer.History, newEvent(actor, "rejected", reason))
		if err := s.market.UpdateOffer(offer); err != nil {
			return "", err
		}
		return reason, nil
	}

	err = s.tx.RunInTransaction(func(m MarketRepository, players player.PlayerRepository, clubs club.ClubRepository) error {
		if err := clubs.AdjustBudget(buyer.ID, -fee); err != nil {
			return err
		}
		if err := clubs.AdjustBudget(seller.ID, fee); err != nil {
			return err
		}

		// TransferValue is deliberately preserved: the fee paid is
		// historical, not the player's new valuation.
		p.ClubID = &buyer.ID
		p.TransferListed = false
		if err := players.Update(p); err != nil {
			return err
		}

		if err := m.CreateTransfer(&Transfer{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			FromClub:   seller.Name,
			ToClub:     buyer.Name,
			Fee:        fee,
			Date:       time.Now(),
			Status:     TransferApproved,
		}); err != nil {
			return err
		}

		offer.Status = OfferAccepted
		offer.History = append(offer.History, newEvent(actor, "accepted",
			fmt.Sprintf("Transferencia completada por %d", fee)))
		return m.UpdateOffer(offer)
	})
	if err != nil {
		return "", err
	}

	s.activity.Append(buyer.Name, "transfer_completed",
		fmt.Sprintf("%s ficha a %s desde %s por %d", buyer.Name, p.Name, seller.Name, fee))
	return "", nil
}

// MakeCounterOffer records the seller's counter amount on a pending offer.
func (s *Service) MakeCounterOffer(offerID uint, counterAmount int64, message string) (string, error) {
	offer, err := s.market.GetOfferByID(offerID)
	if err != nil {
		return "", err
	}
	if offer == nil {
		return ReasonOfferNotFound, nil
	}
	if offer.IsTerminal() {
		return ReasonAlreadyProcessed, nil
	}
	if offer.Status != OfferPending {
		return ReasonCounterPending, nil
	}
	if counterAmount <= 0 {
		return ReasonInvalidAmount, nil
	}

	offer.Status = OfferCounterOffer
	offer.CounterAmount = &counterAmount
	offer.CounterMessage = message
	details := fmt.Sprintf("Contraoferta de %d", counterAmount)
	if message != "" {
		details += ": " + message
	}
	offer.History = append(offer.History, newEvent(ActorSeller, "counter_offer", details))

	if err := s.market.UpdateOffer(offer); err != nil {
		return "", err
	}
	return "", nil
}

// RespondToCounterOffer resolves a countered offer. Accepting re-runs the
// full transfer execution with the counter amount; if that fails the offer
// is left rejected by ProcessTransfer and the reason propagates. Rejecting
// closes the offer with a buyer-actor history entry.
func (s *Service) RespondToCounterOffer(offerID uint, accept bool, message string) (string, error) {
	offer, err := s.market.GetOfferByID(offerID)
	if err != nil {
		return "", err
	}
	if offer == nil {
		return ReasonOfferNotFound, nil
	}
	if offer.IsTerminal() {
		return ReasonAlreadyProcessed, nil
	}
	if offer.Status != OfferCounterOffer {
		return ReasonNoCounter, nil
	}

	if accept {
		return s.processTransfer(offerID, ActorBuyer)
	}

	offer.Status = OfferRejected
	details := "Contraoferta rechazada"
	if message != "" {
		details += ": " + message
	}
	offer.History = append(offer.History, newEvent(ActorBuyer, "counter_rejected", details))
	if err := s.market.UpdateOffer(offer); err != nil {
		return "", err
	}
	return "", nil
}

// RejectOffer closes a live offer without a transfer (direct seller
// rejection from pending, no negotiation).
func (s *Service) RejectOffer(offerID uint, message string) (string, error) {
	offer, err := s.market.GetOfferByID(offerID)
	if err != nil {
		return "", err
	}
	if offer == nil {
		return ReasonOfferNotFound, nil
	}
	if offer.IsTerminal() {
		return ReasonAlreadyProcessed, nil
	}

	offer.Status = OfferRejected
	details := "Oferta rechazada"
	if message != "" {
		details += ": " + message
	}
	offer.History = append(offer.History, newEvent(ActorSeller, "rejected", details))
	if err := s.market.UpdateOffer(offer); err != nil {
		return "", err
	}
	return "", nil
}

// DecideTransfer is the lightweight admin decision on a pre-vetted Transfer
// record: a status flip with no budget movement, used by the simple market
// panel. The full budget-moving execution lives in ProcessTransfer.
func (s *Service) DecideTransfer(transferID uint, approve bool, reason string) (string, error) {
	t, err := s.market.GetTransferByID(transferID)
	if err != nil {
		return "", err
	}
	if t == nil {
		return ReasonTransferNotFound, nil
	}
	if t.Status != TransferPending {
		return ReasonTransferProcessed, nil
	}

	if approve {
		t.Status = TransferApproved
	} else {
		t.Status = TransferRejected
		t.Reason = reason
	}
	if err := s.market.UpdateTransfer(t); err != nil {
		return "", err
	}

	action := "transfer_approved"
	if !approve {
		action = "transfer_rejected"
	}
	s.activity.Append("admin", action,
		fmt.Sprintf("Transferencia de %s (%s → %s) %s", t.PlayerName, t.FromClub, t.ToClub, t.Status))
	return "", nil
}

// SetMarketOpen flips the global market flag.
func (s *Service) SetMarketOpen(open bool) error {
	settings, err := s.market.GetSettings()
	if err != nil {
		return err
	}
	if settings.Open == open {
		return nil
	}
	settings.Open = open
	if err := s.market.SaveSettings(settings); err != nil {
		return err
	}

	state := "abierto"
	if !open {
		state = "cerrado"
	}
	s.activity.Append("admin", "market_toggled", "Mercado "+state)
	return nil
}

// Valuate exposes the rules engine's valuation for a player, with the
// configured suggestion bands.
func (s *Service) Valuate(playerID uint) (*Valuation, [3]int64, string, error) {
	p, err := s.players.GetByID(playerID)
	if err != nil {
		return nil, [3]int64{}, "", err
	}
	if p == nil {
		return nil, [3]int64{}, ReasonPlayerNotFound, nil
	}
	v := ComputeValuation(p, s.policy)
	low, fair, high := s.policy.SuggestedAmounts(v)
	return &v, [3]int64{low, fair, high}, "", nil
}
