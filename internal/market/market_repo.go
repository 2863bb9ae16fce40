package market

import (
	"errors"

	"gorm.io/gorm"

	"github.com/virtualzone/virtualzone-api/internal/club"
	"github.com/virtualzone/virtualzone-api/internal/player"
)

// MarketRepository defines the interface for offer, transfer and market
// settings data operations.
type MarketRepository interface {
	CreateOffer(o *TransferOffer) error
	GetOfferByID(id uint) (*TransferOffer, error)
	GetOffers(page, limit int, filters map[string]interface{}) ([]TransferOffer, int64, error)
	GetPendingOffer(playerID, toClubID uint) (*TransferOffer, error)
	UpdateOffer(o *TransferOffer) error

	CreateTransfer(t *Transfer) error
	GetTransferByID(id uint) (*Transfer, error)
	GetTransfers(page, limit int, filters map[string]interface{}) ([]Transfer, int64, error)
	UpdateTransfer(t *Transfer) error

	GetSettings() (*MarketSettings, error)
	SaveSettings(s *MarketSettings) error
}

// TxRunner executes a function with market, player and club repositories
// bound to a single database transaction, so budget movement and player
// reassignment commit or roll back together.
type TxRunner interface {
	RunInTransaction(fn func(m MarketRepository, p player.PlayerRepository, c club.ClubRepository) error) error
}

type marketRepository struct {
	db *gorm.DB
}

// NewMarketRepository creates a new instance of MarketRepository.
func NewMarketRepository(db *gorm.DB) MarketRepository {
	return &marketRepository{db: db}
}

func (r *marketRepository) CreateOffer(o *TransferOffer) error {
	return r.db.Create(o).Error
}

func (r *marketRepository) GetOfferByID(id uint) (*TransferOffer, error) {
	var o TransferOffer
	if err := r.db.First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *marketRepository) GetOffers(page, limit int, filters map[string]interface{}) ([]TransferOffer, int64, error) {
	var offers []TransferOffer
	var total int64

	query := r.db.Model(&TransferOffer{})
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if playerID, ok := filters["player_id"]; ok {
		query = query.Where("player_id = ?", playerID)
	}
	if clubID, ok := filters["to_club_id"]; ok {
		query = query.Where("to_club_id = ?", clubID)
	}
	if clubID, ok := filters["from_club_id"]; ok {
		query = query.Where("from_club_id = ?", clubID)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&offers).Error; err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

// GetPendingOffer returns a live (pending or countered) offer by the given
// buying club for the given player, if one exists.
func (r *marketRepository) GetPendingOffer(playerID, toClubID uint) (*TransferOffer, error) {
	var o TransferOffer
	err := r.db.Where("player_id = ? AND to_club_id = ? AND status IN ?",
		playerID, toClubID, []string{OfferPending, OfferCounterOffer}).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *marketRepository) UpdateOffer(o *TransferOffer) error {
	return r.db.Save(o).Error
}

func (r *marketRepository) CreateTransfer(t *Transfer) error {
	return r.db.Create(t).Error
}

func (r *marketRepository) GetTransferByID(id uint) (*Transfer, error) {
	var t Transfer
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *marketRepository) GetTransfers(page, limit int, filters map[string]interface{}) ([]Transfer, int64, error) {
	var transfers []Transfer
	var total int64

	query := r.db.Model(&Transfer{})
	if status, ok := filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if playerID, ok := filters["player_id"]; ok {
		query = query.Where("player_id = ?", playerID)
	}
	if clubName, ok := filters["club"]; ok {
		query = query.Where("from_club = ? OR to_club = ?", clubName, clubName)
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("date desc").Find(&transfers).Error; err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}

func (r *marketRepository) UpdateTransfer(t *Transfer) error {
	return r.db.Save(t).Error
}

// GetSettings returns the singleton market settings row, creating it open
// when missing.
func (r *marketRepository) GetSettings() (*MarketSettings, error) {
	var s MarketSettings
	if err := r.db.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s = MarketSettings{Open: true}
			if err := r.db.Create(&s).Error; err != nil {
				return nil, err
			}
			return &s, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *marketRepository) SaveSettings(s *MarketSettings) error {
	return r.db.Save(s).Error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner backed by gorm transactions.
func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) RunInTransaction(fn func(m MarketRepository, p player.PlayerRepository, c club.ClubRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(
			&marketRepository{db: tx},
			player.NewPlayerRepository(tx),
			club.NewClubRepository(tx),
		)
	})
}
