package market

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"
)

// ExportRow is the flat shape shared by CSV and JSON exports of the
// filtered offer/transfer lists.
type ExportRow struct {
	ID         uint      `json:"id"`
	PlayerID   uint      `json:"playerId"`
	PlayerName string    `json:"playerName"`
	FromClub   string    `json:"fromClub"`
	ToClub     string    `json:"toClub"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       time.Time `json:"date"`
}

// OfferExportRows flattens offers for export. The amount is the final
// (possibly countered) amount.
func OfferExportRows(offers []TransferOffer) []ExportRow {
	rows := make([]ExportRow, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		rows = append(rows, ExportRow{
			ID:         o.ID,
			PlayerID:   o.PlayerID,
			PlayerName: o.PlayerName,
			FromClub:   o.FromClub,
			ToClub:     o.ToClub,
			Amount:     o.FinalAmount(),
			Status:     o.Status,
			Date:       o.CreatedAt,
		})
	}
	return rows
}

// TransferExportRows flattens transfer records for export.
func TransferExportRows(transfers []Transfer) []ExportRow {
	rows := make([]ExportRow, 0, len(transfers))
	for i := range transfers {
		t := &transfers[i]
		rows = append(rows, ExportRow{
			ID:         t.ID,
			PlayerID:   t.PlayerID,
			PlayerName: t.PlayerName,
			FromClub:   t.FromClub,
			ToClub:     t.ToClub,
			Amount:     t.Fee,
			Status:     t.Status,
			Date:       t.Date,
		})
	}
	return rows
}

// WriteCSV writes rows as RFC4180-quoted CSV with a header line.
func WriteCSV(w io.Writer, rows []ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "playerId", "playerName", "fromClub", "toClub", "amount", "status", "date"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.PlayerID), 10),
			r.PlayerName,
			r.FromClub,
			r.ToClub,
			strconv.FormatInt(r.Amount, 10),
			r.Status,
			r.Date.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as a JSON array.
func WriteJSON(w io.Writer, rows []ExportRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
