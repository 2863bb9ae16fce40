package market

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows() []ExportRow {
	return []ExportRow{
		{
			ID: 1, PlayerID: 10, PlayerName: "Carlos Vela",
			FromClub: "Tiburones", ToClub: "Leones",
			Amount: 500_000, Status: OfferAccepted,
			Date: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, PlayerID: 11, PlayerName: `Juan "El Loco" Pérez`,
			FromClub: "Águilas, FC", ToClub: "Leones",
			Amount: 250_000, Status: OfferPending,
			Date: time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSVHeaderAndQuoting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,playerId,playerName,fromClub,toClub,amount,status,date", lines[0])
	assert.Equal(t, `1,10,Carlos Vela,Tiburones,Leones,500000,accepted,2026-03-15T12:00:00Z`, lines[1])
	// Embedded quotes are doubled, fields with commas quoted.
	assert.Equal(t, `2,11,"Juan ""El Loco"" Pérez","Águilas, FC",Leones,250000,pending,2026-04-01T09:30:00Z`, lines[2])
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var decoded []ExportRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleRows(), decoded)
}

func TestOfferExportRowsUseFinalAmount(t *testing.T) {
	counter := int64(650_000)
	offers := []TransferOffer{
		{PlayerID: 10, PlayerName: "Carlos Vela", FromClub: "Tiburones", ToClub: "Leones",
			Amount: 500_000, Status: OfferAccepted, CounterAmount: &counter},
		{PlayerID: 11, PlayerName: "Pedro Gómez", FromClub: "Tiburones", ToClub: "Leones",
			Amount: 400_000, Status: OfferPending},
	}

	rows := OfferExportRows(offers)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(650_000), rows[0].Amount)
	assert.Equal(t, int64(400_000), rows[1].Amount)
}

func TestTransferExportRows(t *testing.T) {
	transfers := []Transfer{
		{PlayerID: 10, PlayerName: "Carlos Vela", FromClub: "Tiburones", ToClub: "Leones",
			Fee: 500_000, Status: TransferApproved, Date: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)},
	}

	rows := TransferExportRows(transfers)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(500_000), rows[0].Amount)
	assert.Equal(t, TransferApproved, rows[0].Status)
}
