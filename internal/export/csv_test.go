package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/bai-csv/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sampleDocument() *models.File {
	chf := models.Currency("CHF")
	bankRef := models.ReferenceNum("4556")
	return &models.File{
		Sender:   "SENDBANK",
		Receiver: "RECVCORP",
		Creation: models.NewDateTime(time.Date(2021, time.July, 6, 12, 49, 0, 0, time.UTC)),
		Ident:    1,
		Groups: []models.Group{
			{
				Status:   models.GroupUpdate,
				AsOf:     models.NewDate(time.Date(2021, time.July, 6, 0, 0, 0, 0, time.UTC)),
				Currency: &chf,
				Accounts: []models.Account{
					{
						Number: "0975312468",
						Details: []models.TransactionDetail{
							{
								Code:    models.DetailCode(495),
								Amount:  ptr(int64(10000)),
								BankRef: &bankRef,
								Text:    []string{"TRANSFER OF FUNDS", "SECOND LINE"},
							},
							{
								Code: models.DetailCode(475),
							},
						},
					},
				},
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleDocument())
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "SENDBANK", first.Sender)
	assert.Equal(t, uint32(1), first.FileIdent)
	assert.Equal(t, "2021-07-06", first.AsOfDate)
	assert.Equal(t, "Update", first.GroupStatus)
	assert.Equal(t, "0975312468", first.Account)
	assert.Equal(t, "CHF", first.Currency, "account without currency inherits the group currency")
	assert.Equal(t, "495", first.DetailCode)
	assert.Equal(t, "Outgoing Money Transfer", first.Description)
	assert.Equal(t, "100.00", first.Amount)
	assert.Equal(t, "4556", first.BankRef)
	assert.Empty(t, first.CustomerRef)
	assert.Equal(t, "TRANSFER OF FUNDS SECOND LINE", first.Text)

	second := rows[1]
	assert.Equal(t, "475", second.DetailCode)
	assert.Empty(t, second.Amount, "absent amounts stay blank instead of rendering as zero")
	assert.Empty(t, second.Text)
}

func TestRowsEmptyDocument(t *testing.T) {
	assert.Empty(t, Rows(&models.File{Sender: "A", Receiver: "B"}))
}

func TestWriteTransactionsToCSV(t *testing.T) {
	csvFile := filepath.Join(t.TempDir(), "out", "transactions.csv")
	require.NoError(t, WriteTransactionsToCSV(sampleDocument(), csvFile))

	data, err := os.ReadFile(csvFile) // #nosec G304 -- test-controlled path
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3, "header plus one line per transaction")
	assert.Equal(t,
		"sender,file_id,as_of_date,group_status,account,currency,detail_code,description,amount,bank_reference,customer_reference,text",
		strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "SENDBANK,1,2021-07-06,Update,0975312468,CHF,495,Outgoing Money Transfer,100.00,4556,")
}

func TestWriteTransactionsToCSVNilDocument(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
