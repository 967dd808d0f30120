// Package export flattens an assembled BAI document into CSV rows.
package export

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/bai-csv/internal/fileutils"
	"fjacquet/bai-csv/internal/logging"
	"fjacquet/bai-csv/internal/models"

	"github.com/gocarina/gocsv"
)

var log = logging.GetLogger()

// SetLogger allows setting a configured logger
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// TransactionRow is one flattened transaction detail with its file, group and
// account context. Amounts are rendered through the currency cascade.
type TransactionRow struct {
	Sender      string `csv:"sender"`
	FileIdent   uint32 `csv:"file_id"`
	AsOfDate    string `csv:"as_of_date"`
	GroupStatus string `csv:"group_status"`
	Account     string `csv:"account"`
	Currency    string `csv:"currency"`
	DetailCode  string `csv:"detail_code"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	BankRef     string `csv:"bank_reference"`
	CustomerRef string `csv:"customer_reference"`
	Text        string `csv:"text"`
}

// Rows flattens the document into one row per transaction detail, in
// transmission order.
func Rows(file *models.File) []TransactionRow {
	var rows []TransactionRow
	for _, group := range file.Groups {
		for _, account := range group.Accounts {
			cur := account.EffectiveCurrency(group)
			for _, detail := range account.Details {
				row := TransactionRow{
					Sender:      string(file.Sender),
					FileIdent:   uint32(file.Ident),
					AsOfDate:    group.AsOf.String(),
					GroupStatus: group.Status.String(),
					Account:     string(account.Number),
					Currency:    string(cur),
					DetailCode:  fmt.Sprintf("%03d", uint16(detail.Code)),
					Description: detail.Code.Description(),
					Text:        strings.Join(detail.Text, " "),
				}
				if money, ok := detail.AmountMoney(cur); ok {
					row.Amount = money.Amount.StringFixed(cur.Exponent())
				}
				if detail.BankRef != nil {
					row.BankRef = string(*detail.BankRef)
				}
				if detail.CustomerRef != nil {
					row.CustomerRef = string(*detail.CustomerRef)
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// WriteTransactionsToCSV writes the document's transaction details to a CSV
// file in the standardized flattened format.
func WriteTransactionsToCSV(file *models.File, csvFile string) error {
	if file == nil {
		return fmt.Errorf("cannot write nil document to CSV")
	}

	rows := Rows(file)
	log.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	if err := fileutils.EnsureParentDirectory(csvFile); err != nil {
		return err
	}

	out, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			log.WithError(err).Warn("Failed to close CSV file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
