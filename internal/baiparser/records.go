package baiparser

import "fjacquet/bai-csv/internal/models"

// record is one typed record after field-level decoding. The conversion state
// machine switches exhaustively over the concrete types.
type record interface {
	recordLine() int
	recordCode() string
}

type fileHeaderRecord struct {
	line     int
	sender   models.Party
	receiver models.Party
	creation models.BaiDateTime
	ident    models.FileIdent
}

type groupHeaderRecord struct {
	line             int
	ultimateReceiver *models.Party
	originator       *models.Party
	status           models.GroupStatus
	asOf             models.BaiDateOrTime
	currency         *models.Currency
	asOfDateMod      *models.AsOfDateModifier
}

// accountIdentRecord opens an account. The header line may carry inline
// balance entries, already decoded into infos.
type accountIdentRecord struct {
	line     int
	number   models.AccountNumber
	currency *models.Currency
	infos    []models.AccountInfo
}

type transactionDetailRecord struct {
	line   int
	detail models.TransactionDetail
}

// continuationRecord extends the preceding record. Its fields stay raw; the
// converter decides whether they are text or distribution pairs based on what
// came before.
type continuationRecord struct {
	line   int
	fields []string
}

type accountTrailerRecord struct {
	line    int
	control models.AccountControl
}

type groupTrailerRecord struct {
	line    int
	control models.GroupControl
}

type fileTrailerRecord struct {
	line    int
	control models.FileControl
}

func (r fileHeaderRecord) recordLine() int        { return r.line }
func (r groupHeaderRecord) recordLine() int       { return r.line }
func (r accountIdentRecord) recordLine() int      { return r.line }
func (r transactionDetailRecord) recordLine() int { return r.line }
func (r continuationRecord) recordLine() int      { return r.line }
func (r accountTrailerRecord) recordLine() int    { return r.line }
func (r groupTrailerRecord) recordLine() int      { return r.line }
func (r fileTrailerRecord) recordLine() int       { return r.line }

func (fileHeaderRecord) recordCode() string        { return codeFileHeader }
func (groupHeaderRecord) recordCode() string       { return codeGroupHeader }
func (accountIdentRecord) recordCode() string      { return codeAccountIdent }
func (transactionDetailRecord) recordCode() string { return codeTransactionDetail }
func (continuationRecord) recordCode() string      { return codeContinuation }
func (accountTrailerRecord) recordCode() string    { return codeAccountTrailer }
func (groupTrailerRecord) recordCode() string      { return codeGroupTrailer }
func (fileTrailerRecord) recordCode() string       { return codeFileTrailer }
