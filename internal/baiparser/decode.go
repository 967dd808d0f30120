package baiparser

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/bai-csv/internal/models"
	"fjacquet/bai-csv/internal/parsererror"
)

// fieldCursor walks the comma-delimited fields of one raw record. An empty
// field and a prematurely ended record both read as the empty string, which
// is how the format signals an absent optional field.
type fieldCursor struct {
	rec rawRecord
	idx int
}

// next returns the next field, or ("", false) past the end of the record.
func (c *fieldCursor) next() (string, bool) {
	if c.idx >= len(c.rec.fields) {
		return "", false
	}
	v := c.rec.fields[c.idx]
	c.idx++
	return v, true
}

// optional returns the next field, empty when absent.
func (c *fieldCursor) optional() string {
	v, _ := c.next()
	return v
}

// mandatory returns the next field, erroring when it is empty or missing.
func (c *fieldCursor) mandatory(name string) (string, error) {
	v, ok := c.next()
	if !ok || v == "" {
		return "", c.errf("", "missing mandatory %s field", name)
	}
	return v, nil
}

// hasMore reports whether any non-empty field remains.
func (c *fieldCursor) hasMore() bool {
	for _, f := range c.rec.fields[c.idx:] {
		if f != "" {
			return true
		}
	}
	return false
}

// rest consumes and returns all remaining fields.
func (c *fieldCursor) rest() []string {
	r := c.rec.fields[c.idx:]
	c.idx = len(c.rec.fields)
	return r
}

func (c *fieldCursor) errf(value, format string, args ...interface{}) error {
	return &parsererror.FieldError{
		Line:       c.rec.line,
		RecordCode: c.rec.code,
		Field:      c.idx,
		Value:      value,
		Msg:        fmt.Sprintf(format, args...),
	}
}

func (c *fieldCursor) wrapf(value string, err error, format string, args ...interface{}) error {
	return &parsererror.FieldError{
		Line:       c.rec.line,
		RecordCode: c.rec.code,
		Field:      c.idx,
		Value:      value,
		Msg:        fmt.Sprintf(format, args...),
		Err:        err,
	}
}

func (c *fieldCursor) optionalSigned(name string) (*int64, error) {
	v := c.optional()
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, c.wrapf(v, err, "%s is not a signed integer", name)
	}
	return &n, nil
}

func (c *fieldCursor) optionalUnsigned(name string) (*uint64, error) {
	v := c.optional()
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, c.wrapf(v, err, "%s is not an unsigned integer", name)
	}
	return &n, nil
}

func (c *fieldCursor) optionalCount(name string) (*int, error) {
	v := c.optional()
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 31)
	if err != nil {
		return nil, c.wrapf(v, err, "%s is not a count", name)
	}
	count := int(n)
	return &count, nil
}

func (c *fieldCursor) optionalCurrency() (*models.Currency, error) {
	v := c.optional()
	if v == "" {
		return nil, nil
	}
	cur, err := models.ParseCurrency(v)
	if err != nil {
		return nil, c.wrapf(v, err, "invalid currency code")
	}
	return &cur, nil
}

func (c *fieldCursor) optionalParty() *models.Party {
	v := c.optional()
	if v == "" {
		return nil
	}
	p := models.Party(v)
	return &p
}

// decodeRecord decodes one raw record according to the field grammar of its
// type code. Purely per-line; cross-record rules live in the converter.
func decodeRecord(raw rawRecord) (record, error) {
	switch raw.code {
	case codeFileHeader:
		return decodeFileHeader(raw)
	case codeGroupHeader:
		return decodeGroupHeader(raw)
	case codeAccountIdent:
		return decodeAccountIdent(raw)
	case codeTransactionDetail:
		return decodeTransactionDetail(raw)
	case codeContinuation:
		return continuationRecord{line: raw.line, fields: raw.fields}, nil
	case codeAccountTrailer:
		return decodeAccountTrailer(raw)
	case codeGroupTrailer:
		return decodeGroupTrailer(raw)
	case codeFileTrailer:
		return decodeFileTrailer(raw)
	default:
		// unreachable: the lexer rejects unknown type codes
		return nil, &parsererror.LexicalError{
			Line: raw.line,
			Msg:  "unrecognized record type code '" + raw.code + "'",
		}
	}
}

func decodeFileHeader(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	sender, err := c.mandatory("sender")
	if err != nil {
		return nil, err
	}
	receiver, err := c.mandatory("receiver")
	if err != nil {
		return nil, err
	}
	dateField, err := c.mandatory("creation date")
	if err != nil {
		return nil, err
	}
	timeField := c.optional()
	creation, err := models.ParseDateTime(dateField, timeField)
	if err != nil {
		return nil, c.wrapf(dateField, err, "invalid creation timestamp")
	}
	identField, err := c.mandatory("file identifier")
	if err != nil {
		return nil, err
	}
	ident, err := strconv.ParseUint(identField, 10, 32)
	if err != nil {
		return nil, c.wrapf(identField, err, "file identifier is not numeric")
	}
	// physical record length, block size and version number are transport
	// framing hints; the in-memory pipeline has no use for them
	return fileHeaderRecord{
		line:     raw.line,
		sender:   models.Party(sender),
		receiver: models.Party(receiver),
		creation: creation,
		ident:    models.FileIdent(ident),
	}, nil
}

func decodeGroupHeader(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	ultimateReceiver := c.optionalParty()
	originator := c.optionalParty()
	statusField, err := c.mandatory("group status")
	if err != nil {
		return nil, err
	}
	status, err := models.ParseGroupStatus(statusField)
	if err != nil {
		return nil, c.wrapf(statusField, err, "invalid group status")
	}
	dateField, err := c.mandatory("as-of date")
	if err != nil {
		return nil, err
	}
	timeField := c.optional()
	asOf, err := models.ParseDateOrTime(dateField, timeField)
	if err != nil {
		return nil, c.wrapf(dateField, err, "invalid as-of date")
	}
	currency, err := c.optionalCurrency()
	if err != nil {
		return nil, err
	}
	var asOfDateMod *models.AsOfDateModifier
	if modField := c.optional(); modField != "" {
		mod, err := models.ParseAsOfDateModifier(modField)
		if err != nil {
			return nil, c.wrapf(modField, err, "invalid as-of-date modifier")
		}
		asOfDateMod = &mod
	}
	return groupHeaderRecord{
		line:             raw.line,
		ultimateReceiver: ultimateReceiver,
		originator:       originator,
		status:           status,
		asOf:             asOf,
		currency:         currency,
		asOfDateMod:      asOfDateMod,
	}, nil
}

func decodeAccountIdent(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	number, err := c.mandatory("account number")
	if err != nil {
		return nil, err
	}
	currency, err := c.optionalCurrency()
	if err != nil {
		return nil, err
	}
	var infos []models.AccountInfo
	for c.hasMore() {
		info, err := decodeAccountInfo(c)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return accountIdentRecord{
		line:     raw.line,
		number:   models.AccountNumber(number),
		currency: currency,
		infos:    infos,
	}, nil
}

// decodeAccountInfo decodes one {code, amount, item count, funds type} group
// from an account identifier record. Codes in the status band carry a signed
// amount and no item count; summary codes carry an unsigned amount and an
// optional item count.
func decodeAccountInfo(c *fieldCursor) (models.AccountInfo, error) {
	codeField, err := c.mandatory("balance type code")
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(codeField, 10, 16)
	if err != nil {
		return nil, c.wrapf(codeField, err, "balance type code is not numeric")
	}
	if models.IsStatusRange(uint16(n)) {
		code, err := models.NewStatusCode(uint16(n))
		if err != nil {
			return nil, c.wrapf(codeField, err, "invalid status code")
		}
		amount, err := c.optionalSigned("status amount")
		if err != nil {
			return nil, err
		}
		if itemCount := c.optional(); itemCount != "" {
			return nil, c.errf(itemCount, "status balance %s cannot carry an item count", code)
		}
		funds, err := parseFundsType(c)
		if err != nil {
			return nil, err
		}
		return models.StatusInfo{Code: code, Amount: amount, Funds: funds}, nil
	}
	code, err := models.NewSummaryCode(uint16(n))
	if err != nil {
		return nil, c.wrapf(codeField, err, "invalid summary code")
	}
	amount, err := c.optionalUnsigned("summary amount")
	if err != nil {
		return nil, err
	}
	var itemCount *uint32
	if v := c.optional(); v != "" {
		count, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, c.wrapf(v, err, "item count is not numeric")
		}
		n := uint32(count)
		itemCount = &n
	}
	funds, err := parseFundsType(c)
	if err != nil {
		return nil, err
	}
	return models.SummaryInfo{Code: code, Amount: amount, ItemCount: itemCount, Funds: funds}, nil
}

func decodeTransactionDetail(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	codeField, err := c.mandatory("detail code")
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseUint(codeField, 10, 16)
	if err != nil {
		return nil, c.wrapf(codeField, err, "detail code is not numeric")
	}
	code, err := models.NewDetailCode(uint16(n))
	if err != nil {
		return nil, c.wrapf(codeField, err, "invalid detail code")
	}
	amount, err := c.optionalSigned("transaction amount")
	if err != nil {
		return nil, err
	}
	funds, err := parseFundsType(c)
	if err != nil {
		return nil, err
	}
	var bankRef, customerRef *models.ReferenceNum
	if v := c.optional(); v != "" {
		ref := models.ReferenceNum(v)
		bankRef = &ref
	}
	if v := c.optional(); v != "" {
		ref := models.ReferenceNum(v)
		customerRef = &ref
	}
	// The text field runs to the end of the record and may itself contain
	// commas, so the remaining fields are rejoined verbatim.
	var text []string
	if joined := strings.Join(c.rest(), ","); joined != "" {
		text = []string{joined}
	}
	return transactionDetailRecord{
		line: raw.line,
		detail: models.TransactionDetail{
			Code:        code,
			Amount:      amount,
			Funds:       funds,
			BankRef:     bankRef,
			CustomerRef: customerRef,
			Text:        text,
		},
	}, nil
}

func decodeAccountTrailer(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	total, err := c.optionalSigned("account control total")
	if err != nil {
		return nil, err
	}
	recordCount, err := c.optionalCount("record count")
	if err != nil {
		return nil, err
	}
	return accountTrailerRecord{
		line:    raw.line,
		control: models.AccountControl{Total: total, RecordCount: recordCount},
	}, nil
}

func decodeGroupTrailer(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	total, err := c.optionalSigned("group control total")
	if err != nil {
		return nil, err
	}
	accountCount, err := c.optionalCount("account count")
	if err != nil {
		return nil, err
	}
	recordCount, err := c.optionalCount("record count")
	if err != nil {
		return nil, err
	}
	return groupTrailerRecord{
		line:    raw.line,
		control: models.GroupControl{Total: total, AccountCount: accountCount, RecordCount: recordCount},
	}, nil
}

func decodeFileTrailer(raw rawRecord) (record, error) {
	c := &fieldCursor{rec: raw}
	total, err := c.optionalSigned("file control total")
	if err != nil {
		return nil, err
	}
	groupCount, err := c.optionalCount("group count")
	if err != nil {
		return nil, err
	}
	recordCount, err := c.optionalCount("record count")
	if err != nil {
		return nil, err
	}
	return fileTrailerRecord{
		line:    raw.line,
		control: models.FileControl{Total: total, GroupCount: groupCount, RecordCount: recordCount},
	}, nil
}
