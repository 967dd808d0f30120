package baiparser

import (
	"fmt"
	"strings"

	"fjacquet/bai-csv/internal/logging"
	"fjacquet/bai-csv/internal/models"
	"fjacquet/bai-csv/internal/parsererror"
)

// Options control conversion behavior.
type Options struct {
	// StrictTotals cross-checks trailer control totals and record counts
	// against the assembled document. Off by default: many senders fill
	// trailers inconsistently.
	StrictTotals bool
}

// convState is the nesting context of the state machine.
type convState uint8

const (
	stateStart convState = iota
	stateInFile
	stateInGroup
	stateInAccount
	stateDone
)

func (s convState) String() string {
	switch s {
	case stateStart:
		return "Start"
	case stateInFile:
		return "InFile"
	case stateInGroup:
		return "InGroup"
	case stateInAccount:
		return "InAccount"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// converter assembles the ordered record sequence into the document in one
// left-to-right pass. It carries a pending-merge slot for continuation
// records: either the most recent transaction detail (text lines) or the
// most recent distributed-availability table ({days, amount} pairs), cleared
// whenever any other record arrives.
type converter struct {
	opts Options
	log  logging.Logger

	state   convState
	file    *models.File
	group   *models.Group
	account *models.Account

	pendingDetail *models.TransactionDetail
	pendingDist   *models.FundsDistributedTable

	// running counts and sums for strict-mode trailer checks
	accountRecords int
	groupRecords   int
	fileRecords    int
	groupSum       int64
	fileSum        int64
}

func newConverter(opts Options, log logging.Logger) *converter {
	return &converter{opts: opts, log: log, state: stateStart}
}

func (cv *converter) invalid(rec record, msg string) error {
	return &parsererror.ConvertError{
		Line:       rec.recordLine(),
		RecordCode: rec.recordCode(),
		State:      cv.state.String(),
		Msg:        msg,
	}
}

// flushPending appends the buffered transaction detail, if any, and clears
// the continuation targets. Called before any non-continuation record is
// applied and when the account is sealed.
func (cv *converter) flushPending() {
	if cv.pendingDetail != nil {
		cv.account.Details = append(cv.account.Details, *cv.pendingDetail)
		cv.pendingDetail = nil
	}
	cv.pendingDist = nil
}

func (cv *converter) feed(rec record) error {
	cv.fileRecords++
	switch r := rec.(type) {
	case fileHeaderRecord:
		if cv.state != stateStart {
			return cv.invalid(rec, "file header after the file was already opened")
		}
		cv.file = &models.File{
			Sender:   r.sender,
			Receiver: r.receiver,
			Creation: r.creation,
			Ident:    r.ident,
		}
		cv.state = stateInFile
		return nil

	case groupHeaderRecord:
		if cv.state != stateInFile {
			return cv.invalid(rec, "group header expected only between file header and file trailer")
		}
		cv.group = &models.Group{
			UltimateReceiver: r.ultimateReceiver,
			Originator:       r.originator,
			Status:           r.status,
			AsOf:             r.asOf,
			Currency:         r.currency,
			AsOfDateMod:      r.asOfDateMod,
		}
		cv.groupRecords = 1
		cv.groupSum = 0
		cv.state = stateInGroup
		return nil

	case accountIdentRecord:
		if cv.state != stateInGroup {
			return cv.invalid(rec, "account identifier expected only inside an open group")
		}
		cv.account = &models.Account{
			Number:   r.number,
			Currency: r.currency,
			Infos:    r.infos,
		}
		// a distribution table on the last inline balance stays open for
		// continuation records
		if len(r.infos) > 0 {
			cv.pendingDist = openDistribution(r.infos[len(r.infos)-1])
		}
		cv.accountRecords = 1
		cv.groupRecords++
		cv.state = stateInAccount
		return nil

	case transactionDetailRecord:
		if cv.state != stateInAccount {
			return cv.invalid(rec, "transaction detail expected only inside an open account")
		}
		cv.flushPending()
		detail := r.detail
		cv.pendingDetail = &detail
		cv.accountRecords++
		cv.groupRecords++
		return nil

	case continuationRecord:
		if cv.state != stateInAccount {
			return cv.invalid(rec, "continuation record with nothing to merge into")
		}
		cv.accountRecords++
		cv.groupRecords++
		return cv.mergeContinuation(r)

	case accountTrailerRecord:
		if cv.state != stateInAccount {
			return cv.invalid(rec, "account trailer with no open account")
		}
		cv.flushPending()
		cv.accountRecords++
		cv.groupRecords++
		cv.account.Control = &r.control
		sum := accountSum(cv.account)
		if cv.opts.StrictTotals {
			if err := cv.checkAccountControl(rec, r.control, sum); err != nil {
				return err
			}
		}
		cv.groupSum += sum
		cv.log.Debug("Sealed account",
			logging.Field{Key: logging.FieldRecords, Value: cv.accountRecords},
			logging.Field{Key: logging.FieldDetails, Value: len(cv.account.Details)})
		cv.group.Accounts = append(cv.group.Accounts, *cv.account)
		cv.account = nil
		cv.state = stateInGroup
		return nil

	case groupTrailerRecord:
		if cv.state != stateInGroup {
			return cv.invalid(rec, "group trailer with no open group")
		}
		cv.groupRecords++
		cv.group.Control = &r.control
		if cv.opts.StrictTotals {
			if err := cv.checkGroupControl(rec, r.control); err != nil {
				return err
			}
		}
		cv.fileSum += cv.groupSum
		cv.log.Debug("Sealed group",
			logging.Field{Key: logging.FieldAccounts, Value: len(cv.group.Accounts)})
		cv.file.Groups = append(cv.file.Groups, *cv.group)
		cv.group = nil
		cv.state = stateInFile
		return nil

	case fileTrailerRecord:
		if cv.state != stateInFile {
			return cv.invalid(rec, "file trailer while a group or account is still open")
		}
		cv.file.Control = &r.control
		if cv.opts.StrictTotals {
			if err := cv.checkFileControl(rec, r.control); err != nil {
				return err
			}
		}
		cv.state = stateDone
		return nil

	default:
		return cv.invalid(rec, "unsupported record type")
	}
}

// mergeContinuation extends the pending target. After a transaction detail
// the continuation is one more text line; after an account identifier whose
// last balance carries a distributed-availability table it is more
// {days, amount} pairs.
func (cv *converter) mergeContinuation(r continuationRecord) error {
	switch {
	case cv.pendingDetail != nil:
		cv.pendingDetail.Text = append(cv.pendingDetail.Text, strings.Join(r.fields, ","))
		return nil
	case cv.pendingDist != nil:
		c := &fieldCursor{rec: rawRecord{code: codeContinuation, fields: r.fields, line: r.line}}
		dists, err := parseDistributions(c)
		if err != nil {
			return err
		}
		cv.pendingDist.Distributions = append(cv.pendingDist.Distributions, dists...)
		return nil
	default:
		return cv.invalid(r, "continuation record with nothing to merge into")
	}
}

// finish closes the conversion. Anything short of the Done state means the
// transmission was truncated.
func (cv *converter) finish() (*models.File, error) {
	if cv.state != stateDone {
		return nil, &parsererror.UnfinishedError{State: cv.state.String()}
	}
	return cv.file, nil
}

// openDistribution returns the balance entry's distribution table when it
// has one, so continuation records can extend it.
func openDistribution(info models.AccountInfo) *models.FundsDistributedTable {
	var funds models.FundsType
	switch i := info.(type) {
	case models.SummaryInfo:
		funds = i.Funds
	case models.StatusInfo:
		funds = i.Funds
	}
	if table, ok := funds.(*models.FundsDistributedTable); ok {
		return table
	}
	return nil
}

// accountSum totals the amounts carried by an account's balances and
// transaction details, in minor units.
func accountSum(a *models.Account) int64 {
	var sum int64
	for _, info := range a.Infos {
		switch i := info.(type) {
		case models.SummaryInfo:
			if i.Amount != nil {
				sum += int64(*i.Amount)
			}
		case models.StatusInfo:
			if i.Amount != nil {
				sum += *i.Amount
			}
		}
	}
	for _, d := range a.Details {
		if d.Amount != nil {
			sum += *d.Amount
		}
	}
	return sum
}

func (cv *converter) controlMismatch(rec record, msg string, declared, computed int64) error {
	return &parsererror.ConvertError{
		Line:       rec.recordLine(),
		RecordCode: rec.recordCode(),
		State:      cv.state.String(),
		Msg:        fmt.Sprintf("%s: declared %d, computed %d", msg, declared, computed),
	}
}

func (cv *converter) checkAccountControl(rec record, ctl models.AccountControl, sum int64) error {
	if ctl.Total != nil && *ctl.Total != sum {
		return cv.controlMismatch(rec, "account control total mismatch", *ctl.Total, sum)
	}
	if ctl.RecordCount != nil && *ctl.RecordCount != cv.accountRecords {
		return cv.controlMismatch(rec, "account record count mismatch",
			int64(*ctl.RecordCount), int64(cv.accountRecords))
	}
	return nil
}

func (cv *converter) checkGroupControl(rec record, ctl models.GroupControl) error {
	if ctl.Total != nil && *ctl.Total != cv.groupSum {
		return cv.controlMismatch(rec, "group control total mismatch", *ctl.Total, cv.groupSum)
	}
	if ctl.AccountCount != nil && *ctl.AccountCount != len(cv.group.Accounts) {
		return cv.controlMismatch(rec, "group account count mismatch",
			int64(*ctl.AccountCount), int64(len(cv.group.Accounts)))
	}
	if ctl.RecordCount != nil && *ctl.RecordCount != cv.groupRecords {
		return cv.controlMismatch(rec, "group record count mismatch",
			int64(*ctl.RecordCount), int64(cv.groupRecords))
	}
	return nil
}

func (cv *converter) checkFileControl(rec record, ctl models.FileControl) error {
	if ctl.Total != nil && *ctl.Total != cv.fileSum {
		return cv.controlMismatch(rec, "file control total mismatch", *ctl.Total, cv.fileSum)
	}
	if ctl.GroupCount != nil && *ctl.GroupCount != len(cv.file.Groups) {
		return cv.controlMismatch(rec, "file group count mismatch",
			int64(*ctl.GroupCount), int64(len(cv.file.Groups)))
	}
	if ctl.RecordCount != nil && *ctl.RecordCount != cv.fileRecords {
		return cv.controlMismatch(rec, "file record count mismatch",
			int64(*ctl.RecordCount), int64(cv.fileRecords))
	}
	return nil
}
