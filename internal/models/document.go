package models

// Party identifies a sender, receiver or originator of a transmission.
type Party string

// AccountNumber is an opaque customer account identifier. The format carries
// no checksum; it is never validated beyond being non-empty.
type AccountNumber string

// ReferenceNum is a bank or customer reference attached to a transaction.
type ReferenceNum string

// FileIdent is the numeric identifier of one transmission.
type FileIdent uint32

// File is the root of an assembled transmission: one physical file sent from
// a bank to a receiver. Built once per successful conversion and not mutated
// afterwards. Group order is transmission order.
type File struct {
	Sender   Party
	Receiver Party
	Creation BaiDateTime
	Ident    FileIdent
	Groups   []Group
	Control  *FileControl
}

// Group is one logical batch within a file, scoped to an as-of date or
// instant. Account order is transmission order.
type Group struct {
	UltimateReceiver *Party
	// Originator is optional because many real-world senders omit it.
	Originator  *Party
	Status      GroupStatus
	AsOf        BaiDateOrTime
	Currency    *Currency
	AsOfDateMod *AsOfDateModifier
	Accounts    []Account
	Control     *GroupControl
}

// EffectiveCurrency resolves the group currency, falling back to the system
// default when the header omitted it. The stored Currency field always
// reflects exactly what was transmitted; callers interpreting amounts must go
// through this accessor rather than read the field directly.
func (g Group) EffectiveCurrency() Currency {
	if g.Currency != nil {
		return *g.Currency
	}
	return DefaultCurrency()
}

// Account is one customer account's data within a group. Info and detail
// order is transmission order.
type Account struct {
	Number   AccountNumber
	Currency *Currency
	Infos    []AccountInfo
	Details  []TransactionDetail
	Control  *AccountControl
}

// EffectiveCurrency resolves the two-level currency cascade: the account
// currency if transmitted, else the owning group's effective currency.
func (a Account) EffectiveCurrency(g Group) Currency {
	if a.Currency != nil {
		return *a.Currency
	}
	return g.EffectiveCurrency()
}

// AccountInfo is one balance entry on an account header: either a summary
// total or a point-in-time status figure. The two shapes stay distinct
// because summary amounts are unsigned while status amounts are signed.
type AccountInfo interface {
	isAccountInfo()

	// AmountMoney attaches the entry amount, if present, to a currency.
	AmountMoney(cur Currency) (Money, bool)
}

// SummaryInfo is a summary balance: an unsigned total with an optional item
// count and funds-availability descriptor.
type SummaryInfo struct {
	Code      SummaryCode
	Amount    *uint64
	ItemCount *uint32
	Funds     FundsType
}

// StatusInfo is a status balance: a signed point-in-time figure with an
// optional funds-availability descriptor.
type StatusInfo struct {
	Code   StatusCode
	Amount *int64
	Funds  FundsType
}

func (SummaryInfo) isAccountInfo() {}
func (StatusInfo) isAccountInfo()  {}

// AmountMoney attaches the summary amount, if present, to a currency.
func (i SummaryInfo) AmountMoney(cur Currency) (Money, bool) {
	if i.Amount == nil {
		return Money{}, false
	}
	return NewMoneyMinor(int64(*i.Amount), cur), true
}

// AmountMoney attaches the status amount, if present, to a currency.
func (i StatusInfo) AmountMoney(cur Currency) (Money, bool) {
	if i.Amount == nil {
		return Money{}, false
	}
	return NewMoneyMinor(*i.Amount, cur), true
}

// TransactionDetail is one transaction line on an account. Text lines arrive
// in order, one per continuation record.
type TransactionDetail struct {
	Code        DetailCode
	Amount      *int64
	Funds       FundsType
	BankRef     *ReferenceNum
	CustomerRef *ReferenceNum
	Text        []string
}

// AmountMoney attaches the transaction amount, if present, to a currency.
func (d TransactionDetail) AmountMoney(cur Currency) (Money, bool) {
	if d.Amount == nil {
		return Money{}, false
	}
	return NewMoneyMinor(*d.Amount, cur), true
}

// FileControl carries the file trailer's declared totals. Stored as
// transmitted; cross-checked only in strict mode.
type FileControl struct {
	Total       *int64
	GroupCount  *int
	RecordCount *int
}

// GroupControl carries the group trailer's declared totals.
type GroupControl struct {
	Total        *int64
	AccountCount *int
	RecordCount  *int
}

// AccountControl carries the account trailer's declared totals.
type AccountControl struct {
	Total       *int64
	RecordCount *int
}
