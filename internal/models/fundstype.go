package models

// FundsType describes when the funds behind an amount become available.
// It is a closed set of variants selected by the qualifier character on the
// wire; consumers switch exhaustively over the concrete types.
type FundsType interface {
	isFundsType()
}

// FundsUnknown is the 'Z' qualifier: availability not reported.
type FundsUnknown struct{}

// FundsImmediate is the '0' qualifier: available immediately.
type FundsImmediate struct{}

// FundsOneDay is the '1' qualifier: available in one business day.
type FundsOneDay struct{}

// FundsTwoOrMoreDays is the '2' qualifier: available in two or more business days.
type FundsTwoOrMoreDays struct{}

// FundsDistributedCategories is the 'S' qualifier: availability split over
// three fixed buckets. Each bucket is optional on the wire.
type FundsDistributedCategories struct {
	Immediate      *int64
	OneDay         *int64
	MoreThanOneDay *int64
}

// FundsValueDated is the 'V' qualifier: available at a given date or instant.
type FundsValueDated struct {
	Avail BaiDateOrTime
}

// FundsDistributedTable is the 'D' qualifier: availability given as an
// ordered table of {days, amount} pairs. Always handled through a pointer so
// continuation records can extend the table after it is attached.
type FundsDistributedTable struct {
	Distributions []Distribution
}

// Distribution is one row of a distributed-availability table.
type Distribution struct {
	Days   uint32
	Amount int64
}

// AmountMoney attaches the row amount to a currency.
func (d Distribution) AmountMoney(cur Currency) Money {
	return NewMoneyMinor(d.Amount, cur)
}

func (FundsUnknown) isFundsType()               {}
func (FundsImmediate) isFundsType()             {}
func (FundsOneDay) isFundsType()                {}
func (FundsTwoOrMoreDays) isFundsType()         {}
func (FundsDistributedCategories) isFundsType() {}
func (FundsValueDated) isFundsType()            {}
func (*FundsDistributedTable) isFundsType()     {}
