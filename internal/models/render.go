package models

import (
	"fmt"
	"strings"
)

// Debug rendering of the assembled document. Append-only and
// indentation-aware; carries no parsing semantics.

type indentWriter struct {
	b     strings.Builder
	depth int
}

func (w *indentWriter) line(format string, args ...interface{}) {
	w.b.WriteString(strings.Repeat("    ", w.depth))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *indentWriter) indented(fn func()) {
	w.depth++
	fn()
	w.depth--
}

// Render returns a multi-line indented dump of the document for diagnostics.
func (f *File) Render() string {
	w := &indentWriter{}
	w.line("File: \"%s\" to \"%s\" at %s (#%d) {", f.Sender, f.Receiver, f.Creation, f.Ident)
	w.indented(func() {
		for i := range f.Groups {
			f.Groups[i].render(w)
		}
	})
	w.line("}")
	return w.b.String()
}

func (f *File) String() string {
	return f.Render()
}

func (g *Group) render(w *indentWriter) {
	head := fmt.Sprintf("Group %s: ", g.Status)
	if g.Originator != nil {
		head += fmt.Sprintf("\"%s\"", *g.Originator)
	} else {
		head += "unknown originator"
	}
	if g.UltimateReceiver != nil {
		head += fmt.Sprintf(" to \"%s\"", *g.UltimateReceiver)
	}
	head += fmt.Sprintf(" at %s", g.AsOf)
	if g.AsOfDateMod != nil {
		head += fmt.Sprintf(" (%s)", *g.AsOfDateMod)
	}
	head += fmt.Sprintf(" in %s {", g.EffectiveCurrency())
	w.line("%s", head)
	w.indented(func() {
		for i := range g.Accounts {
			g.Accounts[i].render(w)
		}
	})
	w.line("},")
}

func (a *Account) render(w *indentWriter) {
	head := fmt.Sprintf("Account %q ", string(a.Number))
	if a.Currency != nil {
		head += fmt.Sprintf("(%s) ", *a.Currency)
	}
	w.line("%s{", head)
	w.indented(func() {
		w.line("Infos: [")
		w.indented(func() {
			for _, info := range a.Infos {
				renderInfo(w, info)
			}
		})
		w.line("],")
		w.line("Transaction Details: [")
		w.indented(func() {
			for i := range a.Details {
				a.Details[i].render(w)
			}
		})
		w.line("],")
	})
	w.line("},")
}

func renderInfo(w *indentWriter, info AccountInfo) {
	switch i := info.(type) {
	case StatusInfo:
		head := i.Code.String()
		if i.Amount != nil {
			head += fmt.Sprintf(": %d", *i.Amount)
		}
		if i.Funds == nil {
			w.line("%s,", head)
			return
		}
		w.line("%s {", head)
		w.indented(func() {
			renderFunds(w, i.Funds)
		})
		w.line("},")
	case SummaryInfo:
		head := i.Code.String()
		if i.Amount != nil {
			head += fmt.Sprintf(": %d", *i.Amount)
		}
		w.line("%s {", head)
		w.indented(func() {
			if i.ItemCount != nil {
				w.line("Item count: %d,", *i.ItemCount)
			}
			if i.Funds != nil {
				renderFunds(w, i.Funds)
			}
		})
		w.line("},")
	}
}

func (d *TransactionDetail) render(w *indentWriter) {
	head := fmt.Sprintf("Transaction: %s", d.Code)
	if d.Amount != nil {
		head += fmt.Sprintf(": %d", *d.Amount)
	}
	w.line("%s {", head)
	w.indented(func() {
		if d.Funds != nil {
			renderFunds(w, d.Funds)
		}
		if d.BankRef != nil {
			w.line("Bank ref: %q,", string(*d.BankRef))
		}
		if d.CustomerRef != nil {
			w.line("Customer ref: %q,", string(*d.CustomerRef))
		}
		for _, text := range d.Text {
			w.line("Text: %q,", text)
		}
	})
	w.line("},")
}

func renderFunds(w *indentWriter, funds FundsType) {
	switch f := funds.(type) {
	case FundsUnknown:
		w.line("Funds,")
	case FundsImmediate:
		w.line("Funds(Immediate),")
	case FundsOneDay:
		w.line("Funds(One day),")
	case FundsTwoOrMoreDays:
		w.line("Funds(Two+ days),")
	case FundsValueDated:
		w.line("Funds(Value dated): %s,", f.Avail)
	case FundsDistributedCategories:
		w.line("Funds(Distributed avail) {")
		w.indented(func() {
			if f.Immediate != nil {
				w.line("Immediate avail: %d,", *f.Immediate)
			}
			if f.OneDay != nil {
				w.line("One-day avail: %d,", *f.OneDay)
			}
			if f.MoreThanOneDay != nil {
				w.line("Two or more days avail: %d,", *f.MoreThanOneDay)
			}
		})
		w.line("},")
	case *FundsDistributedTable:
		w.line("Funds(Distributed avail) [")
		w.indented(func() {
			for _, dist := range f.Distributions {
				w.line("%d days: %d,", dist.Days, dist.Amount)
			}
		})
		w.line("],")
	}
}
