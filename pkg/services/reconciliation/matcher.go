package reconciliation

import (
	"fmt"
	"math"
	"strings"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
)

// Tolerance is the relative gap, against the sender amount, under which a pair reconciles.
const Tolerance = 0.001

var descriptionPrefixes = []string{"IC Receivable - ", "IC Payable - "}

// Reconcile matches intercompany receivables against their mirrored payables.
//
// The first pass walks receivables: the first row per ordered {entity}-{counterparty} key
// wins and later rows with the same key are dropped. The second pass walks payables and
// emits an orphan pair for every payable whose relationship has no receivable at all.
func Reconcile(rows []domain.TransactionRow) []domain.ICPair {
	var receivables, payables []domain.TransactionRow
	for _, row := range rows {
		switch {
		case row.IsReceivable():
			receivables = append(receivables, row)
		case row.IsPayable():
			payables = append(payables, row)
		}
	}

	pairs := []domain.ICPair{}
	consumed := make(map[string]struct{})

	for _, rec := range receivables {
		key := pairKey(rec.Entity, rec.Counterparty)
		if _, seen := consumed[key]; seen {
			continue
		}
		consumed[key] = struct{}{}

		pay, found := findMirror(payables, rec)
		pairs = append(pairs, matchPair(key, rec, pay, found))
	}

	for _, pay := range payables {
		if _, seen := consumed[pairKey(pay.Counterparty, pay.Entity)]; seen {
			continue
		}
		if _, found := findMirror(receivables, pay); found {
			continue
		}
		pairs = append(pairs, orphanPair(pay))
	}

	return pairs
}

func pairKey(from, to string) string {
	return fmt.Sprintf("%s-%s", from, to)
}

// findMirror returns the first row booked by row's counterparty against row's entity.
func findMirror(candidates []domain.TransactionRow, row domain.TransactionRow) (domain.TransactionRow, bool) {
	for _, c := range candidates {
		if c.Entity == row.Counterparty && c.Counterparty == row.Entity {
			return c, true
		}
	}
	return domain.TransactionRow{}, false
}

func matchPair(key string, rec, pay domain.TransactionRow, found bool) domain.ICPair {
	senderAmt := math.Abs(rec.Amount)
	receiverAmt := 0.0
	receiverCcy := rec.Currency
	if found {
		receiverAmt = math.Abs(pay.Amount)
		receiverCcy = pay.Currency
	}
	gap := math.Abs(senderAmt - receiverAmt)

	return domain.ICPair{
		ID:          key,
		From:        rec.Entity,
		To:          rec.Counterparty,
		Type:        relationshipType(rec.Description),
		SenderAmt:   senderAmt,
		ReceiverAmt: receiverAmt,
		Gap:         gap,
		Reconciled:  withinTolerance(senderAmt, gap),
		Missing:     !found,
		SenderCcy:   rec.Currency,
		ReceiverCcy: receiverCcy,
	}
}

// orphanPair reports a payable with no receivable. The payable's counterparty is the
// implied sender.
func orphanPair(pay domain.TransactionRow) domain.ICPair {
	receiverAmt := math.Abs(pay.Amount)

	return domain.ICPair{
		ID:            fmt.Sprintf("ORPHAN-%s-%s", pay.Entity, pay.Counterparty),
		From:          pay.Counterparty,
		To:            pay.Entity,
		Type:          relationshipType(pay.Description),
		SenderAmt:     0,
		ReceiverAmt:   receiverAmt,
		Gap:           receiverAmt,
		Reconciled:    false,
		OrphanPayable: true,
		SenderCcy:     pay.Currency,
		ReceiverCcy:   pay.Currency,
	}
}

// withinTolerance compares the gap against the sender amount. A zero sender only
// reconciles with a zero gap.
func withinTolerance(senderAmt, gap float64) bool {
	if senderAmt == 0 {
		return gap == 0
	}
	return gap < senderAmt*Tolerance
}

// relationshipType strips the receivable/payable prefix from a GL description.
func relationshipType(description string) string {
	for _, prefix := range descriptionPrefixes {
		if len(description) >= len(prefix) && strings.EqualFold(description[:len(prefix)], prefix) {
			return description[len(prefix):]
		}
	}
	return description
}
