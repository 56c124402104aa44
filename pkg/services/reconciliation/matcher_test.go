package reconciliation

import (
	"testing"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receivable(entity, cp string, amount float64, ccy string) domain.TransactionRow {
	return domain.TransactionRow{
		Entity:       entity,
		Counterparty: cp,
		Description:  "IC Receivable - Management Fees",
		Type:         domain.TransactionICReceivable,
		Amount:       amount,
		Currency:     ccy,
	}
}

func payable(entity, cp string, amount float64, ccy string) domain.TransactionRow {
	return domain.TransactionRow{
		Entity:       entity,
		Counterparty: cp,
		Description:  "IC Payable - Management Fees",
		Type:         domain.TransactionICPayable,
		Amount:       amount,
		Currency:     ccy,
	}
}

func TestReconcile_Symmetric(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		receivable("A", "B", 1000, "USD"),
		payable("B", "A", -1000, "USD"),
	})

	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.Equal(t, "A-B", p.ID)
	assert.Equal(t, "A", p.From)
	assert.Equal(t, "B", p.To)
	assert.Equal(t, "Management Fees", p.Type)
	assert.Equal(t, 1000.0, p.SenderAmt)
	assert.Equal(t, 1000.0, p.ReceiverAmt)
	assert.InDelta(t, 0, p.Gap, 1e-9)
	assert.True(t, p.Reconciled)
	assert.False(t, p.Missing)
	assert.False(t, p.OrphanPayable)
}

func TestReconcile_Tolerance(t *testing.T) {
	tests := []struct {
		name       string
		sender     float64
		receiver   float64
		reconciled bool
	}{
		{"within tolerance", 100_000, 99_950, true},
		{"just outside tolerance", 100_000, 99_890, false},
		{"outside tolerance", 100_000, 90_000, false},
		{"zero sender zero receiver", 0, 0, true},
		{"zero sender with receiver", 0, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := Reconcile([]domain.TransactionRow{
				receivable("A", "B", tt.sender, "USD"),
				payable("B", "A", tt.receiver, "USD"),
			})

			require.Len(t, pairs, 1)
			assert.Equal(t, tt.reconciled, pairs[0].Reconciled)
		})
	}
}

func TestReconcile_MissingPayable(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		receivable("A", "B", -500, "EUR"),
	})

	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.True(t, p.Missing)
	assert.False(t, p.Reconciled)
	assert.Equal(t, 500.0, p.SenderAmt)
	assert.Equal(t, 0.0, p.ReceiverAmt)
	assert.Equal(t, p.SenderAmt, p.Gap)
	assert.Equal(t, "EUR", p.SenderCcy)
	assert.Equal(t, "EUR", p.ReceiverCcy)
}

func TestReconcile_OrphanPayable(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		payable("B", "A", 750, "GBP"),
	})

	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.Equal(t, "ORPHAN-B-A", p.ID)
	assert.Equal(t, "A", p.From)
	assert.Equal(t, "B", p.To)
	assert.True(t, p.OrphanPayable)
	assert.False(t, p.Missing)
	assert.False(t, p.Reconciled)
	assert.Equal(t, 0.0, p.SenderAmt)
	assert.Equal(t, 750.0, p.ReceiverAmt)
	assert.Equal(t, p.ReceiverAmt, p.Gap)
}

func TestReconcile_RepeatedOrphanPayables(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		payable("B", "A", 750, "GBP"),
		payable("B", "A", 250, "GBP"),
	})

	// Each unmatched payable row is reported on its own; the relationship id repeats.
	require.Len(t, pairs, 2)
	for _, p := range pairs {
		assert.Equal(t, "ORPHAN-B-A", p.ID)
		assert.True(t, p.OrphanPayable)
	}
	assert.Equal(t, 750.0, pairs[0].ReceiverAmt)
	assert.Equal(t, 250.0, pairs[1].ReceiverAmt)
}

func TestReconcile_NoDoubleCounting(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		receivable("A", "B", 1000, "USD"),
		payable("B", "A", 400, "USD"),
		payable("B", "A", 600, "USD"),
	})

	require.Len(t, pairs, 1)
	assert.Equal(t, "A-B", pairs[0].ID)
	assert.Equal(t, 400.0, pairs[0].ReceiverAmt)
	assert.Equal(t, 600.0, pairs[0].Gap)
}

func TestReconcile_FirstReceivableWins(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		receivable("A", "B", 1000, "USD"),
		receivable("A", "B", 9999, "USD"),
		payable("B", "A", 1000, "USD"),
	})

	require.Len(t, pairs, 1)
	assert.Equal(t, 1000.0, pairs[0].SenderAmt)
	assert.True(t, pairs[0].Reconciled)
}

func TestReconcile_CurrencyMismatchIsAmountBased(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		receivable("USS", "UKL", 2_400_000, "USD"),
		payable("UKL", "USS", 2_400_000, "GBP"),
	})

	require.Len(t, pairs, 1)
	p := pairs[0]
	assert.True(t, p.Reconciled)
	assert.Equal(t, 0.0, p.Gap)
	assert.Equal(t, "USD", p.SenderCcy)
	assert.Equal(t, "GBP", p.ReceiverCcy)
	assert.True(t, p.MultiCurrency())
}

func TestReconcile_Filtering(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		{Entity: "A", Counterparty: "B", Type: "Revenue", Amount: 100},
		{Entity: "A", Counterparty: "", Type: domain.TransactionICReceivable, Amount: 100},
		{Entity: "B", Counterparty: "", Type: domain.TransactionICPayable, Amount: 100},
	})

	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestReconcile_Ordering(t *testing.T) {
	pairs := Reconcile([]domain.TransactionRow{
		payable("Z", "Y", 10, "USD"),
		receivable("C", "D", 10, "USD"),
		payable("X", "W", 10, "USD"),
		receivable("A", "B", 10, "USD"),
		payable("D", "C", 10, "USD"),
	})

	ids := make([]string, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"C-D", "A-B", "ORPHAN-Z-Y", "ORPHAN-X-W"}, ids)
}

func TestReconcile_Idempotent(t *testing.T) {
	rows := []domain.TransactionRow{
		receivable("A", "B", 10, "USD"),
		payable("B", "A", 12, "USD"),
		payable("C", "A", 5, "EUR"),
		receivable("D", "A", 7, "USD"),
	}

	assert.Equal(t, Reconcile(rows), Reconcile(rows))
}

func TestRelationshipType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"IC Receivable - Loans", "Loans"},
		{"ic payable - Royalties", "Royalties"},
		{"IC RECEIVABLE - Services", "Services"},
		{"Cost recharge", "Cost recharge"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, relationshipType(tt.in))
		})
	}
}
