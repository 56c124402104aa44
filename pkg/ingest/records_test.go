package ingest

import (
	"testing"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntities(t *testing.T) {
	ok := []domain.Entity{{ID: "A", Name: "Alpha", Type: "Operating", Currency: "USD"}}
	assert.NoError(t, ValidateEntities(ok))

	bad := append(ok, domain.Entity{ID: "B", Type: "Operating", Currency: "USD"})
	err := ValidateEntities(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "record 2: name is required")
}

func TestValidateTransactions(t *testing.T) {
	err := ValidateTransactions([]domain.TransactionRow{{Counterparty: "B", Amount: 10, Currency: "USD"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entity is required")

	assert.NoError(t, ValidateTransactions([]domain.TransactionRow{{Entity: "A", Currency: "USD"}}))
}

func TestNormalizeTransactionType(t *testing.T) {
	assert.Equal(t, domain.TransactionICReceivable, NormalizeTransactionType("IC Receivable"))
	assert.Equal(t, domain.TransactionICReceivable, NormalizeTransactionType("ic_receivable"))
	assert.Equal(t, domain.TransactionICPayable, NormalizeTransactionType("IC-Payable"))
	assert.Equal(t, domain.TransactionType("Accrual"), NormalizeTransactionType("Accrual"))
}
