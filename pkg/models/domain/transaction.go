package domain

type TransactionType string

const (
	TransactionICReceivable TransactionType = "IC_Receivable"
	TransactionICPayable    TransactionType = "IC_Payable"
)

// TransactionRow is one general-ledger line.
type TransactionRow struct {
	Entity       string
	Counterparty string
	Description  string
	Type         TransactionType
	Amount       float64
	Currency     string
}

func (r TransactionRow) IsReceivable() bool {
	return r.Type == TransactionICReceivable && r.Counterparty != ""
}

func (r TransactionRow) IsPayable() bool {
	return r.Type == TransactionICPayable && r.Counterparty != ""
}
