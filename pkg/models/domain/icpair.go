package domain

// ICPair reconciles one directional intercompany relationship.
type ICPair struct {
	ID            string
	From          string
	To            string
	Type          string
	SenderAmt     float64
	ReceiverAmt   float64
	Gap           float64
	Reconciled    bool
	Missing       bool // receivable without a mirrored payable
	OrphanPayable bool // payable without a mirrored receivable
	SenderCcy     string
	ReceiverCcy   string
}

// Involves reports whether the entity is either side of the pair.
func (p ICPair) Involves(entityID string) bool {
	return p.From == entityID || p.To == entityID
}

func (p ICPair) MultiCurrency() bool {
	return p.SenderCcy != p.ReceiverCcy
}

// Incomplete reports a structurally broken relationship (missing or orphaned side).
func (p ICPair) Incomplete() bool {
	return p.Missing || p.OrphanPayable
}

// Status is the display label of the pair's reconciliation outcome.
func (p ICPair) Status() string {
	switch {
	case p.Reconciled:
		return "RECONCILED"
	case p.Missing:
		return "MISSING_PAYABLE"
	case p.OrphanPayable:
		return "ORPHAN_PAYABLE"
	default:
		return "MISMATCH"
	}
}
