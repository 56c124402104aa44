package ingest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

type entityRecord struct {
	ID       string `col:"id" validate:"required"`
	Name     string `col:"name" validate:"required"`
	Parent   string `col:"parent"`
	Type     string `col:"type" validate:"required"`
	Region   string `col:"region"`
	Currency string `col:"currency" validate:"required,max=8"`
}

type transactionRecord struct {
	Entity       string  `col:"entity" validate:"required"`
	Counterparty string  `col:"counterparty"`
	Description  string  `col:"description"`
	Type         string  `col:"type"`
	Amount       float64 `col:"amount"`
	Currency     string  `col:"currency" validate:"required,max=8"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("col")
	})
	return v
}

// checkRecord validates a decoded record and reports the offending columns by name.
func checkRecord(where string, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", where, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s: %s", ErrInvalidRecord, where, strings.Join(msgs, "; "))
}

func decodeHierarchy(table [][]string) ([]domain.Entity, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInput
	}
	idx, err := indexHeader(table[0], hierarchyColumns)
	if err != nil {
		return nil, err
	}

	entities := []domain.Entity{}
	for i, row := range table[1:] {
		if blank(row) {
			continue
		}
		rec := entityRecord{
			ID:       idx.get(row, colID),
			Name:     idx.get(row, colName),
			Parent:   idx.get(row, colParent),
			Type:     defaultString(idx.get(row, colType), domain.EntityTypeOperating),
			Region:   idx.get(row, colRegion),
			Currency: defaultString(strings.ToUpper(idx.get(row, colCurrency)), domain.DefaultCurrency),
		}
		// header is line 1
		if err := checkRecord(fmt.Sprintf("line %d", i+2), rec); err != nil {
			return nil, err
		}
		entities = append(entities, domain.Entity(rec))
	}

	return entities, nil
}

func decodeTransactions(table [][]string) ([]domain.TransactionRow, error) {
	if len(table) == 0 {
		return nil, ErrEmptyInput
	}
	idx, err := indexHeader(table[0], transactionColumns)
	if err != nil {
		return nil, err
	}

	rows := []domain.TransactionRow{}
	for i, row := range table[1:] {
		if blank(row) {
			continue
		}
		rec := transactionRecord{
			Entity:       idx.get(row, colEntity),
			Counterparty: idx.get(row, colCounterparty),
			Description:  idx.get(row, colDescription),
			Type:         idx.get(row, colType),
			Amount:       ParseAmount(idx.get(row, colAmount)),
			Currency:     defaultString(strings.ToUpper(idx.get(row, colCurrency)), domain.DefaultCurrency),
		}
		if err := checkRecord(fmt.Sprintf("line %d", i+2), rec); err != nil {
			return nil, err
		}
		rows = append(rows, domain.TransactionRow{
			Entity:       rec.Entity,
			Counterparty: rec.Counterparty,
			Description:  rec.Description,
			Type:         NormalizeTransactionType(rec.Type),
			Amount:       rec.Amount,
			Currency:     rec.Currency,
		})
	}

	return rows, nil
}

// NormalizeTransactionType maps spellings such as "IC Receivable" or "ic-payable" onto
// the canonical IC_Receivable / IC_Payable values. Other types are kept as written.
func NormalizeTransactionType(s string) domain.TransactionType {
	switch normalizeHeader(s) {
	case "icreceivable":
		return domain.TransactionICReceivable
	case "icpayable":
		return domain.TransactionICPayable
	default:
		return domain.TransactionType(s)
	}
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// ValidateEntities applies the record rules to entities that did not come from a file,
// such as a JSON request body. Records are numbered from 1.
func ValidateEntities(entities []domain.Entity) error {
	for i, e := range entities {
		if err := checkRecord(fmt.Sprintf("record %d", i+1), entityRecord(e)); err != nil {
			return fmt.Errorf("entities: %w", err)
		}
	}
	return nil
}

func ValidateTransactions(rows []domain.TransactionRow) error {
	for i, r := range rows {
		rec := transactionRecord{
			Entity:       r.Entity,
			Counterparty: r.Counterparty,
			Description:  r.Description,
			Type:         string(r.Type),
			Amount:       r.Amount,
			Currency:     r.Currency,
		}
		if err := checkRecord(fmt.Sprintf("record %d", i+1), rec); err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
	}
	return nil
}
