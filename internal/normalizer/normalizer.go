package normalizer

import (
	"fmt"
	"strings"

	"snapengine/internal/dateutils"
	"snapengine/internal/engineerror"
	"snapengine/internal/logging"
	"snapengine/internal/models"
)

const defaultCurrency = "USD"

// Normalizer validates raw records and produces canonical transactions. It
// holds no mutable state; one instance can serve concurrent callers.
type Normalizer struct {
	logger logging.Logger
}

// New creates a Normalizer.
func New(logger logging.Logger) *Normalizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{logger: logger}
}

// Normalize converts a raw batch into canonical transactions, preserving
// input order with one output per input record. It is all-or-nothing: any
// malformed record fails the batch with an *engineerror.RecordErrors
// detailing every failure. Zero records fail with *engineerror.EmptyInputError
// so the caller can distinguish "no transactions found" from a structural
// failure upstream.
func (n *Normalizer) Normalize(records []RawRecord, shape SourceShape) ([]models.Transaction, error) {
	txs, recErrs, err := n.normalize(records, shape)
	if err != nil {
		return nil, err
	}
	if recErrs.HasErrors() {
		return nil, recErrs
	}
	return txs, nil
}

// NormalizeLenient converts the records that validate and reports the ones
// that do not, so a caller can show "3 of 40 transactions could not be
// parsed" without aborting the batch. The returned RecordErrors is nil when
// every record normalized cleanly. Output order follows input order of the
// accepted records.
func (n *Normalizer) NormalizeLenient(records []RawRecord, shape SourceShape) ([]models.Transaction, *engineerror.RecordErrors, error) {
	txs, recErrs, err := n.normalize(records, shape)
	if err != nil {
		return nil, nil, err
	}
	if !recErrs.HasErrors() {
		return txs, nil, nil
	}

	bad := make(map[int]bool, len(recErrs.Errors))
	for _, re := range recErrs.Errors {
		bad[re.Index] = true
	}
	kept := make([]models.Transaction, 0, len(txs))
	for i := range records {
		if !bad[i] {
			kept = append(kept, txs[i])
		}
	}
	n.logger.Warn("Normalized batch with record failures",
		logging.Field{Key: "total", Value: len(records)},
		logging.Field{Key: "failed", Value: len(recErrs.Errors)})
	return kept, recErrs, nil
}

func (n *Normalizer) normalize(records []RawRecord, shape SourceShape) ([]models.Transaction, *engineerror.RecordErrors, error) {
	if !shape.Valid() {
		return nil, nil, fmt.Errorf("unknown source shape %q", shape)
	}
	if len(records) == 0 {
		return nil, nil, &engineerror.EmptyInputError{Operation: "normalize"}
	}

	txs := make([]models.Transaction, len(records))
	recErrs := &engineerror.RecordErrors{Total: len(records)}
	for i := range records {
		tx, err := n.normalizeRecord(&records[i], i, shape)
		if err != nil {
			recErrs.Errors = append(recErrs.Errors, err)
			continue
		}
		txs[i] = tx
	}
	return txs, recErrs, nil
}

// normalizeRecord validates one raw record and builds the canonical
// transaction. The required fields are date, description, amount and
// type/direction; everything else is optional and stays explicitly absent
// when not supplied.
func (n *Normalizer) normalizeRecord(raw *RawRecord, index int, shape SourceShape) (models.Transaction, *engineerror.MalformedRecordError) {
	description := strings.TrimSpace(raw.Description)
	if description == "" {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "description",
			Err:   fmt.Errorf("required field is empty"),
		}
	}

	dateStr := raw.Date
	if dateStr == "" {
		// The partner feed reports posting dates rather than transaction
		// dates; fall back to the one we have.
		dateStr = raw.DatePosted
	}
	if dateStr == "" {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "date",
			Err:   fmt.Errorf("required field is missing"),
		}
	}
	date, err := dateutils.Normalize(dateStr)
	if err != nil {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "date",
			Value: dateStr,
			Err:   err,
		}
	}

	if raw.Amount.String() == "" {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "amount",
			Err:   fmt.Errorf("required field is missing"),
		}
	}
	amount, err := models.ParseAmount(raw.Amount.String())
	if err != nil {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "amount",
			Value: raw.Amount.String(),
			Err:   err,
		}
	}
	if amount.IsZero() {
		return models.Transaction{}, &engineerror.MalformedRecordError{
			Index: index,
			Field: "amount",
			Value: raw.Amount.String(),
			Err:   fmt.Errorf("must be non-zero"),
		}
	}

	txType, direction, mErr := resolveDirection(raw, index)
	if mErr != nil {
		return models.Transaction{}, mErr
	}

	// The amount is carried as a non-negative magnitude; sign conventions
	// from the source collapse into the direction already resolved above.
	amount = amount.Abs()

	currency := strings.TrimSpace(raw.ISOCurrencyCode)
	if currency == "" {
		currency = defaultCurrency
	}

	tx := models.Transaction{
		ID:              raw.ID,
		Date:            date,
		Description:     description,
		Amount:          amount,
		Type:            txType,
		Direction:       direction,
		ISOCurrencyCode: currency,
		DatePosted:      raw.DatePosted,
		MCC:             raw.MCC,
	}

	if shape == ShapePartnerEnriched {
		tx.MerchantName = raw.MerchantName
		tx.LogoURL = raw.LogoURL
		tx.Website = raw.Website
		tx.EntityID = raw.EntityID
		tx.PaymentChannel = raw.PaymentChannel
		tx.PersonalFinanceCategory = raw.PersonalFinanceCategory
		tx.Location = raw.Location
		tx.Counterparties = raw.Counterparties
	}

	return tx, nil
}

// resolveDirection derives the canonical type/direction pair. Document
// extraction supplies type; the partner feed supplies direction; a record
// carrying both must be consistent.
func resolveDirection(raw *RawRecord, index int) (models.TransactionType, models.TransactionDirection, *engineerror.MalformedRecordError) {
	typeStr := strings.ToLower(strings.TrimSpace(raw.Type))
	dirStr := strings.ToUpper(strings.TrimSpace(raw.Direction))

	var txType models.TransactionType
	switch typeStr {
	case string(models.TypeIncome), string(models.TypeExpense):
		txType = models.TransactionType(typeStr)
	case "":
		// derived from direction below
	default:
		return "", "", &engineerror.MalformedRecordError{
			Index: index,
			Field: "type",
			Value: raw.Type,
			Err:   fmt.Errorf("must be %q or %q", models.TypeIncome, models.TypeExpense),
		}
	}

	var direction models.TransactionDirection
	switch dirStr {
	case string(models.DirectionInflow), string(models.DirectionOutflow):
		direction = models.TransactionDirection(dirStr)
	case "":
		// derived from type below
	default:
		return "", "", &engineerror.MalformedRecordError{
			Index: index,
			Field: "direction",
			Value: raw.Direction,
			Err:   fmt.Errorf("must be %q or %q", models.DirectionInflow, models.DirectionOutflow),
		}
	}

	switch {
	case txType == "" && direction == "":
		return "", "", &engineerror.MalformedRecordError{
			Index: index,
			Field: "type",
			Err:   fmt.Errorf("record carries neither type nor direction"),
		}
	case txType == "":
		txType = models.TypeFromDirection(direction)
	case direction == "":
		direction = models.DirectionFromType(txType)
	case models.DirectionFromType(txType) != direction:
		return "", "", &engineerror.MalformedRecordError{
			Index: index,
			Field: "direction",
			Value: raw.Direction,
			Err:   fmt.Errorf("contradicts type %q", txType),
		}
	}

	return txType, direction, nil
}
