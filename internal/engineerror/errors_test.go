package engineerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMalformedRecordError(t *testing.T) {
	cause := fmt.Errorf("unable to parse date: garbage")

	withValue := &MalformedRecordError{Index: 3, Field: "date", Value: "garbage", Err: cause}
	assert.Contains(t, withValue.Error(), "record 3")
	assert.Contains(t, withValue.Error(), `date="garbage"`)
	assert.Equal(t, cause, errors.Unwrap(withValue))

	missing := &MalformedRecordError{Index: 0, Field: "amount", Err: fmt.Errorf("required field is missing")}
	assert.Contains(t, missing.Error(), `required field "amount"`)
}

func TestEmptyInputError(t *testing.T) {
	err := &EmptyInputError{Operation: "normalize"}
	assert.Contains(t, err.Error(), "normalize")
	assert.Contains(t, err.Error(), "empty input")
}

func TestCatalogUnavailableError(t *testing.T) {
	err := &CatalogUnavailableError{Reason: "no snapshot loaded"}
	assert.Contains(t, err.Error(), "rule catalog unavailable")
	assert.Contains(t, err.Error(), "no snapshot loaded")
}

func TestRecordErrors(t *testing.T) {
	empty := &RecordErrors{Total: 10}
	assert.False(t, empty.HasErrors())

	errs := &RecordErrors{
		Total: 40,
		Errors: []*MalformedRecordError{
			{Index: 1, Field: "date", Err: fmt.Errorf("missing")},
			{Index: 7, Field: "amount", Value: "abc", Err: fmt.Errorf("not a number")},
			{Index: 12, Field: "description", Err: fmt.Errorf("empty")},
		},
	}
	assert.True(t, errs.HasErrors())
	assert.Contains(t, errs.Error(), "3 of 40 records")
	assert.Contains(t, errs.Error(), "record 7")

	// errors.As reaches the aggregate through a plain error value.
	var target *RecordErrors
	assert.True(t, errors.As(error(errs), &target))
}
