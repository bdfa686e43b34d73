package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipment", "7d1f")

		assert.Equal(t, "shipment", err.ParamName)
		assert.Equal(t, "7d1f", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7d1f", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("warehouse", "wh-9", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: warehouse, ID is: wh-9 (cause: connection refused)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("id rendered with %s", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("remittance", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("zone")
	assert.Equal(t, "value is invalid: zone", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cause := errors.New("want one of within-city, within-state")
	err = errs.NewValueIsInvalidErrorWithCause("zone", cause)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "value is invalid: zone (cause: want one of within-city, within-state)", err.Error())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("batchSize", 5000, 1, 1000)

		assert.Equal(t, 5000, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		assert.Equal(t, "value is invalid: 5000 is batchSize, min value is 1, max value is 1000", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("limit", -1, 1, 200, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -1 is limit, min value is 1, max value is 200 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("reason", "line one\nline two", 0, 10)
		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("eventId")
	assert.Equal(t, "value is required: eventId", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	err = errs.NewValueIsRequiredErrorWithCause("eventId", errors.New("blank header"))
	assert.Equal(t, "value is required: eventId (cause: blank header)", err.Error())
}

func TestSentinelMessages(t *testing.T) {
	for want, err := range map[string]error{
		"object not found":      errs.ErrObjectNotFound,
		"value is invalid":      errs.ErrValueIsInvalid,
		"value is out of range": errs.ErrValueIsOutOfRange,
		"value is required":     errs.ErrValueIsRequired,
		"validation failed":     errs.ErrValidation,
		"conflict":              errs.ErrConflict,
		"rate unavailable":      errs.ErrRateUnavailable,
		"invalid transition":    errs.ErrInvalidTransition,
	} {
		assert.Equal(t, want, err.Error())
	}
}
