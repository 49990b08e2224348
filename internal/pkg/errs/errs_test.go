package errs_test

import (
	"errors"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("sku", "PLANT-42")

		assert.Equal(t, "sku", err.ParamName)
		assert.Equal(t, "PLANT-42", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: PLANT-42", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("catalog returned no products")
		err := errs.NewObjectNotFoundErrorWithCause("sku", "PLANT-42", cause)

		assert.Equal(t, "sku", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: sku, ID is: PLANT-42 (cause: catalog returned no products)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with non-string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(456))
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("postalCode")

		assert.Equal(t, "postalCode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: postalCode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("not a subscription sku")
		err := errs.NewValueIsInvalidErrorWithCause("sku", cause)

		assert.Equal(t, "sku", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: sku (cause: not a subscription sku)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderNumber")

		assert.Equal(t, "orderNumber", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orderNumber", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orderNumber", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderNumber (cause: missing required field)", err.Error())
	})
}

func TestUnavailableError(t *testing.T) {
	t.Run("NewUnavailableError", func(t *testing.T) {
		err := errs.NewUnavailableError("openweather")

		assert.Equal(t, "openweather", err.Collaborator)
		require.NoError(t, err.Cause)
		assert.Equal(t, "collaborator unavailable: openweather", err.Error())
		assert.Equal(t, errs.ErrUnavailable, err.Unwrap())
	})

	t.Run("NewUnavailableErrorWithCause", func(t *testing.T) {
		cause := errors.New("status 503")
		err := errs.NewUnavailableErrorWithCause("ups", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "collaborator unavailable: ups (cause: status 503)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrUnavailable))
	})

	t.Run("sanitize removes newlines", func(t *testing.T) {
		cause := errors.New("line one\nline two")
		err := errs.NewUnavailableErrorWithCause("shipstation", cause)

		assert.Contains(t, err.Error(), "line one line two")
		assert.NotContains(t, err.Error(), "\n")
	})
}
