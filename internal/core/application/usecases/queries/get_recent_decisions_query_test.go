package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/queries"
)

func TestNewGetRecentDecisionsQuery_DefaultLimit(t *testing.T) {
	query, err := queries.NewGetRecentDecisionsQuery(0)
	require.NoError(t, err)
	assert.Equal(t, 50, query.Limit())
	assert.NoError(t, query.Validate())
}

func TestNewGetRecentDecisionsQuery_ExplicitLimit(t *testing.T) {
	query, err := queries.NewGetRecentDecisionsQuery(10)
	require.NoError(t, err)
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetRecentDecisionsQuery_InvalidLimit(t *testing.T) {
	_, err := queries.NewGetRecentDecisionsQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)

	_, err = queries.NewGetRecentDecisionsQuery(501)
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrLimitIsInvalid)
}

func TestGetRecentDecisionsQuery_ZeroValueFailsValidation(t *testing.T) {
	var query queries.GetRecentDecisionsQuery
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRecentDecisionsQueryIsNotConstructed)
}
