package sqlite

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citasmedicas/booking-api/pkg/metrics"
)

func TestRepositoriesObserveMetrics(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	m := metrics.NewMetrics("sqlite_test")

	users := NewUserRepository(db, WithMetrics(m))
	require.NoError(t, users.Create(ctx, newTestUser("user_1", "ana@example.com")))
	_, err := users.GetByID(ctx, "user_1")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("create", "users")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("get", "users")))

	doctors := NewDoctorRepository(db, WithMetrics(m))
	_, err = doctors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("count", "doctors")))

	// Failed operations are observed too.
	_, err = users.GetByID(ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.DatabaseOperations.WithLabelValues("get", "users")))
}
