package authinfo

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSharedMetrics_Singleton(t *testing.T) {
	m1 := GetSharedMetrics()
	m2 := GetSharedMetrics()

	assert.NotNil(t, m1)
	assert.Same(t, m1, m2, "GetSharedMetrics should return same instance")
}

func TestMetrics_RecordDecode(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test_record")
	m.RecordDecode("success", "ES256", 3*time.Millisecond)
	m.RecordDecode("expired", "ES256", time.Millisecond)

	mfs, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestMetrics_DefaultNamespace(t *testing.T) {
	t.Parallel()

	m := NewMetrics("")
	m.RecordDecode("success", "HS256", time.Millisecond)

	mfs, err := m.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
	assert.Contains(t, mfs[0].GetName(), "gateway_authinfo_")
}

func TestMetrics_MustRegister_Duplicate(t *testing.T) {
	t.Parallel()

	m := NewMetrics("test_dup_register")
	reg := prometheus.NewRegistry()

	assert.NotPanics(t, func() {
		m.MustRegister(reg)
	})

	// Second registration should not panic (AlreadyRegisteredError is silently ignored)
	assert.NotPanics(t, func() {
		m.MustRegister(reg)
	})
}

func TestIsAlreadyRegistered(t *testing.T) {
	t.Parallel()

	assert.True(t, isAlreadyRegistered(prometheus.AlreadyRegisteredError{}))
	assert.False(t, isAlreadyRegistered(assert.AnError))
}
