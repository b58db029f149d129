package service_test

import (
	"testing"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/metrics"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/repository"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newService(t *testing.T) (*service.ActivityService, *repository.ActivityRepository, *observer.ObservedLogs, prometheus.Gatherer) {
	t.Helper()
	repo := repository.NewActivityRepository([]model.Activity{
		{Name: "Chess Club", MaxParticipants: 12, Participants: []string{"existing@example.com"}},
	})
	core, logs := observer.New(zapcore.DebugLevel)
	reg := prometheus.NewRegistry()
	svc := service.NewActivityService(repo, metrics.New(reg), zap.New(core))
	return svc, repo, logs, reg
}

func TestSignup(t *testing.T) {
	svc, repo, logs, _ := newService(t)

	msg, err := svc.Signup("Chess Club", "  new@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Signed up new@example.com for Chess Club", msg)

	a, err := repo.Get("Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"existing@example.com", "new@example.com"}, a.Participants)

	entries := logs.FilterMessage("signed up").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Chess Club", entries[0].ContextMap()["activity"])
}

func TestSignupErrors(t *testing.T) {
	svc, _, logs, _ := newService(t)

	_, err := svc.Signup("Chess Club", "   ")
	assert.ErrorIs(t, err, service.ErrEmailRequired)

	_, err = svc.Signup("Chess Club", "existing@example.com")
	assert.ErrorIs(t, err, repository.ErrAlreadySignedUp)

	_, err = svc.Signup("Unknown", "a@b.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Equal(t, 2, logs.FilterMessage("signup rejected").Len())
}

func TestUnregister(t *testing.T) {
	svc, repo, _, _ := newService(t)

	msg, err := svc.Unregister("Chess Club", "existing@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered existing@example.com from Chess Club", msg)

	a, err := repo.Get("Chess Club")
	require.NoError(t, err)
	assert.Empty(t, a.Participants)

	_, err = svc.Unregister("Chess Club", "existing@example.com")
	assert.ErrorIs(t, err, repository.ErrNotSignedUp)

	_, err = svc.Unregister("Unknown", "a@b.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Unregister("Chess Club", "")
	assert.ErrorIs(t, err, service.ErrEmailRequired)
}

func TestMetricsCountOnlySuccess(t *testing.T) {
	svc, _, _, reg := newService(t)

	_, _ = svc.Signup("Chess Club", "a@example.com")
	_, _ = svc.Signup("Chess Club", "a@example.com")
	_, _ = svc.Unregister("Chess Club", "a@example.com")
	_, _ = svc.Unregister("Chess Club", "ghost@example.com")

	signups, err := testutil.GatherAndCount(reg, "activities_signups_total")
	require.NoError(t, err)
	assert.Equal(t, 1, signups)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			assert.Equal(t, 1.0, m.GetCounter().GetValue(), f.GetName())
		}
	}
}

func TestListActivities(t *testing.T) {
	svc, _, _, _ := newService(t)
	list := svc.ListActivities()
	require.Len(t, list, 1)
	assert.Equal(t, "Chess Club", list[0].Name)
}

func TestNilDependencies(t *testing.T) {
	repo := repository.NewActivityRepository(repository.SeedActivities())
	svc := service.NewActivityService(repo, nil, nil)

	_, err := svc.Signup("Chess Club", "n@example.com")
	assert.NoError(t, err)
}
