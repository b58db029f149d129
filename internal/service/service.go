// Package service implements validation and orchestration between HTTP
// handlers and the activity registry.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/mergington-activities/internal/metrics"
	"github.com/Shivanand-hulikatti/mergington-activities/internal/model"
	"go.uber.org/zap"
)

// ErrEmailRequired is returned when the email is blank.
var ErrEmailRequired = errors.New("email is required")

// Registry is the storage the service needs.
type Registry interface {
	List() model.Catalog
	Signup(activity, email string) error
	Unregister(activity, email string) error
}

// ActivityService orchestrates sign-up operations.
type ActivityService struct {
	registry Registry
	metrics  *metrics.Recorder
	log      *zap.Logger
}

// NewActivityService constructs an ActivityService. rec and log may be nil.
func NewActivityService(registry Registry, rec *metrics.Recorder, log *zap.Logger) *ActivityService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ActivityService{registry: registry, metrics: rec, log: log}
}

// ListActivities returns every activity with its current roster.
func (s *ActivityService) ListActivities() model.Catalog {
	return s.registry.List()
}

// Signup adds email to activity and returns the confirmation message.
func (s *ActivityService) Signup(activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.registry.Signup(activity, email); err != nil {
		s.log.Debug("signup rejected",
			zap.String("activity", activity), zap.String("email", email), zap.Error(err))
		return "", err
	}

	s.metrics.Signup(activity)
	s.log.Info("signed up", zap.String("activity", activity), zap.String("email", email))
	return fmt.Sprintf("Signed up %s for %s", email, activity), nil
}

// Unregister removes email from activity and returns the confirmation message.
func (s *ActivityService) Unregister(activity, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrEmailRequired
	}

	if err := s.registry.Unregister(activity, email); err != nil {
		s.log.Debug("unregister rejected",
			zap.String("activity", activity), zap.String("email", email), zap.Error(err))
		return "", err
	}

	s.metrics.Unregister(activity)
	s.log.Info("unregistered", zap.String("activity", activity), zap.String("email", email))
	return fmt.Sprintf("Unregistered %s from %s", email, activity), nil
}
