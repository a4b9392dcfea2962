// Package intake validates and delivers anonymous help requests.
package intake

import (
	"context"
	"time"

	"github.com/google/uuid"

	errx "github.com/community-support-hub/server/internal/core/error"
	"github.com/community-support-hub/server/internal/hub/metrics"
	"github.com/community-support-hub/server/internal/hub/model"
	logx "github.com/community-support-hub/server/pkg/logger"
)

type Service struct {
	delivery Delivery
	now      func() time.Time
}

func NewService(delivery Delivery) *Service {
	return &Service{delivery: delivery, now: time.Now}
}

// Submit normalizes, validates and delivers a request. Invalid requests are
// never delivered. Delivery is attempted once; failures surface as
// errx.SubmissionFailed so the caller can keep the form for a retry.
// Situation and contact are never logged.
func (s *Service) Submit(ctx context.Context, raw model.HelpRequest) (model.Receipt, error) {
	req := raw.Normalized()
	if err := Validate(req); err != nil {
		metrics.HelpRequests.WithLabelValues("invalid").Inc()
		return model.Receipt{}, err
	}

	id := uuid.NewString()
	log := logx.Component("intake")
	if err := s.delivery.Deliver(ctx, id, req); err != nil {
		metrics.HelpRequests.WithLabelValues("failed").Inc()
		log.Warn().
			Err(err).
			Str("request_id", id).
			Str("support_type", req.SupportType).
			Msg("help request delivery failed")
		return model.Receipt{}, errx.SubmissionFailed(err)
	}

	metrics.HelpRequests.WithLabelValues("delivered").Inc()
	log.Info().
		Str("request_id", id).
		Str("support_type", req.SupportType).
		Str("urgency", req.Urgency).
		Msg("help request delivered")

	return model.Receipt{ID: id, Submitted: true, SubmittedAt: s.now().UTC()}, nil
}
