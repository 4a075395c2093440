package jobad

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

// State identifies a stage of the dual-write workflow.
type State string

const (
	// StateStart is the initial state, before any store write.
	StateStart State = "start"
	// StateTextWritten means the text-store write succeeded.
	StateTextWritten State = "text_written"
	// StateEmbeddingRequested means the embedding call is in flight.
	StateEmbeddingRequested State = "embedding_requested"
	// StateVectorWriteRequested means the vector-store write is in flight.
	StateVectorWriteRequested State = "vector_write_requested"
	// StateVectorWritten means the vector-store write succeeded.
	StateVectorWritten State = "vector_written"
	// StateSuccess is the terminal state of a fully committed creation.
	StateSuccess State = "success"
	// StateTextWriteFailed is terminal: the first write failed, nothing to
	// undo.
	StateTextWriteFailed State = "text_write_failed"
	// StateCompensating means the text-store rollback is running.
	StateCompensating State = "compensating"
	// StateCompensatedFailure is terminal: the creation failed and the text
	// write was rolled back.
	StateCompensatedFailure State = "compensated_failure"
)

// Fault selects an injected failure for validation runs.
type Fault int

const (
	// FaultNone runs the workflow normally.
	FaultNone Fault = iota
	// FaultVectorWrite fails the vector-store write step, exercising the
	// compensation path end to end.
	FaultVectorWrite
)

// ErrFaultInjected is the simulated vector-store failure.
var ErrFaultInjected = fmt.Errorf("%w: simulated vector store failure", domain.ErrUpstreamWrite)

// Saga coordinates the dual-write creation of a job ad: text store first,
// then embedding, then vector store, with a compensating text-store delete
// when a later step fails. One attempt per store operation, no retries.
type Saga struct {
	text     TextRepository
	vector   VectorRepository
	embedder Embedder
	outcomes *prometheus.CounterVec
	logger   *zap.Logger
}

// NewSaga creates a saga coordinator. outcomes is a counter vec with labels
// "outcome" and "stage", passed explicitly; it can be nil.
func NewSaga(
	text TextRepository,
	vector VectorRepository,
	embedder Embedder,
	outcomes *prometheus.CounterVec,
	logger *zap.Logger,
) *Saga {
	return &Saga{
		text:     text,
		vector:   vector,
		embedder: embedder,
		outcomes: outcomes,
		logger:   logger,
	}
}

// Create runs the workflow and returns the new id only on full success.
// The id is generated here so both stores share it.
func (s *Saga) Create(ctx context.Context, ad *domain.JobAd, fault Fault) (string, error) {
	if err := ad.Validate(); err != nil {
		return "", err
	}
	ad.ID = uuid.NewString()

	if err := s.text.IndexJobAd(ctx, ad); err != nil {
		s.finish(StateTextWriteFailed, StateStart)
		s.logger.Error("Job ad text write failed",
			zap.String("job_ad_id", ad.ID), zap.Error(err))
		return "", fmt.Errorf("text store write: %w", err)
	}

	emb, err := s.embedder.Embed(ctx, ad.EmbeddingText())
	if err != nil {
		return "", s.compensate(ctx, ad.ID, StateEmbeddingRequested, fmt.Errorf("embed job ad: %w", err))
	}

	if err := s.writeVector(ctx, ad, emb.Embedding, fault); err != nil {
		return "", s.compensate(ctx, ad.ID, StateVectorWriteRequested, fmt.Errorf("vector store write: %w", err))
	}

	s.finish(StateSuccess, StateVectorWritten)
	return ad.ID, nil
}

func (s *Saga) writeVector(ctx context.Context, ad *domain.JobAd, vec []float32, fault Fault) error {
	if fault == FaultVectorWrite {
		return ErrFaultInjected
	}
	return s.vector.UpsertJobAd(ctx, ad, vec)
}

// compensate rolls back the text-store write. A failed rollback is reported
// through wrapping but never masks the original cause.
func (s *Saga) compensate(ctx context.Context, id string, failedAt State, cause error) error {
	s.logger.Warn("Compensating job ad creation",
		zap.String("job_ad_id", id),
		zap.String("failed_at", string(failedAt)),
		zap.Error(cause))

	if derr := s.text.DeleteJobAd(ctx, id); derr != nil {
		s.finish(StateCompensatedFailure, failedAt)
		s.logger.Error("Compensation failed, text store copy is orphaned",
			zap.String("job_ad_id", id), zap.Error(derr))
		return fmt.Errorf("%w for job ad %s (%v): %w",
			domain.ErrCompensationFailed, id, derr, cause)
	}

	s.finish(StateCompensatedFailure, failedAt)
	return fmt.Errorf("job ad %s rolled back after %s: %w", id, failedAt, cause)
}

func (s *Saga) finish(outcome State, stage State) {
	if s.outcomes != nil {
		s.outcomes.WithLabelValues(string(outcome), string(stage)).Inc()
	}
}
