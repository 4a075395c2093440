package jobad

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/domain"
)

func TestSagaCreate_Success(t *testing.T) {
	saga, text, vector, embed := newTestSaga(t)

	id, err := saga.Create(context.Background(), validJobAd(), FaultNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected an id on success")
	}
	if len(text.indexed) != 1 || len(vector.upserted) != 1 {
		t.Fatalf("expected one write per store, got %d/%d", len(text.indexed), len(vector.upserted))
	}
	if text.indexed[0].ID != id || vector.upserted[0].ID != id {
		t.Errorf("both stores must share the returned id: %q, %q, %q",
			id, text.indexed[0].ID, vector.upserted[0].ID)
	}
	if len(text.deleted) != 0 {
		t.Errorf("no compensation on success, got deletes %v", text.deleted)
	}
	want := "Backend Engineer: Build services. Required level: senior, Job type: full-time, " +
		"Work mode: remote, Location: Belgrade, Serbia"
	if embed.lastText != want {
		t.Errorf("embedding text mismatch:\n got %q\nwant %q", embed.lastText, want)
	}
}

func TestSagaCreate_InvalidAdWritesNothing(t *testing.T) {
	saga, text, vector, embed := newTestSaga(t)

	ad := validJobAd()
	ad.WorkMode = "on-the-moon"

	_, err := saga.Create(context.Background(), ad, FaultNone)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(text.indexed) != 0 || len(vector.upserted) != 0 || embed.called {
		t.Error("invalid payload must reach neither store nor the embedder")
	}
}

func TestSagaCreate_TextWriteFailedNoCompensation(t *testing.T) {
	saga, text, vector, embed := newTestSaga(t)

	text.indexFn = func(_ context.Context, _ *domain.JobAd) error {
		return domain.ErrUpstreamWrite
	}

	_, err := saga.Create(context.Background(), validJobAd(), FaultNone)
	if !errors.Is(err, domain.ErrUpstreamWrite) {
		t.Fatalf("expected ErrUpstreamWrite, got %v", err)
	}
	if embed.called {
		t.Error("embedding must not run after a failed text write")
	}
	if len(vector.upserted) != 0 {
		t.Error("vector store must not be touched")
	}
	if len(text.deleted) != 0 {
		t.Error("nothing to compensate when the first write fails")
	}
}

func TestSagaCreate_EmbeddingFailureCompensates(t *testing.T) {
	saga, text, vector, embed := newTestSaga(t)
	embed.err = domain.ErrEmbeddingProviderError

	_, err := saga.Create(context.Background(), validJobAd(), FaultNone)
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("expected embedding error, got %v", err)
	}
	if len(text.indexed) != 1 || len(text.deleted) != 1 {
		t.Fatalf("expected write then compensating delete, got %d/%d",
			len(text.indexed), len(text.deleted))
	}
	if text.deleted[0] != text.indexed[0].ID {
		t.Errorf("compensation must delete the written id: %q vs %q",
			text.deleted[0], text.indexed[0].ID)
	}
	if len(vector.upserted) != 0 {
		t.Error("vector store must not be touched after an embedding failure")
	}
}

func TestSagaCreate_InjectedVectorFaultCompensates(t *testing.T) {
	saga, text, vector, _ := newTestSaga(t)

	_, err := saga.Create(context.Background(), validJobAd(), FaultVectorWrite)
	if !errors.Is(err, ErrFaultInjected) {
		t.Fatalf("expected injected fault, got %v", err)
	}
	if !errors.Is(err, domain.ErrUpstreamWrite) {
		t.Fatalf("injected fault must read as an upstream write failure, got %v", err)
	}
	if len(vector.upserted) != 0 {
		t.Error("injected fault must preempt the real vector write")
	}
	if len(text.deleted) != 1 {
		t.Fatalf("expected a compensating delete, got %d", len(text.deleted))
	}
	if errors.Is(err, domain.ErrCompensationFailed) {
		t.Error("successful compensation must not read as a compensation failure")
	}
}

func TestSagaCreate_OutcomeStageDistinguishesFailures(t *testing.T) {
	outcomes := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_saga_outcomes_total"},
		[]string{"outcome", "stage"},
	)
	text := &mockTextRepo{}
	vector := &mockVectorRepo{}
	embed := &mockEmbedder{vec: []float32{0.1}}
	saga := NewSaga(text, vector, embed, outcomes, zap.NewNop())

	_, err := saga.Create(context.Background(), validJobAd(), FaultVectorWrite)
	if err == nil {
		t.Fatal("expected the injected vector fault to fail the creation")
	}
	if !strings.Contains(err.Error(), string(StateVectorWriteRequested)) {
		t.Errorf("vector write failure must report its own stage, got %v", err)
	}

	embed.err = domain.ErrEmbeddingProviderError
	if _, err := saga.Create(context.Background(), validJobAd(), FaultNone); err == nil {
		t.Fatal("expected the embedding failure to fail the creation")
	}

	vectorStage := testutil.ToFloat64(outcomes.WithLabelValues(
		string(StateCompensatedFailure), string(StateVectorWriteRequested)))
	embedStage := testutil.ToFloat64(outcomes.WithLabelValues(
		string(StateCompensatedFailure), string(StateEmbeddingRequested)))
	if vectorStage != 1 || embedStage != 1 {
		t.Errorf("expected one compensated failure per stage, got vector=%v embedding=%v",
			vectorStage, embedStage)
	}
}

func TestSagaCreate_CompensationFailureNeverMasksCause(t *testing.T) {
	saga, text, _, embed := newTestSaga(t)
	embed.err = domain.ErrEmbeddingProviderError
	text.deleteFn = func(_ context.Context, _ string) error {
		return errors.New("connection reset")
	}

	_, err := saga.Create(context.Background(), validJobAd(), FaultNone)
	if !errors.Is(err, domain.ErrCompensationFailed) {
		t.Fatalf("expected ErrCompensationFailed, got %v", err)
	}
	if !errors.Is(err, domain.ErrEmbeddingProviderError) {
		t.Fatalf("original cause must stay reachable, got %v", err)
	}
}
