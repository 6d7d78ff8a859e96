package view

import (
	"context"
	"errors"
	"testing"

	"github.com/tawsil-app/ops-dashboard/internal/models"
)

func TestLoaderAppliesCurrentResult(t *testing.T) {
	var l Loader[models.Customer]
	var applied []models.Customer

	err := l.Load(context.Background(),
		func(context.Context) ([]models.Customer, error) {
			return []models.Customer{{ID: 1, Name: "Ahmed"}}, nil
		},
		func(snapshot []models.Customer) { applied = snapshot },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(applied) != 1 || applied[0].Name != "Ahmed" {
		t.Errorf("expected snapshot applied, got %v", applied)
	}
}

func TestLoaderDropsResultAfterCancel(t *testing.T) {
	var l Loader[models.Customer]
	ctx, cancel := context.WithCancel(context.Background())

	err := l.Load(ctx,
		func(context.Context) ([]models.Customer, error) {
			// The view unmounts while the fetch is in flight.
			cancel()
			return []models.Customer{{ID: 1}}, nil
		},
		func([]models.Customer) {
			t.Fatal("stale result must not be applied")
		},
	)
	if !errors.Is(err, ErrStaleResponse) {
		t.Errorf("expected ErrStaleResponse, got %v", err)
	}
}

func TestLoaderDropsSupersededResult(t *testing.T) {
	var l Loader[models.Order]
	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- l.Load(context.Background(),
			func(context.Context) ([]models.Order, error) {
				close(started)
				<-release
				return []models.Order{{ID: 1}}, nil
			},
			func([]models.Order) {
				t.Error("superseded result must not be applied")
			},
		)
	}()
	<-started

	var applied []models.Order
	err := l.Load(context.Background(),
		func(context.Context) ([]models.Order, error) {
			return []models.Order{{ID: 2}}, nil
		},
		func(snapshot []models.Order) { applied = snapshot },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	close(release)

	if err := <-firstDone; !errors.Is(err, ErrStaleResponse) {
		t.Errorf("expected ErrStaleResponse for superseded fetch, got %v", err)
	}
	if len(applied) != 1 || applied[0].ID != 2 {
		t.Errorf("expected newest snapshot applied, got %v", applied)
	}
}

func TestLoaderPropagatesFetchError(t *testing.T) {
	var l Loader[models.Order]
	fetchErr := errors.New("connection refused")

	err := l.Load(context.Background(),
		func(context.Context) ([]models.Order, error) { return nil, fetchErr },
		func([]models.Order) { t.Fatal("apply must not run on fetch failure") },
	)
	if !errors.Is(err, fetchErr) {
		t.Errorf("expected fetch error propagated, got %v", err)
	}
}
