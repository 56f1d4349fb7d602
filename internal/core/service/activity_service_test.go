package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/galeria/admin-api/internal/core/domain"
	"github.com/galeria/admin-api/internal/core/ports"
	"github.com/galeria/admin-api/internal/infrastructure/db/memory"
)

func TestActivityService_CRUD(t *testing.T) {
	svc := NewActivityService(memory.NewActivityRepository(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.ActivityInput{Title: " Walk ", Description: "City walk", Date: "2024-03-10", Site: "Cusco"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Title != "Walk" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}

	updated, err := svc.Update(ctx, created.ID, ports.ActivityInput{Title: "Run", Description: "City run", Date: "2024-03-11"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Run" || updated.Site != "" {
		t.Fatalf("unexpected activity: %+v", updated)
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(list))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Fatalf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActivityService_Validation(t *testing.T) {
	svc := NewActivityService(memory.NewActivityRepository(), zerolog.Nop())

	cases := []ports.ActivityInput{
		{Description: "d", Date: "2024-01-01"},
		{Title: "t", Date: "2024-01-01"},
		{Title: "t", Description: "d", Date: "2024-13-01"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}
