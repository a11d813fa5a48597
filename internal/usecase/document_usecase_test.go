package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctrust/internal/domain/entities"
	mock_interfaces "doctrust/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validDocumentCommand() CreateDocumentCommand {
	return CreateDocumentCommand{
		Kind:               entities.DocumentKindInvoice,
		Number:             " INV-7 ",
		ClientName:         "Ada Lovelace",
		ClientEmail:        "ada@example.com",
		AmountCents:        12000,
		AmountExclTaxCents: 10000,
		Currency:           "eur",
	}
}

func TestDocumentUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewDocumentUseCase(nil)
		cases := map[string]func(*CreateDocumentCommand){
			"unknown kind":    func(c *CreateDocumentCommand) { c.Kind = "receipt" },
			"zero amount":     func(c *CreateDocumentCommand) { c.AmountCents = 0 },
			"ht above ttc":    func(c *CreateDocumentCommand) { c.AmountExclTaxCents = 12001 },
			"negative ht":     func(c *CreateDocumentCommand) { c.AmountExclTaxCents = -1 },
			"malformed email": func(c *CreateDocumentCommand) { c.ClientEmail = "not-an-email" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				cmd := validDocumentCommand()
				mutate(&cmd)
				if _, err := uc.Create(context.Background(), "owner-1", cmd); !errors.Is(err, ErrInvalidDocument) {
					t.Fatalf("expected ErrInvalidDocument, got %v", err)
				}
			})
		}
		if _, err := uc.Create(context.Background(), " ", validDocumentCommand()); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error for empty owner, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo)
		fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.ID == "" || d.OwnerID != "owner-1" || d.Status != entities.DocumentStatusDraft {
					t.Fatalf("unexpected document: %+v", d)
				}
				if d.Number != "INV-7" || d.Currency != "EUR" || d.TaxCents() != 2000 {
					t.Fatalf("unexpected normalisation: %+v", d)
				}
				if !d.CreatedAt.Equal(fixed) || !d.UpdatedAt.Equal(fixed) {
					t.Fatalf("expected fixed timestamps")
				}
				return d, nil
			},
		)

		if _, err := uc.Create(context.Background(), "owner-1", validDocumentCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDocumentUseCase_Get(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{}, errors.New("db"))

		_, err := uc.Get(context.Background(), "owner-1", "doc-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{}, nil)

		if _, err := uc.Get(context.Background(), "owner-1", "doc-1"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("other owner is hidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", OwnerID: "owner-2"}, nil)

		if _, err := uc.Get(context.Background(), "owner-1", "doc-1"); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("empty id skips the repo", func(t *testing.T) {
		uc := NewDocumentUseCase(nil)
		if _, err := uc.Get(context.Background(), "owner-1", "  "); !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})
}
