package postgres

import (
	"errors"
	"testing"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

func TestProductRepository_PostgresCRUD(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	created, err := repo.Create(domain.Product{
		Name:     "CodeMaster 1",
		Price:    1999,
		Category: "books",
	})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated product id")
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if got.Name != "CodeMaster 1" || got.Price != 1999 || got.Category != "books" {
		t.Fatalf("unexpected product payload: %+v", got)
	}

	products, err := repo.List()
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}

	updated, err := repo.Update(created.ID, domain.Product{
		Name:     "CodeMaster 2",
		Price:    2999,
		Category: "books",
	})
	if err != nil {
		t.Fatalf("update product: %v", err)
	}
	if updated.Name != "CodeMaster 2" || updated.Price != 2999 {
		t.Fatalf("unexpected product after update: %+v", updated)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if _, err := repo.Get(created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
}

func TestProductRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	if _, err := repo.Get(404); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := repo.Update(404, domain.Product{Name: "ghost", Price: 1}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on update, got %v", err)
	}
	if err := repo.Delete(404); err != nil {
		t.Fatalf("delete of missing product must be no-op: %v", err)
	}
}
