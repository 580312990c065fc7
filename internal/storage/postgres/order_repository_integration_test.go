package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

func TestOrderRepository_PostgresCreateGetList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")
	book := seedProductForIntegrationTest(t, store, "CodeMaster 1", 1999)
	pen := seedProductForIntegrationTest(t, store, "CodeMaster 2", 499)

	created, err := repo.Create(domain.Order{
		Status: domain.OrderStatusActive,
		UserID: user.ID,
		Products: []domain.OrderLine{
			{ProductID: book.ID, Quantity: 2},
			{ProductID: pen.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated order id")
	}
	if created.Status != domain.OrderStatusActive || created.UserID != user.ID {
		t.Fatalf("unexpected order payload: %+v", created)
	}
	if len(created.Products) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(created.Products))
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.ID != created.ID || got.UserID != user.ID || len(got.Products) != 2 {
		t.Fatalf("unexpected hydrated order: %+v", got)
	}

	all, err := repo.List()
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(all) != 1 || len(all[0].Products) != 2 {
		t.Fatalf("unexpected list result: %+v", all)
	}
}

func TestOrderRepository_PostgresCreateWithoutLines(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")

	created, err := repo.Create(domain.Order{
		Status: domain.OrderStatusActive,
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("create order without lines: %v", err)
	}
	if len(created.Products) != 0 {
		t.Fatalf("expected empty line set, got %+v", created.Products)
	}
}

func TestOrderRepository_PostgresReferenceErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	if _, err := repo.Get(404); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	if _, err := repo.Create(domain.Order{
		Status: domain.OrderStatusActive,
		UserID: 404,
	}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for missing user, got %v", err)
	}

	user := seedUserForIntegrationTest(t, store, "fofana")
	if _, err := repo.Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: 404, Quantity: 1}},
	}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for missing product, got %v", err)
	}

	// Откат транзакции: шапка заказа не должна пережить неудачную вставку позиции.
	orders, err := repo.List()
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders after rolled back create, got %+v", orders)
	}
}

func TestOrderRepository_PostgresUpdateReplacesLines(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")
	book := seedProductForIntegrationTest(t, store, "CodeMaster 1", 1999)
	pen := seedProductForIntegrationTest(t, store, "CodeMaster 2", 499)

	created, err := repo.Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: book.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := repo.Update(created.ID, domain.Order{
		Status:   domain.OrderStatusComplete,
		Products: []domain.OrderLine{{ProductID: pen.ID, Quantity: 5}},
	})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if updated.Status != domain.OrderStatusComplete {
		t.Fatalf("unexpected status after update: %s", updated.Status)
	}
	if updated.UserID != user.ID {
		t.Fatalf("update must preserve order owner, got %d", updated.UserID)
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("get updated order: %v", err)
	}
	if len(got.Products) != 1 || got.Products[0].ProductID != pen.ID || got.Products[0].Quantity != 5 {
		t.Fatalf("expected fully replaced line set, got %+v", got.Products)
	}

	if _, err := repo.Update(404, domain.Order{Status: domain.OrderStatusActive}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}
}

func TestOrderRepository_PostgresDelete(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")
	book := seedProductForIntegrationTest(t, store, "CodeMaster 1", 1999)

	created, err := repo.Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: book.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("delete order: %v", err)
	}
	if _, err := repo.Get(created.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound after delete, got %v", err)
	}

	// Повторное удаление не считается ошибкой.
	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("repeated delete: %v", err)
	}
}

func TestOrderRepository_PostgresAddProduct(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")
	book := seedProductForIntegrationTest(t, store, "CodeMaster 1", 1999)
	pen := seedProductForIntegrationTest(t, store, "CodeMaster 2", 499)

	created, err := repo.Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: book.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	line, err := repo.AddProduct(created.ID, domain.OrderLine{ProductID: pen.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("add product: %v", err)
	}
	if line.ProductID != pen.ID || line.Quantity != 3 {
		t.Fatalf("unexpected inserted line: %+v", line)
	}

	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if len(got.Products) != 2 {
		t.Fatalf("expected 2 lines after add, got %+v", got.Products)
	}

	if _, err := repo.AddProduct(404, domain.OrderLine{ProductID: pen.ID, Quantity: 1}); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for missing order, got %v", err)
	}
	if _, err := repo.AddProduct(created.ID, domain.OrderLine{ProductID: 404, Quantity: 1}); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for missing product, got %v", err)
	}
}

func TestOrderRepository_PostgresAddProductClosedOrder(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	user := seedUserForIntegrationTest(t, store, "fofana")
	book := seedProductForIntegrationTest(t, store, "CodeMaster 1", 1999)

	created, err := repo.Create(domain.Order{
		Status: domain.OrderStatusActive,
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Статус complete не блокирует дозаказ.
	if _, err := repo.Update(created.ID, domain.Order{Status: domain.OrderStatusComplete}); err != nil {
		t.Fatalf("move order to complete: %v", err)
	}
	if _, err := repo.AddProduct(created.ID, domain.OrderLine{ProductID: book.ID, Quantity: 1}); err != nil {
		t.Fatalf("add product to complete order: %v", err)
	}

	if _, err := repo.Update(created.ID, domain.Order{Status: "CLOSE"}); err != nil {
		t.Fatalf("move order to close: %v", err)
	}
	if _, err := repo.AddProduct(created.ID, domain.OrderLine{ProductID: book.ID, Quantity: 1}); !errors.Is(err, domain.ErrOrderClosed) {
		t.Fatalf("expected ErrOrderClosed, got %v", err)
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !isForeignKeyViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("expected foreign key violation for code 23503")
	}
	if isForeignKeyViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("unexpected foreign key violation for unique violation code")
	}
	if isForeignKeyViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be foreign key violation")
	}
}
