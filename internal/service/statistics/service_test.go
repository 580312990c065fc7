package statistics_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
	"github.com/FOFANA12/storefront-backend-project/internal/service/statistics"
	"github.com/FOFANA12/storefront-backend-project/internal/storage/memory"
)

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: false, DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("test", true)
}

func newTestService(t *testing.T) (*statistics.Service, *memory.Store, domain.User, domain.Product) {
	t.Helper()

	store := memory.NewStore()
	user, err := store.Users().Create(domain.UserAuth{
		User:           domain.User{FirstName: "FOFANA", LastName: "BAKARY", Username: "fofbaky"},
		PasswordDigest: "digest",
	})
	require.NoError(t, err)

	product, err := store.Products().Create(domain.Product{Name: "CodeMaster Go", Price: 2000, Category: "Book"})
	require.NoError(t, err)

	return statistics.NewService(store.Statistics(), loggerForTests()), store, user, product
}

func TestService_CurrentAndCompletedOrders(t *testing.T) {
	svc, store, user, product := newTestService(t)

	created, err := store.Orders().Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: product.ID, Quantity: 5}},
	})
	require.NoError(t, err)

	current, err := svc.CurrentOrders(user.ID)
	require.NoError(t, err)
	require.Len(t, current, 1)
	require.Equal(t, created.ID, current[0].ID)

	completed, err := svc.CompletedOrders(user.ID)
	require.NoError(t, err)
	require.Empty(t, completed)
}

func TestService_RecentOrdersDefaultLimit(t *testing.T) {
	svc, store, user, product := newTestService(t)

	for i := 0; i < statistics.DefaultRecentOrdersLimit+3; i++ {
		_, err := store.Orders().Create(domain.Order{
			Status:   domain.OrderStatusActive,
			UserID:   user.ID,
			Products: []domain.OrderLine{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	// Нулевой и отрицательный лимит заменяются значением по умолчанию.
	recent, err := svc.RecentOrders(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, recent, statistics.DefaultRecentOrdersLimit)

	recent, err = svc.RecentOrders(user.ID, -1)
	require.NoError(t, err)
	require.Len(t, recent, statistics.DefaultRecentOrdersLimit)

	recent, err = svc.RecentOrders(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Greater(t, recent[0].ID, recent[1].ID)
}

func TestService_TopOrderedProducts(t *testing.T) {
	svc, store, user, product := newTestService(t)

	second, err := store.Products().Create(domain.Product{Name: "CodeMaster Dart", Price: 1200, Category: "Book"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := store.Orders().Create(domain.Order{
			Status:   domain.OrderStatusActive,
			UserID:   user.ID,
			Products: []domain.OrderLine{{ProductID: product.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}
	_, err = store.Orders().Create(domain.Order{
		Status:   domain.OrderStatusActive,
		UserID:   user.ID,
		Products: []domain.OrderLine{{ProductID: second.ID, Quantity: 50}},
	})
	require.NoError(t, err)

	top, err := svc.TopOrderedProducts(1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	require.Equal(t, product.Name, top[0].Name)

	// Ноль передаётся в выборку как есть и даёт пустой результат.
	none, err := svc.TopOrderedProducts(0)
	require.NoError(t, err)
	require.Empty(t, none)
}
