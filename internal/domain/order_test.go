package domain_test

import (
	"errors"
	"testing"

	"github.com/FOFANA12/storefront-backend-project/internal/domain"
)

// helper для создания корректного заказа с одной позицией.
func makeOrder() domain.Order {
	return domain.Order{
		Status: domain.OrderStatusActive,
		UserID: 1,
		Products: []domain.OrderLine{
			{ProductID: 1, Quantity: 5},
		},
	}
}

func containsErr(errs []error, target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func TestOrderValidateInvariants_Ok(t *testing.T) {
	order := makeOrder()
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	order.Status = domain.OrderStatusComplete
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors for complete order, got %v", errs)
	}
}

func TestOrderValidateInvariants_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
		want error
	}{
		{
			name: "unknown status",
			mut: func(o *domain.Order) {
				o.Status = "pending"
			},
			want: domain.ErrStatusInvalid,
		},
		{
			name: "no user",
			mut: func(o *domain.Order) {
				o.UserID = 0
			},
			want: domain.ErrUserIDRequired,
		},
		{
			name: "no products",
			mut: func(o *domain.Order) {
				o.Products = nil
			},
			want: domain.ErrProductsRequired,
		},
		{
			name: "bad product id",
			mut: func(o *domain.Order) {
				o.Products[0].ProductID = 0
			},
			want: domain.ErrProductIDRequired,
		},
		{
			name: "zero quantity",
			mut: func(o *domain.Order) {
				o.Products[0].Quantity = 0
			},
			want: domain.ErrQuantityInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder()
			tc.mut(&order)
			errs := order.ValidateInvariants()
			if !containsErr(errs, tc.want) {
				t.Fatalf("expected %v among validation errors, got %v", tc.want, errs)
			}
		})
	}
}

func TestStatusClosed(t *testing.T) {
	cases := []struct {
		status domain.OrderStatus
		want   bool
	}{
		{domain.OrderStatusActive, false},
		{domain.OrderStatusComplete, false},
		{"close", true},
		{"CLOSE", true},
		{"Close", true},
		{"closed", false},
	}

	for _, tc := range cases {
		if got := domain.StatusClosed(tc.status); got != tc.want {
			t.Fatalf("StatusClosed(%q) = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestProductValidateInvariants(t *testing.T) {
	product := domain.Product{Name: "CodeMaster Go", Price: 1200, Category: "Book"}
	if errs := product.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}

	product.Price = 0
	errs := product.ValidateInvariants()
	if !containsErr(errs, domain.ErrProductPriceInvalid) {
		t.Fatalf("expected price error, got %v", errs)
	}

	product = domain.Product{Name: "", Price: 100, Category: ""}
	errs = product.ValidateInvariants()
	if !containsErr(errs, domain.ErrProductNameInvalid) || !containsErr(errs, domain.ErrProductCategoryInvalid) {
		t.Fatalf("expected name and category errors, got %v", errs)
	}
}

func TestIsNotFound(t *testing.T) {
	for _, err := range []error{domain.ErrOrderNotFound, domain.ErrProductNotFound, domain.ErrUserNotFound} {
		if !domain.IsNotFound(err) {
			t.Fatalf("expected %v to be a not-found error", err)
		}
	}
	if domain.IsNotFound(domain.ErrOrderClosed) {
		t.Fatal("ErrOrderClosed must not be a not-found error")
	}
	if domain.IsNotFound(errors.New("boom")) {
		t.Fatal("generic error must not be a not-found error")
	}
}
