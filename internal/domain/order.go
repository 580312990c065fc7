package domain

import "strings"

// OrderStatus описывает состояние заказа.
type OrderStatus string

const (
	// OrderStatusActive — заказ открыт, пользователь ещё собирает корзину.
	OrderStatusActive OrderStatus = "active"
	// OrderStatusComplete — заказ завершён пользователем.
	OrderStatusComplete OrderStatus = "complete"
)

// closedStatus — сигнальное значение статуса, блокирующее добавление позиций.
// Валидаторы выше по стеку создают только active/complete, поэтому через
// обычные пути это значение не появляется; проверка сохранена как есть.
const closedStatus = "close"

// OrderLine представляет одну позицию заказа: товар и количество.
// Позиция не имеет собственного идентификатора и адресуется только парой
// (order_id, product_id).
type OrderLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// Order агрегирует шапку заказа и его позиции.
type Order struct {
	ID       int64       `json:"id"`
	Status   OrderStatus `json:"status"`
	UserID   int64       `json:"user_id"`
	Products []OrderLine `json:"products"`
}

// StatusClosed сообщает, закрыт ли статус для добавления позиций.
func StatusClosed(status OrderStatus) bool {
	return strings.EqualFold(string(status), closedStatus)
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.Status != OrderStatusActive && o.Status != OrderStatusComplete {
		errs = append(errs, ErrStatusInvalid)
	}
	if o.UserID <= 0 {
		errs = append(errs, ErrUserIDRequired)
	}
	if len(o.Products) == 0 {
		errs = append(errs, ErrProductsRequired)
	}
	for _, line := range o.Products {
		if line.ProductID <= 0 {
			errs = append(errs, ErrProductIDRequired)
		}
		if line.Quantity <= 0 {
			errs = append(errs, ErrQuantityInvalid)
		}
	}

	return errs
}
