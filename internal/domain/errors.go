package domain

import "errors"

var (
	// Ошибка недопустимого статуса заказа.
	ErrStatusInvalid = errors.New("order status must be active or complete")
	// Ошибка отсутствующего идентификатора пользователя.
	ErrUserIDRequired = errors.New("user_id must be greater than zero")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrProductsRequired = errors.New("order must contain at least one product")
	// Ошибка отсутствующего идентификатора товара в позиции.
	ErrProductIDRequired = errors.New("product_id must be greater than zero")
	// Ошибка некорректного количества товара (<= 0).
	ErrQuantityInvalid = errors.New("quantity must be greater than zero")
	// Ошибка пустого или слишком длинного названия товара.
	ErrProductNameInvalid = errors.New("product name must be non-empty and at most 250 characters")
	// Ошибка цены товара меньше единицы.
	ErrProductPriceInvalid = errors.New("product price must be at least 1")
	// Ошибка пустой или слишком длинной категории товара.
	ErrProductCategoryInvalid = errors.New("product category must be non-empty and at most 250 characters")
	// ErrOrderNotFound возвращается, если заказ не найден в хранилище.
	ErrOrderNotFound = errors.New("order not found")
	// ErrProductNotFound возвращается, если товар не найден в хранилище.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound возвращается, если пользователь не найден в хранилище.
	ErrUserNotFound = errors.New("user not found")
	// ErrOrderClosed — бизнес-ошибка: в закрытый заказ нельзя добавлять позиции.
	ErrOrderClosed = errors.New("order is closed")
)

// IsNotFound проверяет, является ли ошибка отсутствием записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
