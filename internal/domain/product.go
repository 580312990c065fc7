package domain

// Product представляет независимый товар каталога. Позиции заказов ссылаются
// на товар по id, но не владеют им.
type Product struct {
	ID int64 `json:"id,omitempty"`
	// Name — название товара, непустое, не длиннее 250 символов.
	Name string `json:"name"`
	// Price — цена в минимальных денежных единицах (центы/копейки), >= 1.
	Price int64 `json:"price"`
	// Category — категория каталога, непустая, не длиннее 250 символов.
	Category string `json:"category"`
}

const maxProductFieldLen = 250

// ValidateInvariants проверяет базовые инварианты товара.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" || len(p.Name) > maxProductFieldLen {
		errs = append(errs, ErrProductNameInvalid)
	}
	if p.Price < 1 {
		errs = append(errs, ErrProductPriceInvalid)
	}
	if p.Category == "" || len(p.Category) > maxProductFieldLen {
		errs = append(errs, ErrProductCategoryInvalid)
	}

	return errs
}
