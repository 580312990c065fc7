package domain

// OrderRepository описывает требования к хранилищу агрегата заказа.
// Каждый возвращаемый заказ всегда гидрирован своими позициями.
type OrderRepository interface {
	// List возвращает все заказы вместе с их позициями.
	List() ([]Order, error)
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id int64) (Order, error)
	// Create вставляет шапку заказа и по одной строке на каждую позицию.
	// Возвращает созданный агрегат с идентификатором, присвоенным хранилищем.
	Create(order Order) (Order, error)
	// Update заменяет статус шапки и полностью переписывает набор позиций
	// заказа входным набором. Возвращает обновлённый агрегат.
	Update(id int64, order Order) (Order, error)
	// Delete удаляет позиции заказа, затем шапку. Отсутствие заказа ошибкой
	// не считается.
	Delete(id int64) error
	// AddProduct добавляет позицию в заказ. Возвращает ErrOrderClosed, если
	// статус заказа закрыт для изменений.
	AddProduct(orderID int64, line OrderLine) (OrderLine, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	List() ([]Product, error)
	// Get возвращает товар или ErrProductNotFound, если его нет.
	Get(id int64) (Product, error)
	Create(product Product) (Product, error)
	Update(id int64, product Product) (Product, error)
	Delete(id int64) error
}

// UserRepository описывает требования к хранилищу пользователей.
type UserRepository interface {
	List() ([]User, error)
	// Get возвращает пользователя или ErrUserNotFound, если его нет.
	Get(id int64) (User, error)
	// Create сохраняет пользователя вместе с дайджестом пароля.
	Create(user UserAuth) (User, error)
	Update(id int64, user User) (User, error)
	Delete(id int64) error
	// GetByUsername возвращает пользователя с дайджестом пароля для слоя
	// аутентификации.
	GetByUsername(username string) (UserAuth, error)
}

// StatisticsQueries описывает аналитические выборки по заказам и товарам.
type StatisticsQueries interface {
	// OrdersByUserAndStatus возвращает заказы пользователя с точно совпадающим
	// статусом, по возрастанию id, каждый со своими позициями.
	OrdersByUserAndStatus(userID int64, status OrderStatus) ([]Order, error)
	// RecentOrders возвращает не более limit последних заказов пользователя,
	// по убыванию id.
	RecentOrders(userID int64, limit int) ([]Order, error)
	// TopOrderedProducts возвращает не более limit товаров, отранжированных по
	// числу строк позиций, ссылающихся на товар (не по суммарному количеству).
	// Поле ID в результате не заполняется.
	TopOrderedProducts(limit int) ([]Product, error)
}
