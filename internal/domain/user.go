package domain

// User представляет покупателя. Ядро не знает ничего про аутентификацию,
// кроме user_id, который ему передают сверху.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username"`
}

// UserAuth расширяет User сохранённым дайджестом пароля. Хэширование и
// проверка выполняются слоем аутентификации, хранилище лишь держит строку.
type UserAuth struct {
	User
	PasswordDigest string `json:"-"`
}
