// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и обновление токенов.
package api

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload описывает публичные данные пользователя в ответах сервера.
type UserPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignupResponse описывает ответ сервера при успешной регистрации.
//
// User содержит созданного пользователя без пароля.
type SignupResponse struct {
	User UserPayload `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// AccessToken используется для авторизации запросов к защищённым эндпоинтам.
// RefreshToken используется для обновления пары токенов через /refresh.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest описывает тело запроса обновления токенов.
//
// RefreshToken передаётся в JSON формате в эндпоинт /refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse описывает ответ сервера при успешном обновлении токенов.
//
// Возвращается новая пара AccessToken/RefreshToken.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /signup и возвращает SignupResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Signup(name, email, password string) (SignupResponse, error) {
	var resp SignupResponse
	err := c.PostJSON("/signup", SignupRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает пару токенов.
//
// Метод отправляет POST запрос на /login и возвращает LoginResponse
// с AccessToken и RefreshToken. В случае ошибки возвращает непустую ошибку
// и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Refresh обновляет пару токенов по refresh токену.
//
// Метод отправляет POST запрос на /refresh и возвращает новую пару токенов.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Refresh(refreshToken string) (RefreshResponse, error) {
	var resp RefreshResponse
	err := c.PostJSON("/refresh", RefreshRequest{RefreshToken: refreshToken}, &resp, "")
	return resp, err
}
