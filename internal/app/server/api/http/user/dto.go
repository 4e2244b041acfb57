package user

import "sharevault/internal/domain/user"

type registerInput struct {
	Body user.BaseRequest
}

type loginInput struct {
	Body user.BaseRequest
}

type tokenOutput struct {
	Body TokenResponse
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}
