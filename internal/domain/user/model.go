package user

import "time"

type User struct {
	ID        int
	Username  string
	Password  string // bcrypt hash
	CreatedAt time.Time
}

type BaseRequest struct {
	Username string `json:"username" minLength:"3" maxLength:"32" doc:"Account name"`
	Password string `json:"password" minLength:"8" maxLength:"72" doc:"Account password"`
}
