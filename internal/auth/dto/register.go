package dto

type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
}

type RegisterOutput struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
}
