package request

type CreateUserRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Age  int    `json:"age" validate:"required,gte=1,lte=150"`
}
