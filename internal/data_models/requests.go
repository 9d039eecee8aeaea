package dto

// Request payloads for the HTTP API. Field limits follow the task
// board's data model: short names, bounded descriptions.

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=employer employee"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required,max=80"`
	Description string `json:"description" validate:"required,max=500"`
}

type SubmitTaskRequest struct {
	Output string `json:"output" validate:"required"`
}

type CreatePropertyRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type TaskPropertyRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid4"`
}

type UserPropertyRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid4"`
	Interested *bool  `json:"interested" validate:"required"`
}

type ReactionRequest struct {
	Liked *bool `json:"liked" validate:"required"`
}
