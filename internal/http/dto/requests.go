package dto

import "time"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
}

type CreateObjectRequest struct {
	Name             string  `json:"name"`
	ObjectEngineerID *string `json:"object_engineer_id,omitempty"`
}

type UpdateObjectRequest struct {
	Name             *string `json:"name,omitempty"`
	ObjectEngineerID *string `json:"object_engineer_id,omitempty"`
	ClearEngineer    bool    `json:"clear_engineer,omitempty"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	ObjectID    string     `json:"object_id"`
	Priority    string     `json:"priority,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	AssignedTo  string     `json:"assigned_to"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ObjectID    *string    `json:"object_id,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	ClearDueAt  bool       `json:"clear_due_at,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type PauseTaskRequest struct {
	Reason   string    `json:"reason"`
	ResumeAt time.Time `json:"resume_at"`
}

type TeamMemberRequest struct {
	UserID string `json:"user_id"`
}

type AddCommentRequest struct {
	Body        string  `json:"body"`
	ClientMsgID *string `json:"client_msg_id,omitempty"`
}

type PushSubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256DH string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

type PushUnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}
