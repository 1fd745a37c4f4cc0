package response

import "time"

const MaskedPassword = "••••••••"

type SmtpSettings struct {
	ID        string    `json:"id"`
	Host      string    `json:"host"`
	Port      int       `json:"port"`
	Secure    bool      `json:"secure"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	FromName  *string   `json:"fromName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SmtpTestResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
