package request

// SmtpSettings is used both to save the settings and to test a connection.
// A password equal to the masked placeholder means "keep the stored one".
type SmtpSettings struct {
	Host     string  `json:"host" validate:"required"`
	Port     int     `json:"port" validate:"omitempty,min=1,max=65535"`
	Secure   bool    `json:"secure"`
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	FromName *string `json:"fromName"`
}
