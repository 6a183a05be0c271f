package mailer

// DefaultPort is the default SMTP submission port.
const DefaultPort = 587

// Config contains SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}
