package mailer

import "errors"

var (
	ErrHostRequired = errors.New("mailer: smtp host is required")
	ErrFromRequired = errors.New("mailer: from address is required")
)
