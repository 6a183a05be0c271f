package push

import "errors"

var (
	ErrEndpointRequired = errors.New("push: endpoint is required")
	ErrGatewayRejected  = errors.New("push: gateway rejected notification")
)
