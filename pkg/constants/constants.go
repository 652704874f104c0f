package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	RequestStart ContextKey = "requestStart"
	RequestIDKey ContextKey = "requestID"
	ParamsKey    ContextKey = "params"
	PageContext  ContextKey = "pageContext"
	AppKey       ContextKey = "app"
	PortalToken  ContextKey = "portalToken"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
