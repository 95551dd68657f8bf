package services

import (
	"context"

	"github.com/eatu-cf/odata-query-services/internal/appconfig"
	"github.com/eatu-cf/odata-query-services/internal/odata"
	"github.com/rs/zerolog"
)

// QueryExecutor runs a query against a named destination.
type QueryExecutor interface {
	Execute(ctx context.Context, q odata.Query, destination string) ([]odata.Entity, error)
}

// Service contains all shared dependencies for handlers.
type Service struct {
	Config *appconfig.Config
	OData  QueryExecutor
	Log    *zerolog.Logger
}

// Logger returns the request scoped logger if one was attached to ctx,
// otherwise the service logger.
func (s *Service) Logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if s.Log != nil {
		return s.Log
	}
	nop := zerolog.Nop()
	return &nop
}
