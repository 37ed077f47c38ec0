// Package dispatch routes command and query values to their registered
// workflow handlers. It is the command/query surface external callers invoke;
// they receive a Result and decide disposition themselves.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/result"
	"github.com/go-playground/validator/v10"
)

// CommandHandler handles one mutating workflow.
type CommandHandler[C any, S any] interface {
	Handle(ctx context.Context, cmd C) result.Result[S, domain.ValidationError]
}

// QueryHandler handles one read workflow.
type QueryHandler[Q any, V any] interface {
	Handle(ctx context.Context, query Q) result.Result[V, domain.NotFoundError]
}

// Dispatcher holds the handler registry, keyed by the concrete command or
// query type.
type Dispatcher struct {
	validate *validator.Validate
	logger   *slog.Logger
	commands map[reflect.Type]any
	queries  map[reflect.Type]any
}

// New creates an empty Dispatcher.
func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		validate: validator.New(),
		logger:   logger,
		commands: make(map[reflect.Type]any),
		queries:  make(map[reflect.Type]any),
	}
}

// RegisterCommand registers the handler for command type C. A later
// registration for the same type replaces the earlier one.
func RegisterCommand[C any, S any](d *Dispatcher, h CommandHandler[C, S]) {
	d.commands[reflect.TypeOf((*C)(nil)).Elem()] = h
}

// RegisterQuery registers the handler for query type Q.
func RegisterQuery[Q any, V any](d *Dispatcher, h QueryHandler[Q, V]) {
	d.queries[reflect.TypeOf((*Q)(nil)).Elem()] = h
}

// Dispatch validates cmd and routes it to its registered handler. Validation
// failures and missing registrations surface as ValidationError without
// reaching any handler.
func Dispatch[C any, S any](ctx context.Context, d *Dispatcher, cmd C) result.Result[S, domain.ValidationError] {
	if err := d.validate.StructCtx(ctx, cmd); err != nil {
		d.logger.Warn("command validation failed", "command", fmt.Sprintf("%T", cmd), "error", err)
		return result.Failure[S](domain.NewValidationError(err.Error()))
	}
	h, ok := d.commands[reflect.TypeOf(cmd)]
	if !ok {
		return result.Failure[S](domain.NewValidationError(
			fmt.Sprintf("no handler registered for command %T", cmd)))
	}
	handler, ok := h.(CommandHandler[C, S])
	if !ok {
		return result.Failure[S](domain.NewValidationError(
			fmt.Sprintf("handler for command %T has mismatched result type", cmd)))
	}
	return handler.Handle(ctx, cmd)
}

// Query routes a read-only query to its registered handler.
func Query[Q any, V any](ctx context.Context, d *Dispatcher, query Q) result.Result[V, domain.NotFoundError] {
	h, ok := d.queries[reflect.TypeOf(query)]
	if !ok {
		return result.Failure[V](domain.NewNotFoundError(
			fmt.Sprintf("no handler registered for query %T", query)))
	}
	handler, ok := h.(QueryHandler[Q, V])
	if !ok {
		return result.Failure[V](domain.NewNotFoundError(
			fmt.Sprintf("handler for query %T has mismatched result type", query)))
	}
	return handler.Handle(ctx, query)
}
