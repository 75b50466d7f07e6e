package graph

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"cityguide/internal/validation"
	"cityguide/pkg/utils"
)

// resolverError is what clients see: the message plus
// extensions {code, http: {status}}, and the failed fields for validation
// errors.
type resolverError struct {
	kind    utils.ErrorKind
	message string
	fields  []validation.FieldError
}

func (e *resolverError) Error() string { return e.message }

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{
		"code": string(e.kind),
		"http": map[string]interface{}{"status": utils.HTTPStatus(e.kind)},
	}
	if len(e.fields) > 0 {
		fields := make([]map[string]string, 0, len(e.fields))
		for _, f := range e.fields {
			fields = append(fields, map[string]string{"field": f.Field, "message": f.Message})
		}
		ext["fields"] = fields
	}
	return ext
}

func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		appErr = utils.Internal(err)
	}

	out := &resolverError{kind: appErr.Kind, message: appErr.Message}
	if appErr.Kind == utils.KindInternal {
		r.log.Error("resolver failed", zap.String("op", op), zap.Error(err), zap.String("trace_id", utils.TraceIDFrom(ctx)))
		out.message = "Internal server error"
	}

	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		out.fields = verr.Errors()
	}
	return out
}

// toID converts a GraphQL Float id into a row id.
func toID(v float64) (uint, error) {
	if v < 1 || v > math.MaxUint32 || v != math.Trunc(v) {
		return 0, utils.Validation("id must be a positive integer, got %v", v)
	}
	return uint(v), nil
}

func optionalID(v *float64) (*uint, error) {
	if v == nil {
		return nil, nil
	}
	id, err := toID(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func fromID(id uint) float64 {
	return float64(id)
}
