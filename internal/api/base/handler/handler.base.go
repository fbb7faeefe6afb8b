// Package basehandler contains the generic HTTP layer shared by all domain
// handlers: request parsing, validation, the response envelope and the
// embeddable CRUD handler.
package basehandler

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/global"
)

// ParseRequestBody binds the JSON body into out and validates it with the
// shared validator. Both failures map to 400 with field details.
func ParseRequestBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "invalid request body", common.StatusBadRequest, err.Error())
	}
	return ValidateStruct(out)
}

// ValidateStruct runs the shared validator and folds violations into a
// field → rule map for the error envelope.
func ValidateStruct(v any) error {
	err := global.Validate.Struct(v)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return common.NewError(common.ErrCodeValidationInput, "invalid input data", common.StatusBadRequest, err.Error())
	}

	details := make(map[string]string, len(violations))
	for _, violation := range violations {
		details[violation.Field()] = violation.Tag()
	}
	return common.NewError(common.ErrCodeValidationInput, "invalid input data", common.StatusBadRequest, details)
}

// ParseObjectID reads a path parameter and parses it as a Mongo ObjectID.
// A malformed id is a 400, never a 404.
func ParseObjectID(c fiber.Ctx, param string) (primitive.ObjectID, error) {
	raw := c.Params(param)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"invalid id format",
			common.StatusBadRequest,
			map[string]string{param: raw},
		)
	}
	return id, nil
}

// ParsePagination reads page/limit query parameters, falling back to the
// defaults for anything missing or unparsable.
func ParsePagination(c fiber.Ctx) (page, limit int64) {
	page = queryInt64(c, "page", 1)
	limit = queryInt64(c, "limit", 10)
	return page, limit
}

func queryInt64(c fiber.Ctx, key string, fallback int64) int64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
