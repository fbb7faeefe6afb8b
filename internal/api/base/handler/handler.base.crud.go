package basehandler

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/api/base/models"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
)

// CRUDService is the slice of the data layer the generic handler needs.
// *baseservice.BaseServiceMongo[T] satisfies it.
type CRUDService[T any] interface {
	FindOneByID(ctx context.Context, id primitive.ObjectID) (T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// BaseHandler provides the read and delete endpoints every resource shares.
// Creation and updates stay in the domain handlers, where input conversion
// and business checks live.
type BaseHandler[T any] struct {
	Service CRUDService[T]
}

// NewBaseHandler wires the generic handler over a CRUD service.
func NewBaseHandler[T any](service CRUDService[T]) BaseHandler[T] {
	return BaseHandler[T]{Service: service}
}

// FindOneByID handles GET /:id.
func (h *BaseHandler[T]) FindOneByID(c fiber.Ctx) error {
	id, err := ParseObjectID(c, "id")
	if err != nil {
		return ErrorResponse(c, err)
	}

	item, err := h.Service.FindOneByID(c.Context(), id)
	return HandleResponse(c, common.StatusOK, item, err)
}

// FindWithPagination handles a plain paginated listing without filters.
func (h *BaseHandler[T]) FindWithPagination(c fiber.Ctx) error {
	page, limit := ParsePagination(c)
	result, err := h.Service.FindWithPagination(c.Context(), nil, page, limit, nil)
	return HandleResponse(c, common.StatusOK, result, err)
}

// DeleteByID handles DELETE /:id.
func (h *BaseHandler[T]) DeleteByID(c fiber.Ctx) error {
	id, err := ParseObjectID(c, "id")
	if err != nil {
		return ErrorResponse(c, err)
	}

	err = h.Service.DeleteByID(c.Context(), id)
	return HandleResponse(c, common.StatusOK, fiber.Map{"deleted": true}, err)
}
