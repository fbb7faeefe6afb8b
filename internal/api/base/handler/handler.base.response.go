package basehandler

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/common"
	"github.com/ammarShahab/trust-Life-life-insurance-management-server/internal/logger"
)

// ResponseEnvelope is the uniform JSON body for every API response.
type ResponseEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Data    any    `json:"data,omitempty"`
	Details any    `json:"details,omitempty"`
}

// JSONResponse writes a success envelope with the given status and data.
func JSONResponse(c fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(ResponseEnvelope{
		Code:    "OK",
		Message: common.MsgSuccess,
		Status:  status,
		Data:    data,
	})
}

// ErrorResponse writes an error envelope derived from err. Application
// errors keep their code, message and status; anything else becomes a 500.
func ErrorResponse(c fiber.Ctx, err error) error {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = &common.Error{
			Code:       common.ErrCodeInternalServer,
			Message:    "internal server error",
			StatusCode: common.StatusInternalServerError,
		}
		logger.GetAppLogger().WithError(err).Error("Unhandled error reached the response layer")
	}

	return c.Status(appErr.StatusCode).JSON(ResponseEnvelope{
		Code:    appErr.Code.Code,
		Message: appErr.Message,
		Status:  appErr.StatusCode,
		Details: appErr.Details,
	})
}

// HandleResponse finishes a handler in one call: error envelope when err is
// set, success envelope with data otherwise.
func HandleResponse(c fiber.Ctx, status int, data any, err error) error {
	if err != nil {
		return ErrorResponse(c, err)
	}
	return JSONResponse(c, status, data)
}

// SafeHandler guards a handler against panics so one bad request cannot
// take the process down.
func SafeHandler(h fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.GetAppLogger().
					WithField("panic", r).
					WithField("path", c.Path()).
					WithField("stack", string(debug.Stack())).
					Error("Recovered from panic in handler")
				_ = ErrorResponse(c, common.NewError(
					common.ErrCodeInternalServer,
					"internal server error",
					common.StatusInternalServerError,
					nil,
				))
			}
		}()
		return h(c)
	}
}
