package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP status code constants used across handlers.
const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest      = 400
	StatusUnauthorized    = 401
	StatusForbidden       = 403
	StatusNotFound        = 404
	StatusConflict        = 409
	StatusTooManyRequests = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
)

// Response messages.
const (
	MsgSuccess = "success"

	MsgTokenMissing = "missing authentication token"
	MsgTokenInvalid = "invalid authentication token"
	MsgForbidden    = "forbidden access"
	MsgNotFound     = "resource not found"
)

// ErrorCode identifies an error class in the hierarchical taxonomy.
type ErrorCode struct {
	Code        string // Machine code, e.g. AUTH_001
	Category    string // Top-level category
	SubCategory string
	Description string
}

var (
	// System errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "internal server error",
	}

	// Authentication errors (AUTH_xxx)
	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "token error",
	}
	ErrCodeAuthOwnership = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Ownership",
		Description: "caller does not own the requested resource",
	}
	ErrCodeAuthRole = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Role",
		Description: "caller role not permitted",
	}

	// Validation errors (VAL_xxx)
	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "invalid input data",
	}
	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "invalid data format",
	}

	// Database errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "General",
		Description: "database error",
	}
	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "query error",
	}

	// Business logic errors (BIZ_xxx)
	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "invalid business state transition",
	}
	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "operation not allowed",
	}
)

// Error is the detailed error carried from services up to handlers.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is against the sentinel errors below.
func (e *Error) Is(target error) bool {
	targetErr, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
}

// NewError builds an *Error with the full detail set.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Sentinel errors shared across services.
var (
	ErrTokenMissing = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrTokenInvalid = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusForbidden, nil)
	ErrForbidden    = NewError(ErrCodeAuthOwnership, MsgForbidden, StatusForbidden, nil)

	ErrInvalidInput  = NewError(ErrCodeValidationInput, "invalid input data", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "invalid data format", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "missing required field", StatusBadRequest, nil)

	ErrNotFound  = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate = NewError(ErrCodeDatabaseQuery, "resource already exists", StatusConflict, nil)

	ErrInvalidState = NewError(ErrCodeBusinessState, "invalid state transition", StatusBadRequest, nil)
)

// Mongo-specific sentinels surfaced by ConvertMongoError.
var (
	ErrMongoConnection = NewError(ErrCodeDatabase, "database connection error", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabase, "database operation timed out", StatusServiceUnavailable, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "database write error", StatusInternalServerError, nil)
)

// ConvertMongoError maps driver errors to the application taxonomy so that
// handlers never leak a raw store failure. Every store call in the service
// layer is expected to pass its error through here.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	// Already converted; keep 404 semantics intact.
	if errors.Is(err, ErrNotFound) {
		return err
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	// Unique-index violations carry the marketplace's Conflict semantics
	// (duplicate application, duplicate customer email, replayed payment).
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoConnection
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.Code >= 100 && cmdErr.Code < 200 {
			return ErrMongoConnection
		}
		return ErrMongoWrite
	}

	return NewError(ErrCodeDatabase, "database error", StatusInternalServerError, err)
}
