package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	assert.ErrorIs(t, err, ErrNotFound)

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusNotFound, appErr.StatusCode)
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: "E11000 duplicate key error"},
		},
	}

	err := ConvertMongoError(dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusConflict, appErr.StatusCode)
}

func TestConvertMongoError_PassesThroughConverted(t *testing.T) {
	assert.Same(t, ErrNotFound, ConvertMongoError(ErrNotFound))
	assert.Same(t, ErrDuplicate, ConvertMongoError(ErrDuplicate))

	custom := NewError(ErrCodeBusinessState, "application already paid", StatusBadRequest, nil)
	assert.Same(t, custom, ConvertMongoError(custom))
}

func TestConvertMongoError_WrappedNotFound(t *testing.T) {
	wrapped := fmt.Errorf("loading policy: %w", ErrNotFound)
	assert.ErrorIs(t, ConvertMongoError(wrapped), ErrNotFound)
}

func TestConvertMongoError_UnknownError(t *testing.T) {
	err := ConvertMongoError(errors.New("socket closed"))

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
}

func TestConvertMongoError_Nil(t *testing.T) {
	assert.NoError(t, ConvertMongoError(nil))
}
