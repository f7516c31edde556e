package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("domain error passes through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("cancel: %w", NewConflict("Cannot cancel once delivered", nil))
		de := ToDomainError(wrapped)
		assert.Equal(t, "CONFLICT", de.Code)
		assert.Equal(t, http.StatusConflict, de.HTTPStatus)
	})

	t.Run("missing document maps to not found", func(t *testing.T) {
		de := ToDomainError(fmt.Errorf("find: %w", mongo.ErrNoDocuments))
		assert.Equal(t, "NOT_FOUND", de.Code)
		assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	})

	t.Run("bad object id maps to validation", func(t *testing.T) {
		_, err := primitive.ObjectIDFromHex("nope")
		de := ToDomainError(err)
		assert.Equal(t, "VALIDATION_FAILED", de.Code)
	})

	t.Run("anything else is internal", func(t *testing.T) {
		cause := errors.New("socket closed")
		de := ToDomainError(cause)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
		assert.ErrorIs(t, de, cause)
	})
}

func TestHasCode(t *testing.T) {
	assert.True(t, HasCode(NewForbidden("no"), "FORBIDDEN"))
	assert.False(t, HasCode(errors.New("no"), "FORBIDDEN"))
}
