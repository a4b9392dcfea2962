package errx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRequiredFields(t *testing.T) {
	err := RequiredFields("supportType", "location")

	assert.True(t, errors.Is(err, ErrRequiredFieldMissing))
	assert.Equal(t, http.StatusBadRequest, StatusOf(err))
	assert.Equal(t, RequiredFieldsMessage, MessageOf(err))
	assert.Equal(t, []string{"supportType", "location"}, err.Fields)
}

func TestStatusOfWrapped(t *testing.T) {
	inner := SubmissionFailed(errors.New("connection refused"))
	wrapped := fmt.Errorf("submit: %w", inner)

	assert.Equal(t, http.StatusBadGateway, StatusOf(wrapped))
	assert.Equal(t, SubmissionFailedMessage, MessageOf(wrapped))

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Same(t, inner, appErr)
}

func TestStatusOfForeignError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, SystemErrorMessage, MessageOf(err))
}

func TestWrapRedis(t *testing.T) {
	assert.Nil(t, WrapRedis(nil))

	notFound := WrapRedis(redis.Nil)
	assert.Equal(t, http.StatusNotFound, StatusOf(notFound))
	assert.True(t, errors.Is(notFound, redis.Nil))

	other := WrapRedis(errors.New("dial tcp: i/o timeout"))
	assert.Equal(t, http.StatusBadGateway, StatusOf(other))
	assert.Equal(t, RedisErrorMessage, MessageOf(other))
}
