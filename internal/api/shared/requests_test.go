package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Keyword string `json:"keyword" validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(
		http.MethodPost,
		"/submit_task",
		strings.NewReader(`{"keyword":"laptops","email":"a@b.com"}`),
	)

	var target decodeTarget
	require.NoError(t, DecodeJSON(r, &target))
	assert.Equal(t, "laptops", target.Keyword)
	assert.Equal(t, "a@b.com", target.Email)
}

func TestDecodeJSON_MalformedBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/submit_task", strings.NewReader(`{"keyword":`))

	var target decodeTarget
	assert.Error(t, DecodeJSON(r, &target))
}

func TestValidateRequest_StructTags(t *testing.T) {
	assert.NoError(t, ValidateRequest(&decodeTarget{Keyword: "laptops", Email: "a@b.com"}))
	assert.Error(t, ValidateRequest(&decodeTarget{Keyword: "", Email: "a@b.com"}))
	assert.Error(t, ValidateRequest(&decodeTarget{Keyword: "laptops", Email: "nope"}))
}

type selfValidating struct {
	err error
}

func (s *selfValidating) Validate() error { return s.err }

func TestValidateRequest_PrefersValidateMethod(t *testing.T) {
	sentinel := errors.New("custom validation failed")

	assert.NoError(t, ValidateRequest(&selfValidating{}))
	assert.ErrorIs(t, ValidateRequest(&selfValidating{err: sentinel}), sentinel)
}
