package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCauseOutOfMsg(t *testing.T) {
	cause := errors.New("resend: 422 invalid from address")
	err := Wrap(cause, CodeServerError, ErrSendFailed.Msg)

	assert.Equal(t, ErrSendFailed.Msg, err.Msg)
	assert.Contains(t, err.Error(), "invalid from address")
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.NotErrorIs(t, err, ErrServerBusy)
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetCode(ErrInvalidParam))
	assert.Equal(t, http.StatusMethodNotAllowed, GetCode(fmt.Errorf("route: %w", ErrMethodNotAllowed)))
	assert.Equal(t, http.StatusInternalServerError, GetCode(errors.New("boom")))
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidParam, "field %s missing", "name")
	assert.Equal(t, "field name missing", err.Error())
	assert.Nil(t, err.Unwrap())
}
