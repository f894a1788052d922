package httperrors

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	apperrors "grocer/cli/internal/errors"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func init() {
	pterm.DisableStyling()
}

func present(err error) string {
	var buf bytes.Buffer
	Present(&buf, err, "loading your lists")
	return buf.String()
}

func TestPresent_Kinds(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{apperrors.FromStatus(http.StatusUnauthorized, "unauthorized"), "grocer login"},
		{apperrors.FromStatus(http.StatusForbidden, "not your list"), "not your list"},
		{apperrors.FromStatus(http.StatusNotFound, "list not found"), "Not found while loading your lists"},
		{apperrors.New(apperrors.Validation, "name is required"), "Name is required"},
		{apperrors.FromStatus(http.StatusConflict, "email already registered"), "Email already registered"},
		{apperrors.FromStatus(http.StatusBadGateway, ""), "Server error while loading your lists"},
		{apperrors.New(apperrors.Unexpected, "decode"), "Cannot reach the grocer API"},
	}
	for _, tc := range cases {
		assert.Contains(t, present(tc.err), tc.want, tc.err.Error())
	}
}

func TestPresent_Network(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connect: connection refused")}
	out := present(apperrors.Wrap(apperrors.Transport, "GET /lists", refused))
	assert.Contains(t, out, "Connection refused")

	out = present(apperrors.Wrap(apperrors.Transport, "GET /me", context.DeadlineExceeded))
	assert.Contains(t, out, "timeout")

	out = present(&net.DNSError{Err: "no such host", Name: "api.invalid"})
	assert.Contains(t, out, "Cannot resolve")
}

func TestPresent_PlainErrorIsMasked(t *testing.T) {
	out := present(errors.New("bad cookie jwt_token=abc.def.ghi"))
	assert.NotContains(t, out, "abc.def.ghi")
	assert.Contains(t, out, "Loading your lists")
}

func TestPresent_Nil(t *testing.T) {
	assert.Empty(t, present(nil))
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "api.grocer.test:8080", ExtractHostFromURL("https://api.grocer.test:8080/me"))
	assert.Equal(t, "server", ExtractHostFromURL("::"))
}
