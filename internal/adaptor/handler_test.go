package adaptor

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"swiftcard/pkg/apperr"
	"swiftcard/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperr.Validation("Phone: Must start with \"0\""), 400, "Phone: Must start with \"0\""},
		{"access denied", apperr.AccessDenied(), 400, "Access denied."},
		{"not found", apperr.NotFound("No card found."), 400, "No card found."},
		{"duplicate", apperr.Duplicate("email", "a@b.com"), 400, `The input field "email", with the value "a@b.com", already exist.`},
		{"invalid credentials", apperr.InvalidCredentials("Invalid password"), 400, "Invalid password"},
		{"account locked", apperr.AccountLocked(), 403, "The account is locked. Try again later."},
		{"auth token", apperr.AuthToken("Invalid or expired token"), 401, "Invalid or expired token"},
		{"internal", apperr.Internal(errors.New("pg down")), 500, "Something went wrong."},
		{"unclassified", errors.New("pg down"), 500, "Something went wrong."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, zap.NewNop(), tt.err, "test operation")

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.False(t, body.Status)
			require.Equal(t, tt.wantMsg, body.Message)
		})
	}
}
