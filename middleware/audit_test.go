package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Dosada05/championship/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func audited(logs *bytes.Buffer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	return Authenticate(testSecret)(Authorize(models.RoleAdmin)(AuditLog(logger)(ok)))
}

func TestAuditLog_RecordsSubject(t *testing.T) {
	var logs bytes.Buffer
	rec := serve(audited(&logs), "Bearer "+signToken(t, testSecret, adminClaims()))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var entry struct {
		Msg     string `json:"msg"`
		Subject string `json:"subject"`
		Method  string `json:"method"`
		Path    string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "admin request", entry.Msg)
	assert.Equal(t, "admin@example.com", entry.Subject)
	assert.Equal(t, http.MethodDelete, entry.Method)
	assert.Equal(t, "/api/clear-all", entry.Path)
}

func TestAuditLog_RejectsTokenWithoutSubject(t *testing.T) {
	claims := adminClaims()
	delete(claims, JWTClaimSubject)

	var logs bytes.Buffer
	rec := serve(audited(&logs), "Bearer "+signToken(t, testSecret, claims))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, logs.String())
}
