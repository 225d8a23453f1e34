package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/panchayat-backend/internal/platform/apierr"
)

func TestStatusForCode(t *testing.T) {
	cases := map[string]int{
		"":           http.StatusOK,
		"validation": http.StatusBadRequest,
		"not_found":  http.StatusNotFound,
		"conflict":   http.StatusConflict,
		"internal":   http.StatusInternalServerError,
		"retryable":  http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusForCode(code); got != want {
			t.Fatalf("StatusForCode(%q): want=%d got=%d", code, want, got)
		}
	}
}

func TestRespondAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	RespondAPIError(c, apierr.New(http.StatusBadRequest, "invalid_village_code", errors.New("village code must be an integer")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: want=400 got=%d", rec.Code)
	}
	var body ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error.Code != "invalid_village_code" || body.Error.Message != "village code must be an integer" {
		t.Fatalf("unexpected body: %+v", body)
	}
}
