package v1handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leakwatch/internal/api/handler/v1handler"
	mockbreach "leakwatch/internal/breach/mock"
	mockmonitor "leakwatch/internal/monitor/mock"
	mockpassword "leakwatch/internal/password/mock"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	mockstorage "leakwatch/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const testChatID int64 = 42

type testHandler struct {
	checker  *mockbreach.MockChecker
	assessor *mockpassword.MockAssessor
	monitor  *mockmonitor.MockService
	storage  *mockstorage.MockStorage
	router   http.Handler
	user     domain.User
}

func newTestHandler(t *testing.T) testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := testHandler{
		checker:  mockbreach.NewMockChecker(ctrl),
		assessor: mockpassword.NewMockAssessor(ctrl),
		monitor:  mockmonitor.NewMockService(ctrl),
		storage:  mockstorage.NewMockStorage(ctrl),
		user: domain.User{
			ID:        domain.UserID(uuid.New()),
			ChatID:    testChatID,
			Plan:      domain.PlanPremium,
			CreatedAt: time.Now(),
		},
	}
	th.router = v1handler.New(v1handler.Deps{
		Checker:  th.checker,
		Assessor: th.assessor,
		Monitor:  th.monitor,
		Storage:  th.storage,
	}).Routes()

	return th
}

// expectUser arms the identity middleware for one request.
func (th *testHandler) expectUser() {
	user := th.user
	th.storage.EXPECT().UpsertUser(gomock.Any(), testChatID).Return(&user, nil)
}

func (th *testHandler) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(v1handler.ChatIDHeader, "42")

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestRoutes_missingChatHeader(t *testing.T) {
	th := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/watches", nil)
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp struct {
		Code string `json:"code"`
	}
	decodeBody(t, rec, &resp)
	require.Equal(t, "UNAUTHORIZED", resp.Code)
}
