package controllers

import (
	"StarBoard/middlewares"
	"StarBoard/models"
	"StarBoard/services"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService реализует AuthServiceInterface для тестирования
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RequestOtp(ctx context.Context, phone string) (time.Time, error) {
	args := m.Called(phone)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockAuthService) VerifyOtp(ctx context.Context, phone, code string) (*models.Parent, *models.Session, error) {
	args := m.Called(phone, code)
	parent, _ := args.Get(0).(*models.Parent)
	session, _ := args.Get(1).(*models.Session)
	return parent, session, args.Error(2)
}

func (m *MockAuthService) CurrentParent(ctx context.Context, token string) (*models.Parent, error) {
	args := m.Called(token)
	parent, _ := args.Get(0).(*models.Parent)
	return parent, args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(token).Error(0)
}

type MockChildService struct {
	mock.Mock
}

func (m *MockChildService) AddChild(ctx context.Context, parent *models.Parent, in services.AddChildInput) (*models.Child, error) {
	args := m.Called(parent, in)
	child, _ := args.Get(0).(*models.Child)
	return child, args.Error(1)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) AddTask(ctx context.Context, parent *models.Parent, in services.AddTaskInput) (*models.Task, error) {
	args := m.Called(parent, in)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) AddTaskFromTemplate(ctx context.Context, parent *models.Parent, childID, templateKey string) (*models.Task, error) {
	args := m.Called(parent, childID, templateKey)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) SetTaskActive(ctx context.Context, parent *models.Parent, taskID string, active bool) error {
	return m.Called(parent, taskID, active).Error(0)
}

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) LogStars(ctx context.Context, parent *models.Parent, in services.LogStarsInput) (*services.RewardResult, error) {
	args := m.Called(parent, in)
	result, _ := args.Get(0).(*services.RewardResult)
	return result, args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Dashboard(ctx context.Context, parent *models.Parent) (*services.Dashboard, error) {
	args := m.Called(parent)
	dashboard, _ := args.Get(0).(*services.Dashboard)
	return dashboard, args.Error(1)
}

func (m *MockDashboardService) MonthStars(ctx context.Context, parent *models.Parent, childID string, year, month int) ([]models.DayStars, error) {
	args := m.Called(parent, childID, year, month)
	days, _ := args.Get(0).([]models.DayStars)
	return days, args.Error(1)
}

type MockParentService struct {
	mock.Mock
}

func (m *MockParentService) Profile(ctx context.Context, parent *models.Parent) (*services.Profile, error) {
	args := m.Called(parent)
	profile, _ := args.Get(0).(*services.Profile)
	return profile, args.Error(1)
}

func (m *MockParentService) RegisterDevice(ctx context.Context, parent *models.Parent, token string) error {
	return m.Called(parent, token).Error(0)
}

type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context) ([]models.TaskTemplate, error) {
	args := m.Called()
	templates, _ := args.Get(0).([]models.TaskTemplate)
	return templates, args.Error(1)
}

type testMocks struct {
	auth      *MockAuthService
	children  *MockChildService
	tasks     *MockTaskService
	rewards   *MockRewardService
	dashboard *MockDashboardService
	parents   *MockParentService
	templates *MockTemplateService
}

const testToken = "session-token"

var testParent = &models.Parent{ID: "parent-1", Phone: "+15556001"}

// Настройка роутера для тестов
func setupTestRouter() (*gin.Engine, *testMocks) {
	gin.SetMode(gin.TestMode)
	m := &testMocks{
		auth:      new(MockAuthService),
		children:  new(MockChildService),
		tasks:     new(MockTaskService),
		rewards:   new(MockRewardService),
		dashboard: new(MockDashboardService),
		parents:   new(MockParentService),
		templates: new(MockTemplateService),
	}
	SetAuthService(m.auth)
	SetChildService(m.children)
	SetTaskService(m.tasks)
	SetRewardService(m.rewards)
	SetDashboardService(m.dashboard)
	SetParentService(m.parents)
	SetTemplateService(m.templates)

	m.auth.On("CurrentParent", testToken).Return(testParent, nil).Maybe()
	m.auth.On("CurrentParent", "stale").Return(nil, nil).Maybe()

	router := gin.New()
	actions := router.Group("/actions", middlewares.LoadParent(m.auth))
	actions.POST("/otp/request", RequestOtp)
	actions.POST("/otp/verify", VerifyOtp)
	actions.POST("/logout", Logout)

	protected := router.Group("", middlewares.LoadParent(m.auth), middlewares.RequireParent())
	protected.POST("/actions/children", AddChild)
	protected.POST("/actions/tasks", AddTask)
	protected.POST("/actions/tasks/template", AddTaskFromTemplate)
	protected.POST("/actions/tasks/active", SetTaskActive)
	protected.POST("/actions/stars", LogStars)
	protected.POST("/actions/device", RegisterDevice)
	protected.GET("/api/me", GetMe)
	protected.GET("/api/dashboard", GetDashboard)
	protected.GET("/api/children/:id/calendar", GetChildCalendar)
	protected.GET("/api/templates", GetTemplates)
	return router, m
}

func postForm(router *gin.Engine, path string, form url.Values, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRequestOtpController(t *testing.T) {
	router, m := setupTestRouter()
	expires := time.Date(2026, 5, 1, 10, 10, 0, 0, time.UTC)
	m.auth.On("RequestOtp", "+15556001").Return(expires, nil)

	w := postForm(router, "/actions/otp/request", url.Values{"phone": {"+15556001"}}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "2026-05-01T10:10:00Z", body["expires_at"])
}

func TestRequestOtpControllerValidation(t *testing.T) {
	router, m := setupTestRouter()
	m.auth.On("RequestOtp", "").Return(time.Time{}, services.ErrPhoneRequired)

	w := postForm(router, "/actions/otp/request", url.Values{}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, services.ErrPhoneRequired.Error(), body["error"])
}

func TestVerifyOtpSetsCookie(t *testing.T) {
	router, m := setupTestRouter()
	expires := time.Now().Add(services.SessionTTL)
	m.auth.On("VerifyOtp", "+15556001", "123456").
		Return(testParent, &models.Session{Token: "fresh", ExpiresAt: expires}, nil)

	w := postForm(router, "/actions/otp/verify", url.Values{"phone": {"+15556001"}, "code": {"123456"}}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, "fresh", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	body := decode(t, w)
	parent := body["parent"].(map[string]interface{})
	assert.Equal(t, "parent-1", parent["id"])
	assert.NotContains(t, parent, "device_token")
}

func TestVerifyOtpWrongCode(t *testing.T) {
	router, m := setupTestRouter()
	m.auth.On("VerifyOtp", "+15556001", "000000").Return(nil, nil, services.ErrOtpMismatch)

	w := postForm(router, "/actions/otp/verify", url.Values{"phone": {"+15556001"}, "code": {"000000"}}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, sessionCookie(w))
	assert.Equal(t, services.ErrOtpMismatch.Error(), decode(t, w)["error"])
}

func TestLogoutClearsCookie(t *testing.T) {
	router, m := setupTestRouter()
	m.auth.On("Logout", testToken).Return(nil)

	w := postForm(router, "/actions/logout", url.Values{}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
	m.auth.AssertCalled(t, "Logout", testToken)
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	router, _ := setupTestRouter()

	w := get(router, "/api/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "not logged in", body["error"])
}

func TestStaleCookieIsCleared(t *testing.T) {
	router, _ := setupTestRouter()

	w := get(router, "/api/me", "stale")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestAddChildController(t *testing.T) {
	router, m := setupTestRouter()
	age := 7
	m.children.On("AddChild", testParent, services.AddChildInput{Name: "Mia", Age: &age, Color: ""}).
		Return(&models.Child{ID: "child-1", Name: "Mia"}, nil)

	w := postForm(router, "/actions/children", url.Values{"name": {"Mia"}, "age": {"7"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	child := decode(t, w)["child"].(map[string]interface{})
	assert.Equal(t, "child-1", child["id"])
}

func TestAddChildIgnoresNonNumericAge(t *testing.T) {
	router, m := setupTestRouter()
	m.children.On("AddChild", testParent, services.AddChildInput{Name: "Leo"}).
		Return(&models.Child{ID: "child-2", Name: "Leo"}, nil)

	w := postForm(router, "/actions/children", url.Values{"name": {"Leo"}, "age": {"six"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	m.children.AssertExpectations(t)
}

func TestAddTaskController(t *testing.T) {
	router, m := setupTestRouter()
	m.tasks.On("AddTask", testParent, mock.MatchedBy(func(in services.AddTaskInput) bool {
		return in.ChildID == "child-1" && in.Title == "Read" && in.Stars == nil && in.Schedule == "evenings"
	})).Return(nil, services.ErrNoPermissionTask)

	w := postForm(router, "/actions/tasks", url.Values{
		"childId": {"child-1"}, "title": {"Read"}, "stars": {"x"}, "schedule": {"evenings"},
	}, testToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, services.ErrNoPermissionTask.Error(), decode(t, w)["error"])
}

func TestAddTaskFromTemplateController(t *testing.T) {
	router, m := setupTestRouter()
	m.tasks.On("AddTaskFromTemplate", testParent, "child-1", "homework").
		Return(&models.Task{ID: "task-1", Title: "Homework done", Stars: 3}, nil)

	w := postForm(router, "/actions/tasks/template", url.Values{"childId": {"child-1"}, "templateKey": {"homework"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	task := decode(t, w)["task"].(map[string]interface{})
	assert.Equal(t, float64(3), task["stars"])
}

func TestSetTaskActiveController(t *testing.T) {
	router, m := setupTestRouter()
	m.tasks.On("SetTaskActive", testParent, "task-1", false).Return(nil)

	w := postForm(router, "/actions/tasks/active", url.Values{"taskId": {"task-1"}, "active": {"false"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	m.tasks.AssertExpectations(t)
}

func TestLogStarsController(t *testing.T) {
	router, m := setupTestRouter()
	m.rewards.On("LogStars", testParent, mock.MatchedBy(func(in services.LogStarsInput) bool {
		return in.ChildID == "child-1" && in.Stars != nil && *in.Stars == 2 && in.Note == "great"
	})).Return(&services.RewardResult{
		Streak:       7,
		BonusAwarded: 2,
		Unlocked:     []models.Achievement{{Kind: models.AchievementKindStreak, Threshold: 7}},
	}, nil)

	w := postForm(router, "/actions/stars", url.Values{"childId": {"child-1"}, "stars": {"2"}, "note": {"great"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, float64(7), body["streak"])
	assert.Equal(t, float64(2), body["bonus_awarded"])
	assert.Len(t, body["achievements"], 1)
}

func TestLogStarsControllerInternalError(t *testing.T) {
	router, m := setupTestRouter()
	m.rewards.On("LogStars", testParent, mock.Anything).Return(nil, errors.New("database is locked"))

	w := postForm(router, "/actions/stars", url.Values{"childId": {"child-1"}}, testToken)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "database is locked")
}

func TestRegisterDeviceController(t *testing.T) {
	router, m := setupTestRouter()
	m.parents.On("RegisterDevice", testParent, "fcm-1").Return(nil)

	w := postForm(router, "/actions/device", url.Values{"token": {"fcm-1"}}, testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	m.parents.AssertExpectations(t)
}

func TestGetMeController(t *testing.T) {
	router, m := setupTestRouter()
	m.parents.On("Profile", testParent).
		Return(&services.Profile{Parent: testParent, Children: []models.Child{{ID: "child-1"}}}, nil)

	w := get(router, "/api/me", testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["children"], 1)
}

func TestGetDashboardController(t *testing.T) {
	router, m := setupTestRouter()
	m.dashboard.On("Dashboard", testParent).Return(&services.Dashboard{
		Phone:     testParent.Phone,
		Children:  []services.ChildSummary{{Child: models.Child{ID: "child-1"}, Streak: 4, TodayStars: 2}},
		Templates: []models.TaskTemplate{},
	}, nil)

	w := get(router, "/api/dashboard", testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	dashboard := decode(t, w)["dashboard"].(map[string]interface{})
	assert.Equal(t, testParent.Phone, dashboard["phone"])
	children := dashboard["children"].([]interface{})
	require.Len(t, children, 1)
	assert.Equal(t, float64(4), children[0].(map[string]interface{})["streak"])
}

func TestGetChildCalendarController(t *testing.T) {
	router, m := setupTestRouter()
	m.dashboard.On("MonthStars", testParent, "child-1", 2026, 2).
		Return([]models.DayStars{{Day: "2026-02-01", Stars: 3}}, nil)

	w := get(router, "/api/children/child-1/calendar?year=2026&month=2", testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	days := decode(t, w)["days"].([]interface{})
	require.Len(t, days, 1)
	assert.Equal(t, "2026-02-01", days[0].(map[string]interface{})["date"])

	w = get(router, "/api/children/child-1/calendar?year=2026", testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTemplatesController(t *testing.T) {
	router, m := setupTestRouter()
	m.templates.On("List").Return([]models.TaskTemplate{{Key: "bedtime", Title: "Bedtime on time"}}, nil)

	w := get(router, "/api/templates", testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	templates := decode(t, w)["templates"].([]interface{})
	assert.Equal(t, "bedtime", templates[0].(map[string]interface{})["key"])
}

func postRaw(router *gin.Engine, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: middlewares.SessionCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMalformedFormIsRejected(t *testing.T) {
	router, m := setupTestRouter()

	w := postRaw(router, "/actions/otp/request", "phone=%zz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request", decode(t, w)["error"])
	m.auth.AssertNotCalled(t, "RequestOtp", mock.Anything)

	w = postRaw(router, "/actions/stars", "childId=%zz&stars=2", testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.rewards.AssertNotCalled(t, "LogStars", mock.Anything, mock.Anything)
}
