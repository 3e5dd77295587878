package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufanAli65/social-media-todo-api/internal/handlers"
	"github.com/taufanAli65/social-media-todo-api/internal/identity/identitytest"
	"github.com/taufanAli65/social-media-todo-api/internal/models"
	"github.com/taufanAli65/social-media-todo-api/internal/router"
	"github.com/taufanAli65/social-media-todo-api/internal/store/storetest"
	"github.com/taufanAli65/social-media-todo-api/internal/types"
	"github.com/taufanAli65/social-media-todo-api/internal/users"
	"github.com/taufanAli65/social-media-todo-api/internal/workflow"
)

type testAPI struct {
	router   *gin.Engine
	mem      *storetest.Memory
	provider *identitytest.Fake
	adminID  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := storetest.NewMemory()
	provider := identitytest.NewFake()

	contentService := workflow.NewService(mem)
	userService := users.NewService(provider, mem)

	r := router.NewRouter(router.Deps{
		Auth:     handlers.NewAuthHandler(userService),
		Content:  handlers.NewContentHandler(contentService),
		Provider: provider,
		Store:    mem,
	})

	adminID := mem.SeedUser(models.User{Roles: types.RoleAdmin})

	return &testAPI{router: r, mem: mem, provider: provider, adminID: adminID}
}

func (a *testAPI) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) adminToken() string {
	return identitytest.Token(a.adminID)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateContent(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, "POST", "/content", api.adminToken(),
		`{"title":"New Content","brand":"Brand A","platform":"Platform X","payment":100}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Success", body["status"])
	assert.NotEmpty(t, body["id"])

	content := body["content"].(map[string]interface{})
	assert.Equal(t, "unassigned", content["status"])

	dueDate, err := time.Parse(time.RFC3339, content["due_date"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), dueDate, time.Minute)
}

func TestCreateContent_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, "POST", "/content", api.adminToken(), `{"title":"Incomplete Content"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestCreateContent_RequiresAdmin(t *testing.T) {
	api := newTestAPI(t)
	employeeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})

	w := api.do(t, "POST", "/content", identitytest.Token(employeeID),
		`{"title":"T","brand":"B","platform":"P","payment":1}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListContents_RequiresToken(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, "GET", "/content", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestListContents_EmployeeSeesOnlyOwn(t *testing.T) {
	api := newTestAPI(t)
	employeeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	mine := employeeID
	api.mem.SeedContent(models.Content{Title: "mine", AssignedTo: &mine, Status: types.StatusAssigned})
	api.mem.SeedContent(models.Content{Title: "other", Status: types.StatusUnassigned})

	w := api.do(t, "GET", "/content", identitytest.Token(employeeID), "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	contents := body["contents"].([]interface{})
	require.Len(t, contents, 1)

	asAdmin := api.do(t, "GET", "/content", api.adminToken(), "")
	require.Equal(t, http.StatusOK, asAdmin.Code)
	adminBody := decodeBody(t, asAdmin)
	assert.Len(t, adminBody["contents"].([]interface{}), 2)
}

func TestListContents_Empty(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, "GET", "/content", api.adminToken(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No Contents")
}

func TestListByStatus_InvalidStatus(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, "GET", "/content/all/archived", api.adminToken(), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status parameter")
}

func TestAssignFlow(t *testing.T) {
	api := newTestAPI(t)
	employeeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	contentID := api.mem.SeedContent(models.Content{Title: "T", Status: types.StatusUnassigned})

	w := api.do(t, "POST", "/content/assign", api.adminToken(),
		`{"userID":"`+employeeID+`","contentID":"`+contentID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Second assignment of the same content must be rejected.
	otherID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	again := api.do(t, "POST", "/content/assign", api.adminToken(),
		`{"userID":"`+otherID+`","contentID":"`+contentID+`"}`)
	assert.Equal(t, http.StatusBadRequest, again.Code)
	assert.Contains(t, again.Body.String(), "User or Content already assigned")
}

func TestAssign_UserNotFound(t *testing.T) {
	api := newTestAPI(t)
	contentID := api.mem.SeedContent(models.Content{Title: "T"})

	w := api.do(t, "POST", "/content/assign", api.adminToken(),
		`{"userID":"missing","contentID":"`+contentID+`"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUpdateStatus_WrongUserIsNotFoundShaped(t *testing.T) {
	api := newTestAPI(t)
	assigneeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee, Assigned: true})
	wrongID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	contentID := api.mem.SeedContent(models.Content{
		Title:      "T",
		Status:     types.StatusAssigned,
		AssignedTo: &assigneeID,
	})

	w := api.do(t, "PUT", "/content", identitytest.Token(wrongID),
		`{"userID":"`+wrongID+`","contentID":"`+contentID+`","status":"done"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not authorized to update this content")
}

func TestUpdateStatus_Assignee(t *testing.T) {
	api := newTestAPI(t)
	assigneeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee, Assigned: true})
	contentID := api.mem.SeedContent(models.Content{
		Title:      "T",
		Status:     types.StatusAssigned,
		AssignedTo: &assigneeID,
	})

	w := api.do(t, "PUT", "/content", identitytest.Token(assigneeID),
		`{"userID":"`+assigneeID+`","contentID":"`+contentID+`","status":"on-progress"}`)

	require.Equal(t, http.StatusOK, w.Code)

	updated, err := api.mem.GetContent(context.Background(), contentID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusOnProgress, updated.Status)
}

func TestDeleteContent_ReleasesAssignee(t *testing.T) {
	api := newTestAPI(t)
	assigneeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee, Assigned: true})
	contentID := api.mem.SeedContent(models.Content{
		Title:      "T",
		Status:     types.StatusOnProgress,
		AssignedTo: &assigneeID,
	})

	w := api.do(t, "DELETE", "/content/"+contentID, api.adminToken(), "")
	require.Equal(t, http.StatusOK, w.Code)

	user, err := api.mem.GetUser(context.Background(), assigneeID)
	require.NoError(t, err)
	assert.False(t, user.Assigned)

	listed := api.do(t, "GET", "/content/user/"+assigneeID, api.adminToken(), "")
	require.Equal(t, http.StatusOK, listed.Code)
	body := decodeBody(t, listed)
	assert.Empty(t, body["contents"])
}

func TestGetContent_StrangerGetsNotFoundShape(t *testing.T) {
	api := newTestAPI(t)
	assigneeID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	strangerID := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	contentID := api.mem.SeedContent(models.Content{
		Title:      "T",
		Status:     types.StatusAssigned,
		AssignedTo: &assigneeID,
	})

	w := api.do(t, "GET", "/content/"+contentID, identitytest.Token(strangerID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	asAssignee := api.do(t, "GET", "/content/"+contentID, identitytest.Token(assigneeID), "")
	assert.Equal(t, http.StatusOK, asAssignee.Code)
}

func TestReassign_EndToEnd(t *testing.T) {
	api := newTestAPI(t)
	oldOwner := api.mem.SeedUser(models.User{Roles: types.RoleEmployee, Assigned: true})
	newOwner := api.mem.SeedUser(models.User{Roles: types.RoleEmployee})
	contentID := api.mem.SeedContent(models.Content{
		Title:      "T",
		Status:     types.StatusAssigned,
		AssignedTo: &oldOwner,
	})

	w := api.do(t, "PUT", "/content/reassign", api.adminToken(),
		`{"userID":"`+newOwner+`","contentID":"`+contentID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	content, err := api.mem.GetContent(context.Background(), contentID)
	require.NoError(t, err)
	require.NotNil(t, content.AssignedTo)
	assert.Equal(t, newOwner, *content.AssignedTo)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), content.DueDate, time.Minute)
}
