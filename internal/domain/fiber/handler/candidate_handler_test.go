package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"talentpipe/internal/dto"
	"talentpipe/internal/model"
	"talentpipe/internal/response"
	"talentpipe/internal/usecase"
)

type stubCandidateUsecase struct {
	listResult []model.Candidate
	pagination *response.Pagination
	listErr    error
	getResult  *model.Candidate
	getErr     error
	created    *model.Candidate
	createErr  error
	updateErr  error
	deleteErr  error

	gotID     int
	gotUpdate dto.UpdateCandidateRequest
}

func (s *stubCandidateUsecase) List(page, pageSize int) ([]model.Candidate, *response.Pagination, error) {
	return s.listResult, s.pagination, s.listErr
}

func (s *stubCandidateUsecase) Get(id int) (*model.Candidate, error) {
	s.gotID = id
	return s.getResult, s.getErr
}

func (s *stubCandidateUsecase) Create(req dto.CreateCandidateRequest) (*model.Candidate, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &model.Candidate{ID: 1, Name: req.Name, Status: model.StatusCVScreening}, nil
}

func (s *stubCandidateUsecase) Update(id int, req dto.UpdateCandidateRequest) error {
	s.gotID = id
	s.gotUpdate = req
	return s.updateErr
}

func (s *stubCandidateUsecase) Delete(id int) error {
	s.gotID = id
	return s.deleteErr
}

func newCandidateApp(stub *stubCandidateUsecase) *fiber.App {
	app := fiber.New()
	NewCandidateHandler(stub).RegisterRoutes(app)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestListCandidates(t *testing.T) {
	stub := &stubCandidateUsecase{listResult: []model.Candidate{{ID: 1, Name: "Alex Kim"}}}
	app := newCandidateApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 1)
}

func TestGetCandidateInvalidID(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCandidateNotFound(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{getErr: gorm.ErrRecordNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/candidates/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateCandidateRequiresName(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/candidates", `{"jobId": 3}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateCandidate(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/candidates", `{"name": "Alex Kim"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUpdateCandidateStatusOnly(t *testing.T) {
	stub := &stubCandidateUsecase{}
	app := newCandidateApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/5", `{"status": "Interview"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, stub.gotID)
	assert.False(t, stub.gotUpdate.AssignJob)
	require.NotNil(t, stub.gotUpdate.Status)
	assert.Equal(t, "Interview", *stub.gotUpdate.Status)
}

func TestUpdateCandidateJobAssignment(t *testing.T) {
	stub := &stubCandidateUsecase{}
	app := newCandidateApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/5",
		`{"applied_job_id": 7, "status": "Hired"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, stub.gotUpdate.AssignJob)
	require.NotNil(t, stub.gotUpdate.AppliedJobID)
	assert.Equal(t, 7, *stub.gotUpdate.AppliedJobID)
}

func TestUpdateCandidateJobDetach(t *testing.T) {
	// An explicit null is still a job-assignment update.
	stub := &stubCandidateUsecase{}
	app := newCandidateApp(stub)

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/5", `{"applied_job_id": null}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, stub.gotUpdate.AssignJob)
	assert.Nil(t, stub.gotUpdate.AppliedJobID)
}

func TestUpdateCandidateNoFields(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{updateErr: usecase.ErrNoUpdatableFields})

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/5", `{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCandidateIllegalTransition(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{updateErr: usecase.ErrInvalidTransition})

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/5", `{"status": "Hired"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateCandidateNotFound(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{updateErr: gorm.ErrRecordNotFound})

	resp, err := app.Test(jsonRequest(http.MethodPatch, "/api/candidates/99", `{"status": "Interview"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCandidate(t *testing.T) {
	stub := &stubCandidateUsecase{}
	app := newCandidateApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/candidates/5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, stub.gotID)
}

func TestDeleteCandidateNotFound(t *testing.T) {
	app := newCandidateApp(&stubCandidateUsecase{deleteErr: gorm.ErrRecordNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/candidates/99", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
