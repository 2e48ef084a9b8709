package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/campuskit/leave-tracker/internal/ctxstore"
	"github.com/campuskit/leave-tracker/internal/database"
	"github.com/campuskit/leave-tracker/internal/identity"
	"github.com/campuskit/leave-tracker/internal/model"
	"github.com/campuskit/leave-tracker/internal/request"
	"github.com/campuskit/leave-tracker/internal/response"
	"github.com/campuskit/leave-tracker/internal/validator"
	"github.com/google/uuid"
)

// The departments the login form offers.
var _departments = []string{
	"Artificial Intelligence and Data Science",
	"Civil Engineering",
	"Computer Science and Engineering",
	"Electronics and Communication Engineering",
	"Electrical and Electronics Engineering",
	"Information Technology",
	"Mechanical Engineering",
}

// Handle Status
// @Summary Server Status
// @Description Check if the server is up and running
// @Tags api
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle List Departments
// @Summary List Departments
// @Description List the departments available at login
// @Tags api
// @Produce json
// @Success 200 {object} main.responseDepartments
// @Router /departments [get]
func (app *application) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, responseDepartments{Departments: _departments}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseDepartments struct {
	Departments []string `json:"departments"`
}

// Handle Login
// @Summary Login
// @Description Exchange the institutional email and shared password for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body main.requestLogin true "Credentials, role and department"
// @Success 201 {object} main.responseLogin
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Invalid credentials"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Router /auth/login [post]
func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	var input requestLogin
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateLoginInput(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	policy := identity.Policy{
		EmailDomain:    app.config.auth.emailDomain,
		SharedPassword: app.config.auth.sharedPassword,
	}

	session, err := policy.Login(input.Email, input.Password, model.Role(input.Role), input.Department, input.RollNumber)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			app.errorMessage(w, r, http.StatusUnauthorized, err.Error(), nil)
		case errors.Is(err, model.ErrMissingDepartment),
			errors.Is(err, model.ErrMissingRollNumber),
			errors.Is(err, model.ErrUnknownRole):
			app.errorMessage(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	session.Token = genSessionToken()

	dao := database.NewSessionDAO(logger, app.db)
	if err := dao.Insert(ctx, session); err != nil {
		app.serverError(w, r, err)
		return
	}

	logger.Debug("session created", "userId", session.UserID, "role", session.Role)

	if err := response.JSON(w, http.StatusCreated, responseLogin{Token: session.Token, Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestLogin struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Department string `json:"department"`
	RollNumber string `json:"rollNumber"`
}

type responseLogin struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

// Handle Logout
// @Summary Logout
// @Description Delete the caller's session
// @Tags auth
// @Success 204
// @Failure 401 {object} any "Not authenticated"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /auth/logout [post]
func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	session := ctxstore.MustFrom[model.Session](ctx, _sessionKey)

	dao := database.NewSessionDAO(logger, app.db)
	if err := dao.Delete(ctx, session.Token); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Handle Current Session
// @Summary Current Session
// @Description Return the session resolved from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} main.responseSession
// @Failure 401 {object} any "Not authenticated"
// @Security BearerAuth
// @Router /auth/session [get]
func (app *application) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	session := ctxstore.MustFrom[model.Session](r.Context(), _sessionKey)

	if err := response.JSON(w, http.StatusOK, responseSession{Session: session}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseSession struct {
	Session model.Session `json:"session"`
}

// Handle Submit Request
// @Summary Submit Request
// @Description Submit a new leave or OD request for the logged-in student
// @Tags requests
// @Accept json
// @Produce json
// @Param kind path string true "Request kind" Enums(od, leave)
// @Param input body main.requestSubmit true "Request fields"
// @Success 201 {object} main.responseRequest
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 403 {object} any "Not a student"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /requests/{kind} [post]
func (app *application) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	session := ctxstore.MustFrom[model.Session](ctx, _sessionKey)

	kind, err := kindFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestSubmit
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateSubmitInput(&v, kind, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	var rollNumber string
	if session.RollNumber != nil {
		rollNumber = *session.RollNumber
	}

	rec := model.Request{
		ID: genRequestID(),

		StudentID:   session.UserID,
		StudentName: session.DisplayName,
		RollNumber:  rollNumber,
		Department:  session.Department,

		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,

		Status:      model.StatusPending,
		SubmittedAt: time.Now().UTC(),
	}

	if kind == model.KindLeave {
		rec.FromTime = input.FromTime
		rec.ToTime = input.ToTime
		rec.PhoneNumber = input.PhoneNumber
	}

	dao := database.NewRequestDAO(logger, app.db, kind)

	if err := dao.Append(ctx, rec); err != nil {
		app.serverError(w, r, err)
		return
	}

	logger.Debug("request submitted", "requestId", rec.ID, "kind", kind, "department", rec.Department)

	if err := response.JSON(w, http.StatusCreated, responseRequest{Request: rec}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestSubmit struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`

	// Leave requests only.
	FromTime    string `json:"fromTime"`
	ToTime      string `json:"toTime"`
	PhoneNumber string `json:"phoneNumber"`
}

type responseRequest struct {
	Request model.Request `json:"request"`
}

// Handle List Requests
// @Summary List Requests
// @Description History scoped to the caller: a student's own requests, or the whole department for an HOD
// @Tags requests
// @Produce json
// @Param kind path string true "Request kind" Enums(od, leave)
// @Success 200 {object} main.responseRequests
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /requests/{kind} [get]
func (app *application) handleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := app.scopedRequests(r)
	if err != nil {
		app.handleScopedError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseRequests{Requests: requests}); err != nil {
		app.serverError(w, r, err)
	}
}

type responseRequests struct {
	Requests []model.Request `json:"requests"`
}

// Handle Request Stats
// @Summary Request Stats
// @Description Status counts over the caller's request history
// @Tags requests
// @Produce json
// @Param kind path string true "Request kind" Enums(od, leave)
// @Success 200 {object} model.Stats
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /requests/{kind}/stats [get]
func (app *application) handleRequestStats(w http.ResponseWriter, r *http.Request) {
	requests, err := app.scopedRequests(r)
	if err != nil {
		app.handleScopedError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, model.CountStats(requests)); err != nil {
		app.serverError(w, r, err)
	}
}

// scopedRequests loads one collection and filters it the way the
// history views do: students see their own records, HODs see their
// department's, all statuses.
func (app *application) scopedRequests(r *http.Request) ([]model.Request, error) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	session := ctxstore.MustFrom[model.Session](ctx, _sessionKey)

	kind, err := kindFromRequest(r)
	if err != nil {
		return nil, errBadInput{err}
	}

	dao := database.NewRequestDAO(logger, app.db, kind)

	requests, err := dao.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	switch session.Role {
	case model.RoleStudent:
		return model.FilterByStudent(requests, session.UserID), nil
	default:
		return model.FilterByDepartment(requests, session.Department), nil
	}
}

type errBadInput struct{ err error }

func (e errBadInput) Error() string { return e.err.Error() }

func (app *application) handleScopedError(w http.ResponseWriter, r *http.Request, err error) {
	var badInput errBadInput
	if errors.As(err, &badInput) {
		app.badRequest(w, r, badInput.err)
		return
	}

	app.serverError(w, r, err)
}

// Handle List Pending
// @Summary List Pending Requests
// @Description Requests in the HOD's department still awaiting a decision
// @Tags review
// @Produce json
// @Param kind path string true "Request kind" Enums(od, leave)
// @Success 200 {object} main.responseRequests
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 403 {object} any "Not an HOD"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /review/{kind}/pending [get]
func (app *application) handleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	session := ctxstore.MustFrom[model.Session](ctx, _sessionKey)

	kind, err := kindFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewRequestDAO(logger, app.db, kind)

	requests, err := dao.LoadAll(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	pending := model.FilterPending(requests, session.Department)

	if err := response.JSON(w, http.StatusOK, responseRequests{Requests: pending}); err != nil {
		app.serverError(w, r, err)
	}
}

// Handle Decide
// @Summary Decide Request
// @Description Approve or reject a pending request in the HOD's department
// @Tags review
// @Accept json
// @Produce json
// @Param kind path string true "Request kind" Enums(od, leave)
// @Param requestId path string true "Request ID"
// @Param input body main.requestDecide true "Decision and optional comments"
// @Success 200 {object} main.responseRequest
// @Failure 400 {object} any "Bad request input"
// @Failure 401 {object} any "Not authenticated"
// @Failure 403 {object} any "Not an HOD"
// @Failure 404 {object} any "Request not found"
// @Failure 409 {object} any "Request already decided"
// @Failure 422 {object} validator.Validator "Invalid input data"
// @Failure 500 {object} any "Internal server error"
// @Security BearerAuth
// @Router /review/{kind}/{requestId} [patch]
func (app *application) handleDecide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.requestLogger(r)

	session := ctxstore.MustFrom[model.Session](ctx, _sessionKey)

	kind, err := kindFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	requestID, err := requestIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestDecide
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateDecideInput(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewRequestDAO(logger, app.db, kind)

	updated, err := dao.UpdateStatus(ctx, requestID, database.UpdateStatusDTO{
		Status:     model.Status(input.Decision),
		Comments:   normalizeComments(input.Comments),
		Department: session.Department,
	})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, model.ErrAlreadyDecided):
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
		default:
			app.serverError(w, r, err)
		}
		return
	}

	logger.Debug("request decided", "requestId", requestID, "kind", kind, "decision", updated.Status)

	if err := response.JSON(w, http.StatusOK, responseRequest{Request: updated}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestDecide struct {
	Decision string  `json:"decision"`
	Comments *string `json:"comments"`
}

// normalizeComments treats blank comments as absent, so an empty form
// field never materializes as an empty comment on the record.
func normalizeComments(comments *string) *string {
	if comments == nil || *comments == "" {
		return nil
	}
	return comments
}

func genSessionToken() string {
	token, _ := uuid.NewRandom()
	return token.String()
}

func genRequestID() string {
	id, _ := uuid.NewRandom()
	return id.String()
}
