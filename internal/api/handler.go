package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

const maxUploadSize = 10 << 20

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks

type UserService interface {
	Register(ctx context.Context, firstName, lastName, email, password string) (entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, error)
	ToggleLike(ctx context.Context, userID, vacationID int64) (entity.LikeToggle, error)
	LikedVacationIDs(ctx context.Context, userID int64) ([]int64, error)
	Role(ctx context.Context, roleID int64) (entity.Role, error)
}

type VacationService interface {
	GetVacations(ctx context.Context) ([]entity.Vacation, error)
	GetVacation(ctx context.Context, id int64) (entity.Vacation, error)
	Countries(ctx context.Context) ([]entity.Country, error)
	AddVacation(ctx context.Context, in entity.VacationInput) (entity.Vacation, error)
	UpdateVacation(ctx context.Context, vacationID int64, in entity.VacationInput) (entity.Vacation, error)
	DeleteVacation(ctx context.Context, vacationID int64) (entity.Vacation, error)
}

type PhotoUploader interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(name string) error
}

type Handler struct {
	users     UserService
	vacations VacationService
	photos    PhotoUploader
	sessions  *Sessions
}

func NewHandler(users UserService, vacations VacationService, photos PhotoUploader, sessions *Sessions) *Handler {
	return &Handler{
		users:     users,
		vacations: vacations,
		photos:    photos,
		sessions:  sessions,
	}
}

// Health godoc
// @Summary      Service health
// @Tags         health
// @Success      200 {string} string "OK"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	_, err := w.Write([]byte("OK\n"))
	if err != nil {
		SendErr(r.Context(), w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User      entity.User `json:"user"`
	Role      string      `json:"role"`
	IsAdmin   bool        `json:"is_admin"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary      Register a customer
// @Description  Creates a customer account and starts a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "New user"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} ResponseError "Invalid input or email already exists"
// @Failure      500 {object} ResponseError
// @Router       /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	user, err := h.users.Register(ctx, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	h.startSession(ctx, w, http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} ResponseError "Malformed email or password"
// @Failure      401 {object} ResponseError "Incorrect email or password"
// @Failure      500 {object} ResponseError
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	user, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	if user == nil {
		SendErr(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, entity.ErrMsgBadLogin)
		return
	}

	h.startSession(ctx, w, http.StatusOK, *user)
}

func (h *Handler) startSession(ctx context.Context, w http.ResponseWriter, code int, user entity.User) {
	role, err := h.users.Role(ctx, user.RoleID)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	token, expiresAt, err := h.sessions.Issue(user, time.Now())
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
		return
	}

	h.sessions.SetCookie(w, token, expiresAt)

	SendJSON(ctx, w, code, AuthResponse{
		User:      user,
		Role:      role.Name,
		IsAdmin:   user.IsAdmin(),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	SendJSON(r.Context(), w, http.StatusOK, MessageResponse{Message: "logged out"})
}

type HomeResponse struct {
	FirstName        string            `json:"first_name"`
	IsAdmin          bool              `json:"is_admin"`
	Vacations        []entity.Vacation `json:"vacations"`
	Countries        []entity.Country  `json:"countries"`
	LikedVacationIDs []int64           `json:"liked_vacation_ids"`
}

// Home godoc
// @Summary      Vacation catalogue
// @Description  Returns all vacations ordered by start date with countries and the caller's likes
// @Tags         vacations
// @Produce      json
// @Success      200 {object} HomeResponse
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /vacations [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	vacations, err := h.vacations.GetVacations(ctx)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		handleErr(ctx, w, err)
		return
	}

	if vacations == nil {
		vacations = []entity.Vacation{}
	}

	countries, err := h.vacations.Countries(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	liked, err := h.users.LikedVacationIDs(ctx, user.ID)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, HomeResponse{
		FirstName:        user.FirstName,
		IsAdmin:          user.IsAdmin(),
		Vacations:        vacations,
		Countries:        countries,
		LikedVacationIDs: liked,
	})
}

// Countries godoc
// @Summary      Countries
// @Tags         vacations
// @Produce      json
// @Success      200 {array} entity.Country
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /countries [get]
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	countries, err := h.vacations.Countries(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, countries)
}

type LikeRequest struct {
	VacationID int64 `json:"vacation_id"`
}

// ToggleLike godoc
// @Summary      Like or unlike a vacation
// @Tags         likes
// @Accept       json
// @Produce      json
// @Param        request body LikeRequest true "Vacation to toggle"
// @Success      200 {object} entity.LikeToggle
// @Failure      400 {object} ResponseError
// @Failure      401 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /like [post]
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req LikeRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	toggle, err := h.users.ToggleLike(ctx, user.ID, req.VacationID)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, toggle)
}

// GetVacation godoc
// @Summary      One vacation
// @Tags         admin
// @Produce      json
// @Param        id path int true "Vacation id"
// @Success      200 {object} entity.Vacation
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /vacations/{id} [get]
func (h *Handler) GetVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	v, err := h.vacations.GetVacation(ctx, id)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, v)
}

// AddVacation godoc
// @Summary      Add a vacation
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        country_id formData int true "Country id"
// @Param        description formData string true "Description"
// @Param        start_date formData string true "Start date, YYYY-MM-DD"
// @Param        end_date formData string true "End date, YYYY-MM-DD"
// @Param        price formData number true "Price"
// @Param        photo formData file true "Photo"
// @Success      201 {object} entity.Vacation
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /vacations [post]
func (h *Handler) AddVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	in, err := h.readVacationForm(w, r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	v, err := h.vacations.AddVacation(ctx, in)
	if err != nil {
		h.discardPhoto(ctx, in.PhotoPath)
		handleErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusCreated, v)
}

// UpdateVacation godoc
// @Summary      Update a vacation
// @Description  Replaces every field; the photo is optional and kept when omitted
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Vacation id"
// @Param        country_id formData int true "Country id"
// @Param        description formData string true "Description"
// @Param        start_date formData string true "Start date, YYYY-MM-DD"
// @Param        end_date formData string true "End date, YYYY-MM-DD"
// @Param        price formData number true "Price"
// @Param        photo formData file false "Photo"
// @Success      200 {object} entity.Vacation
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /vacations/{id} [put]
func (h *Handler) UpdateVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	in, err := h.readVacationForm(w, r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	v, err := h.vacations.UpdateVacation(ctx, id, in)
	if err != nil {
		h.discardPhoto(ctx, in.PhotoPath)
		handleErr(ctx, w, err)

		return
	}

	SendJSON(ctx, w, http.StatusOK, v)
}

// DeleteVacation godoc
// @Summary      Delete a vacation
// @Tags         admin
// @Produce      json
// @Param        id path int true "Vacation id"
// @Success      200 {object} entity.Vacation
// @Failure      400 {object} ResponseError
// @Failure      403 {object} ResponseError
// @Failure      500 {object} ResponseError
// @Security     ApiKeyAuth
// @Router       /vacations/{id} [delete]
func (h *Handler) DeleteVacation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	v, err := h.vacations.DeleteVacation(ctx, id)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, v)
}

// readVacationForm parses the form fields and stores the uploaded photo when
// one is attached.
func (h *Handler) readVacationForm(w http.ResponseWriter, r *http.Request) (entity.VacationInput, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		return entity.VacationInput{}, invalidType("request must be a multipart form under 10 MB")
	}

	in, err := parseVacationForm(r)
	if err != nil {
		return entity.VacationInput{}, err
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil
		}

		return entity.VacationInput{}, invalidType("photo must be a file")
	}
	defer file.Close()

	in.PhotoPath, err = h.photos.Save(r.Context(), header.Filename, file)
	if err != nil {
		return entity.VacationInput{}, err
	}

	return in, nil
}

func (h *Handler) discardPhoto(ctx context.Context, name string) {
	if name == "" {
		return
	}

	err := h.photos.Remove(name)
	if err != nil {
		slog.ErrorContext(ctx, "discard photo", "name", name, "error", err)
	}
}
