package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/vacations/internal/api"
	"github.com/samandr77/microservices/vacations/internal/entity"
	"github.com/samandr77/microservices/vacations/internal/mocks"
)

const testSecret = "test-secret"

type testAPI struct {
	users     *mocks.MockUserService
	vacations *mocks.MockVacationService
	photos    *mocks.MockPhotoUploader
	sessions  *api.Sessions
	router    http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	c := &testAPI{
		users:     mocks.NewMockUserService(ctrl),
		vacations: mocks.NewMockVacationService(ctrl),
		photos:    mocks.NewMockPhotoUploader(ctrl),
		sessions:  api.NewSessions(testSecret, time.Hour, false),
	}

	h := api.NewHandler(c.users, c.vacations, c.photos, c.sessions)
	c.router = api.NewRouter(h, api.NewMiddleware(c.sessions))

	return c
}

func (c *testAPI) token(t *testing.T, user entity.User) string {
	t.Helper()

	token, _, err := c.sessions.Issue(user, time.Now())
	require.NoError(t, err)

	return token
}

func (c *testAPI) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

var (
	customer = entity.User{ID: 3, FirstName: "Dana", Email: "dana@example.com", RoleID: entity.RoleIDCustomer}
	admin    = entity.User{ID: 1, FirstName: "Admin", Email: "admin@example.com", RoleID: entity.RoleIDAdmin}
)

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	rec := c.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("success sets session", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		c.users.EXPECT().Register(gomock.Any(), "Dana", "Levi", "dana@example.com", "secret").Return(customer, nil)
		c.users.EXPECT().Role(gomock.Any(), entity.RoleIDCustomer).Return(entity.Role{ID: 1, Name: entity.RoleCustomer}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, api.RegisterRequest{
			FirstName: "Dana",
			LastName:  "Levi",
			Email:     "dana@example.com",
			Password:  "secret",
		}))

		rec := c.do(req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, customer.ID, resp.User.ID)
		require.Equal(t, entity.RoleCustomer, resp.Role)
		require.False(t, resp.IsAdmin)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, api.SessionCookie, cookies[0].Name)

		user, err := c.sessions.Parse(cookies[0].Value)
		require.NoError(t, err)
		require.Equal(t, customer.ID, user.ID)
	})

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		c.users.EXPECT().Register(gomock.Any(), "", "", "x", "y").
			Return(entity.User{}, errWrap(entity.ErrMissingInput, "all fields are required"))

		req := httptest.NewRequest(http.MethodPost, "/api/register", jsonBody(t, api.RegisterRequest{Email: "x", Password: "y"}))

		rec := c.do(req)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp api.ResponseError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, "all fields are required", resp.Message)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	t.Run("no match", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)
		c.users.EXPECT().Login(gomock.Any(), "dana@example.com", "wrong").Return(nil, nil)

		rec := c.do(httptest.NewRequest(http.MethodPost, "/api/login",
			jsonBody(t, api.LoginRequest{Email: "dana@example.com", Password: "wrong"})))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp api.ResponseError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, entity.ErrMsgBadLogin, resp.Message)
	})

	t.Run("match", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)
		user := admin
		c.users.EXPECT().Login(gomock.Any(), admin.Email, "secret").Return(&user, nil)
		c.users.EXPECT().Role(gomock.Any(), entity.RoleIDAdmin).Return(entity.Role{ID: 2, Name: entity.RoleAdmin}, nil)

		rec := c.do(httptest.NewRequest(http.MethodPost, "/api/login",
			jsonBody(t, api.LoginRequest{Email: admin.Email, Password: "secret"})))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.True(t, resp.IsAdmin)
		require.NotEmpty(t, resp.Token)
	})
}

func TestHandler_Home(t *testing.T) {
	t.Parallel()

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		rec := c.do(httptest.NewRequest(http.MethodGet, "/api/vacations", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty catalogue", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		c.vacations.EXPECT().GetVacations(gomock.Any()).Return(nil, errWrap(entity.ErrNotFound, "no vacations found"))
		c.vacations.EXPECT().Countries(gomock.Any()).Return([]entity.Country{{ID: 1, Name: "Greece"}}, nil)
		c.users.EXPECT().LikedVacationIDs(gomock.Any(), customer.ID).Return([]int64{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, customer)})

		rec := c.do(req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.HomeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Empty(t, resp.Vacations)
		require.NotNil(t, resp.Vacations)
		require.Len(t, resp.Countries, 1)
		require.Equal(t, "Dana", resp.FirstName)
	})

	t.Run("bearer token", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		list := []entity.Vacation{{ID: 5, CountryName: "Greece", Price: decimal.NewFromInt(900)}}

		c.vacations.EXPECT().GetVacations(gomock.Any()).Return(list, nil)
		c.vacations.EXPECT().Countries(gomock.Any()).Return([]entity.Country{}, nil)
		c.users.EXPECT().LikedVacationIDs(gomock.Any(), customer.ID).Return([]int64{5}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/vacations", nil)
		req.Header.Set("Authorization", "Bearer "+c.token(t, customer))

		rec := c.do(req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.HomeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Vacations, 1)
		require.Equal(t, []int64{5}, resp.LikedVacationIDs)
	})
}

func TestHandler_ToggleLike(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	c.users.EXPECT().ToggleLike(gomock.Any(), customer.ID, int64(5)).
		Return(entity.LikeToggle{Action: entity.LikeActionAdded, VacationID: 5, LikesCount: 2}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/like", jsonBody(t, api.LikeRequest{VacationID: 5}))
	req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, customer)})

	rec := c.do(req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.LikeToggle
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, entity.LikeActionAdded, resp.Action)
	require.Equal(t, 2, resp.LikesCount)
}

func vacationForm(t *testing.T, fields map[string]string, photo string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}

	if photo != "" {
		fw, err := mw.CreateFormFile("photo", photo)
		require.NoError(t, err)

		_, err = fw.Write([]byte("image bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandler_AddVacation(t *testing.T) { //nolint:funlen
	t.Parallel()

	fields := map[string]string{
		"country_id":  "4",
		"description": "Island hopping",
		"start_date":  "2030-06-01",
		"end_date":    "2030-06-10",
		"price":       "3200.50",
	}

	t.Run("forbidden for customers", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		body, ct := vacationForm(t, fields, "island.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/vacations", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, customer)})

		rec := c.do(req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		c.photos.EXPECT().Save(gomock.Any(), "island.jpg", gomock.Any()).Return("stored.jpg", nil)
		c.vacations.EXPECT().AddVacation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in entity.VacationInput) (entity.Vacation, error) {
				require.Equal(t, int64(4), in.CountryID)
				require.Equal(t, "stored.jpg", in.PhotoPath)
				require.True(t, in.Price.Equal(decimal.RequireFromString("3200.5")))
				require.Equal(t, time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC), in.StartDate)

				return entity.Vacation{ID: 12, PhotoPath: in.PhotoPath}, nil
			})

		body, ct := vacationForm(t, fields, "island.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/vacations", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("service error removes photo", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		c.photos.EXPECT().Save(gomock.Any(), "island.jpg", gomock.Any()).Return("stored.jpg", nil)
		c.vacations.EXPECT().AddVacation(gomock.Any(), gomock.Any()).
			Return(entity.Vacation{}, errWrap(entity.ErrInvalidInput, "price must be greater than 0 and less than 10,000"))
		c.photos.EXPECT().Remove("stored.jpg").Return(nil)

		body, ct := vacationForm(t, fields, "island.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/vacations", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "price must be greater than 0")
	})

	t.Run("bad date", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		bad := map[string]string{"start_date": "01/06/2030"}

		body, ct := vacationForm(t, bad, "")
		req := httptest.NewRequest(http.MethodPost, "/api/vacations", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "start date must be in YYYY-MM-DD format")
	})
}

func TestHandler_VacationByID(t *testing.T) {
	t.Parallel()

	t.Run("get not found", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)
		c.vacations.EXPECT().GetVacation(gomock.Any(), int64(99)).
			Return(entity.Vacation{}, errWrap(entity.ErrNotFound, "Vacation id not found"))

		req := httptest.NewRequest(http.MethodGet, "/api/vacations/99", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/vacations/abc", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)
		c.vacations.EXPECT().DeleteVacation(gomock.Any(), int64(7)).Return(entity.Vacation{ID: 7}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/vacations/7", nil)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update without photo", func(t *testing.T) {
		t.Parallel()

		c := newTestAPI(t)
		c.vacations.EXPECT().UpdateVacation(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, in entity.VacationInput) (entity.Vacation, error) {
				require.Empty(t, in.PhotoPath)
				require.Equal(t, "Updated", in.Description)

				return entity.Vacation{ID: 7, Description: in.Description}, nil
			})

		body, ct := vacationForm(t, map[string]string{"description": "Updated"}, "")
		req := httptest.NewRequest(http.MethodPut, "/api/vacations/7", body)
		req.Header.Set("Content-Type", ct)
		req.AddCookie(&http.Cookie{Name: api.SessionCookie, Value: c.token(t, admin)})

		rec := c.do(req)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Parallel()

	c := newTestAPI(t)

	rec := c.do(httptest.NewRequest(http.MethodPost, "/api/logout", strings.NewReader("")))
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, -1, cookies[0].MaxAge)
}
