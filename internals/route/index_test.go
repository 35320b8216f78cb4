package routes

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	database "flc_backend/internals/databases"
	classModel "flc_backend/internals/features/classes/class/model"
	savedModel "flc_backend/internals/features/classes/saved_class/model"
	paymentModel "flc_backend/internals/features/payment/payments/model"
	authService "flc_backend/internals/features/users/auth/service"
	userModel "flc_backend/internals/features/users/user/model"
	helper "flc_backend/internals/helpers"
)

/* ======== fakes ======== */

type users struct{ list []userModel.UserModel }

func (u *users) FindAll(context.Context) ([]userModel.UserModel, error) { return u.list, nil }
func (u *users) FindByRole(context.Context, string) ([]userModel.UserModel, error) {
	return []userModel.UserModel{}, nil
}
func (u *users) FindByEmail(_ context.Context, email string) (*userModel.UserModel, error) {
	for i := range u.list {
		if u.list[i].Email == email {
			return &u.list[i], nil
		}
	}
	return nil, nil
}
func (u *users) Insert(_ context.Context, m *userModel.UserModel) (database.InsertResult, error) {
	m.ID = primitive.NewObjectID()
	u.list = append(u.list, *m)
	return database.InsertResult{Acknowledged: true, InsertedID: m.ID.Hex()}, nil
}
func (u *users) SetRole(_ context.Context, id primitive.ObjectID, role string) (database.UpdateResult, error) {
	for i := range u.list {
		if u.list[i].ID == id {
			u.list[i].Role = role
			return database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return database.UpdateResult{Acknowledged: true}, nil
}

type classes struct{}

func (classes) FindAll(context.Context) ([]classModel.ClassModel, error) {
	return []classModel.ClassModel{{Name: "Go 101"}}, nil
}
func (classes) FindByInstructor(context.Context, string) ([]classModel.ClassModel, error) {
	return []classModel.ClassModel{}, nil
}
func (classes) FindByStatus(context.Context, string) ([]classModel.ClassModel, error) {
	return []classModel.ClassModel{}, nil
}
func (classes) Insert(context.Context, *classModel.ClassModel) (database.InsertResult, error) {
	return database.InsertResult{Acknowledged: true}, nil
}
func (classes) SetStatus(context.Context, primitive.ObjectID, string) (database.UpdateResult, error) {
	return database.UpdateResult{Acknowledged: true}, nil
}
func (classes) IncrementBooking(context.Context, string) (database.UpdateResult, error) {
	return database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type saved struct{ list []savedModel.SavedClassModel }

func (s *saved) Get(_ context.Context, id primitive.ObjectID) (*savedModel.SavedClassModel, error) {
	for i := range s.list {
		if s.list[i].ID == id {
			return &s.list[i], nil
		}
	}
	return nil, nil
}
func (s *saved) FindByStudent(context.Context, string) ([]savedModel.SavedClassModel, error) {
	return s.list, nil
}
func (s *saved) Exists(_ context.Context, name, email string) (bool, error) {
	for _, x := range s.list {
		if x.Name == name && x.StudentEmail == email {
			return true, nil
		}
	}
	return false, nil
}
func (s *saved) Insert(_ context.Context, m *savedModel.SavedClassModel) (database.InsertResult, error) {
	m.ID = primitive.NewObjectID()
	s.list = append(s.list, *m)
	return database.InsertResult{Acknowledged: true, InsertedID: m.ID.Hex()}, nil
}
func (s *saved) DeleteByID(_ context.Context, id primitive.ObjectID) (database.DeleteResult, error) {
	var n int64
	kept := s.list[:0]
	for _, x := range s.list {
		if x.ID == id {
			n++
			continue
		}
		kept = append(kept, x)
	}
	s.list = kept
	return database.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

type payments struct {
	saved *saved
	list  []paymentModel.PaymentModel
}

func (p *payments) RecordPayment(ctx context.Context, id primitive.ObjectID, m *paymentModel.PaymentModel) (database.InsertResult, database.DeleteResult, error) {
	m.ID = primitive.NewObjectID()
	p.list = append(p.list, *m)
	del, err := p.saved.DeleteByID(ctx, id)
	return database.InsertResult{Acknowledged: true, InsertedID: m.ID.Hex()}, del, err
}
func (p *payments) FindByStudent(context.Context, string) ([]paymentModel.PaymentModel, error) {
	return p.list, nil
}
func (p *payments) History(context.Context, string) ([]paymentModel.PaymentModel, error) {
	return p.list, nil
}

type intents struct{}

func (intents) CreateIntent(context.Context, float64) (string, error) { return "cs_test", nil }

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

/* ======== harness ======== */

type server struct {
	app    *fiber.App
	users  *users
	saved  *saved
	tokens *authService.TokenService
}

func newServer(openPromotion bool, store Pinger) *server {
	s := &server{
		users: &users{list: []userModel.UserModel{
			{ID: primitive.NewObjectID(), Email: "admin@b.com", Role: "admin"},
			{ID: primitive.NewObjectID(), Email: "s@b.com", Role: "student"},
		}},
		saved:  &saved{},
		tokens: authService.NewTokenService("secret", time.Hour),
	}
	s.app = fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	SetupRoutes(s.app, Dependencies{
		Tokens:            s.tokens,
		Users:             s.users,
		Classes:           classes{},
		Saved:             s.saved,
		Payments:          &payments{saved: s.saved},
		Intents:           intents{},
		Store:             store,
		OpenRolePromotion: openPromotion,
	})
	return s
}

func (s *server) do(t *testing.T, method, path, token, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(out)
}

func (s *server) login(t *testing.T, email string) string {
	t.Helper()
	status, body := s.do(t, fiber.MethodPost, "/jwt", "", `{"email":"`+email+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, sonic.UnmarshalString(body, &out))
	return out.Token
}

/* ======== tests ======== */

func TestBaseRoutes(t *testing.T) {
	s := newServer(false, pinger{})
	status, body := s.do(t, fiber.MethodGet, "/", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "FLC is running", body)

	status, body = s.do(t, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"status":"OK"`)

	down := newServer(false, pinger{err: errors.New("no primary")})
	status, _ = down.do(t, fiber.MethodGet, "/health", "", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestRoutePolicies(t *testing.T) {
	s := newServer(false, pinger{})
	admin := s.login(t, "admin@b.com")
	student := s.login(t, "s@b.com")

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{"class list needs token", fiber.MethodGet, "/class", "", "", fiber.StatusUnauthorized},
		{"class list with token", fiber.MethodGet, "/class", student, "", fiber.StatusOK},
		{"approved classes public", fiber.MethodGet, "/approvedClass", "", "", fiber.StatusOK},
		{"instructor classes public", fiber.MethodGet, "/class/t@b.com", "", "", fiber.StatusOK},
		{"create class needs instructor", fiber.MethodPost, "/class", student, `{"name":"x"}`, fiber.StatusForbidden},
		{"users list admin only", fiber.MethodGet, "/users", student, "", fiber.StatusForbidden},
		{"users list as admin", fiber.MethodGet, "/users", admin, "", fiber.StatusOK},
		{"deny class admin only", fiber.MethodPatch, "/class/deny/" + primitive.NewObjectID().Hex(), student, "", fiber.StatusForbidden},
		{"register public", fiber.MethodPost, "/users", "", `{"email":"new@b.com"}`, fiber.StatusOK},
		{"instructors public", fiber.MethodGet, "/instructor", "", "", fiber.StatusOK},
		{"intent needs token", fiber.MethodPost, "/create-payment-intent", "", `{"price":1}`, fiber.StatusUnauthorized},
		{"intent with token", fiber.MethodPost, "/create-payment-intent", student, `{"price":1}`, fiber.StatusOK},
		{"booking bump public", fiber.MethodPut, "/payment/Go%20101", "", "", fiber.StatusOK},
		{"payments public", fiber.MethodGet, "/payment/s@b.com", "", "", fiber.StatusOK},
		{"history public", fiber.MethodGet, "/history/s@b.com", "", "", fiber.StatusOK},
		{"export needs token", fiber.MethodGet, "/history/s@b.com/export", "", "", fiber.StatusUnauthorized},
		{"role flag needs token", fiber.MethodGet, "/users/admin/admin@b.com", "", "", fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := s.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestRoleFlags(t *testing.T) {
	s := newServer(false, pinger{})
	admin := s.login(t, "admin@b.com")

	_, body := s.do(t, fiber.MethodGet, "/users/admin/admin@b.com", admin, "")
	assert.JSONEq(t, `{"admin":true}`, body)

	_, body = s.do(t, fiber.MethodGet, "/users/student/s@b.com", admin, "")
	assert.JSONEq(t, `{"student":false}`, body)

	_, body = s.do(t, fiber.MethodGet, "/users/instructor/admin@b.com", admin, "")
	assert.JSONEq(t, `{"instructor":false}`, body)
}

func TestPromotion(t *testing.T) {
	target := func(s *server) string { return s.users.list[1].ID.Hex() }

	gated := newServer(false, pinger{})
	status, _ := gated.do(t, fiber.MethodPatch, "/users/instructor/"+target(gated), "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	status, _ = gated.do(t, fiber.MethodPatch, "/users/instructor/"+target(gated), gated.login(t, "admin@b.com"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "instructor", gated.users.list[1].Role)

	open := newServer(true, pinger{})
	status, _ = open.do(t, fiber.MethodPatch, "/users/admin/"+target(open), "", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "admin", open.users.list[1].Role)
}

func TestCheckoutFlow(t *testing.T) {
	s := newServer(false, pinger{})
	student := s.login(t, "s@b.com")

	status, _ := s.do(t, fiber.MethodPost, "/savedClass", "", `{"name":"Go 101","studentEmail":"s@b.com","price":19.99}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, s.saved.list, 1)
	id := s.saved.list[0].ID.Hex()

	status, body := s.do(t, fiber.MethodPost, "/payments/"+id, student, `{"studentEmail":"s@b.com","price":19.99,"transactionId":"pi_1"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"deletedCount":1`)
	assert.Empty(t, s.saved.list)

	_, body = s.do(t, fiber.MethodGet, "/savedClass?id="+id, "", "")
	assert.Equal(t, "null", body)

	_, body = s.do(t, fiber.MethodGet, "/history/s@b.com", "", "")
	assert.Contains(t, body, "pi_1")
}
