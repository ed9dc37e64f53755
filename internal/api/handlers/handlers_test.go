package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/service"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

type fakeCoupons struct {
	lastQuery models.ListQuery
	lastInput validation.CouponInput
	err       error
}

func (f *fakeCoupons) List(ctx context.Context, q models.ListQuery) (models.Page[models.Coupon], error) {
	f.lastQuery = q
	return models.NewPage([]models.Coupon{{Code: "SPRING10"}}, 1, q.Per), f.err
}

func (f *fakeCoupons) Get(ctx context.Context, id uuid.UUID) (models.Coupon, error) {
	return models.Coupon{ID: id}, f.err
}

func (f *fakeCoupons) Create(ctx context.Context, in validation.CouponInput) (models.Coupon, error) {
	f.lastInput = in
	return models.Coupon{ID: uuid.New()}, f.err
}

func (f *fakeCoupons) Update(ctx context.Context, id uuid.UUID, in validation.CouponInput) (models.Coupon, error) {
	return models.Coupon{ID: id}, f.err
}

func (f *fakeCoupons) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

func couponRouter(svc CouponService) http.Handler {
	h := NewCouponHandler(svc)
	r := chi.NewRouter()
	r.Get("/coupons", h.List)
	r.Post("/coupons", h.Create)
	r.Get("/coupons/{couponID}", h.Get)
	r.Delete("/coupons/{couponID}", h.Delete)
	return r
}

type response struct {
	Status  bool              `json:"status"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, response) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var res response
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("body is not JSON: %q", rec.Body.String())
	}
	return rec, res
}

func TestCouponListEnvelope(t *testing.T) {
	svc := &fakeCoupons{}
	rec, res := do(t, couponRouter(svc), http.MethodGet, "/coupons?per=500&keyword=spring", "")

	if rec.Code != http.StatusOK || !res.Status {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
	if svc.lastQuery.Per != validation.MaxPer || svc.lastQuery.Page != 1 || svc.lastQuery.Keyword != "spring" {
		t.Fatalf("query = %+v", svc.lastQuery)
	}
	var page models.Page[models.Coupon]
	if err := json.Unmarshal(res.Data, &page); err != nil || page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("data = %s", res.Data)
	}
}

func TestCouponListBadPaging(t *testing.T) {
	rec, res := do(t, couponRouter(&fakeCoupons{}), http.MethodGet, "/coupons?page=abc", "")
	if rec.Code != http.StatusBadRequest || res.Status || res.Message != "page "+validation.MsgFieldsIncorrect {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
}

func TestCouponCreate(t *testing.T) {
	svc := &fakeCoupons{}
	rec, res := do(t, couponRouter(svc), http.MethodPost, "/coupons", `{"code":"SPRING10","discount":9}`)
	if rec.Code != http.StatusCreated || res.Message != "coupon created" {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
	if svc.lastInput.Code == nil || *svc.lastInput.Code != "SPRING10" || *svc.lastInput.Discount != 9 {
		t.Fatalf("input = %+v", svc.lastInput)
	}
}

func TestCouponCreateRejectsBadBodies(t *testing.T) {
	for name, body := range map[string]string{
		"unknown field": `{"code":"A","owner":"me"}`,
		"malformed":     `{"code":`,
		"trailing":      `{"code":"A"}{"code":"B"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec, res := do(t, couponRouter(&fakeCoupons{}), http.MethodPost, "/coupons", body)
			if rec.Code != http.StatusBadRequest || res.Message != validation.MsgFieldsIncorrect {
				t.Fatalf("got %d %+v", rec.Code, res)
			}
		})
	}
}

func TestCouponBadID(t *testing.T) {
	rec, res := do(t, couponRouter(&fakeCoupons{}), http.MethodGet, "/coupons/42", "")
	if rec.Code != http.StatusBadRequest || res.Message != "coupon id "+validation.MsgFieldsIncorrect {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
}

func TestCouponServiceErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.NotFound("coupon data does not exist"), http.StatusNotFound, "coupon data does not exist"},
		{validation.Error("coupon data has not changed"), http.StatusBadRequest, "coupon data has not changed"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		rec, res := do(t, couponRouter(&fakeCoupons{err: tc.err}), http.MethodDelete, "/coupons/"+uuid.NewString(), "")
		if rec.Code != tc.status || res.Message != tc.msg || res.Status {
			t.Fatalf("%v: got %d %+v", tc.err, rec.Code, res)
		}
	}
}

func TestFieldErrorsAreListed(t *testing.T) {
	svc := &fakeCoupons{err: validation.Errors{"email": validation.MsgEmailNotRule}}
	rec, res := do(t, couponRouter(svc), http.MethodPost, "/coupons", `{}`)
	if rec.Code != http.StatusBadRequest || res.Errors["email"] != validation.MsgEmailNotRule {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
}

type fakeUsers struct {
	res service.BanResult
}

func (f fakeUsers) List(ctx context.Context, q models.ListQuery) (models.Page[models.UserListItem], error) {
	return models.NewPage[models.UserListItem](nil, 0, q.Per), nil
}

func (f fakeUsers) SetBanned(ctx context.Context, in validation.BanToggleInput) (service.BanResult, error) {
	return f.res, nil
}

func TestSetPermissionAlreadySet(t *testing.T) {
	h := NewUserHandler(fakeUsers{res: service.BanResult{Message: "user is already banned"}})
	rec, res := do(t, http.HandlerFunc(h.SetPermission), http.MethodPatch, "/users/permission", `{"id":"x","is_banned":true}`)
	if rec.Code != http.StatusOK || !res.Status || res.Message != "user is already banned" {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
}

func TestUserListEmptyItems(t *testing.T) {
	h := NewUserHandler(fakeUsers{})
	_, res := do(t, http.HandlerFunc(h.List), http.MethodGet, "/users", "")
	if !strings.Contains(string(res.Data), `"items":[]`) {
		t.Fatalf("data = %s", res.Data)
	}
}

type fakeAuth struct {
	admin models.User
}

func (f fakeAuth) Login(ctx context.Context, in validation.LoginInput) (service.LoginResult, error) {
	return service.LoginResult{Token: "t"}, nil
}

func (f fakeAuth) VerifyAdmin(ctx context.Context, id uuid.UUID) (models.User, error) {
	if id != f.admin.ID {
		return models.User{}, apperr.Forbidden(validation.MsgPermissionDenied)
	}
	return f.admin, nil
}

func TestVerify(t *testing.T) {
	admin := models.User{ID: uuid.New(), Name: "Root"}
	h := NewAuthHandler(fakeAuth{admin: admin})

	rec, _ := do(t, http.HandlerFunc(h.Verify), http.MethodGet, "/verify", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no user: got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req = req.WithContext(auth.WithUser(req.Context(), admin))
	rec = httptest.NewRecorder()
	h.Verify(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: got %d %s", rec.Code, rec.Body)
	}
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	rec, res := do(t, Health(pingFunc(func(context.Context) error { return nil })), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK || !res.Status {
		t.Fatalf("got %d %+v", rec.Code, res)
	}

	rec, res = do(t, Health(pingFunc(func(context.Context) error { return errors.New("refused") })), http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable || res.Status || res.Message != "database unavailable" {
		t.Fatalf("got %d %+v", rec.Code, res)
	}
}
