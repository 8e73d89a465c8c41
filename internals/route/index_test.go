package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"academyku_backend/internals/configs"
	"academyku_backend/internals/constants"
	userModel "academyku_backend/internals/features/users/model"
	userService "academyku_backend/internals/features/users/service"
	helper "academyku_backend/internals/helpers"
)

const testSecret = "route-wiring-test-secret"

// newTestApp wires the full route tree the way main does, minus the DB.
// Every request below is answered by middleware or by handler-side
// parsing, before any query would run.
func newTestApp() *fiber.App {
	configs.JWTSecret = testSecret
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	SetupRoutes(app, nil)
	return app
}

func accessToken(t *testing.T, role string) string {
	t.Helper()
	u := &userModel.UserModel{UserID: uuid.New(), UserName: "Wiring Test", UserRole: role}
	access, _, err := userService.GenerateTokenPair(u, testSecret, testSecret, time.Now())
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return access
}

func jsonReq(method, target, body, token string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	return req
}

func doReq(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return res
}

// Login, refresh and the gateway webhook must answer without a bearer
// token: they are how tokens are obtained, and the gateway cannot send
// one. A 401 here would mean the auth middleware swallowed them.
func TestPublicEndpointsNeedNoToken(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"login", fiber.MethodPost, "/api/auth/login", `{`},
		{"refresh", fiber.MethodPost, "/api/auth/refresh", `{`},
		{"webhook", fiber.MethodPost, "/api/gateway/webhook", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := doReq(t, app, jsonReq(tc.method, tc.path, tc.body, ""))
			if res.StatusCode == fiber.StatusUnauthorized {
				t.Fatalf("%s %s: got 401, endpoint is not reachable without a token", tc.method, tc.path)
			}
			if res.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("%s %s: status = %d, want 400 from the handler's own parsing", tc.method, tc.path, res.StatusCode)
			}
		})
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	app := newTestApp()

	paths := []string{
		"/api/auth/me",
		"/api/students",
		"/api/batches",
		"/api/courses",
		"/api/fee-structures",
		"/api/discounts",
		"/api/payments",
		"/api/payments/emi",
		"/api/reports/fees-summary",
	}
	for _, p := range paths {
		res := doReq(t, app, jsonReq(fiber.MethodGet, p, "", ""))
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", p, res.StatusCode)
		}
	}
}

// Staff must be able to reach ordinary endpoints; only the lookup
// creates are admin-gated.
func TestStaffReachesNonAdminEndpoints(t *testing.T) {
	app := newTestApp()
	staff := accessToken(t, constants.RoleStaff)

	body := `{"total_amount":1200,"deposit_amount":200,"installment_months":4}`
	res := doReq(t, app, jsonReq(fiber.MethodPost, "/api/payments/plan-preview", body, staff))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("staff plan-preview: status = %d, want 200", res.StatusCode)
	}
}

func TestLookupCreatesAreAdminOnly(t *testing.T) {
	app := newTestApp()
	staff := accessToken(t, constants.RoleStaff)
	admin := accessToken(t, constants.RoleAdmin)

	for _, p := range []string{"/api/courses", "/api/universities", "/api/nationalities"} {
		res := doReq(t, app, jsonReq(fiber.MethodPost, p, `{}`, staff))
		if res.StatusCode != fiber.StatusForbidden {
			t.Errorf("staff POST %s: status = %d, want 403", p, res.StatusCode)
		}
	}

	// admin passes the gate; the malformed body stops the handler at
	// parsing, proving the request got through
	res := doReq(t, app, jsonReq(fiber.MethodPost, "/api/courses", `{`, admin))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("admin POST /api/courses: status = %d, want 400", res.StatusCode)
	}
}

// A malformed :id must come back as a plain 400 on every payment
// endpoint that resolves one.
func TestPaymentEndpointsRejectMalformedID(t *testing.T) {
	app := newTestApp()
	staff := accessToken(t, constants.RoleStaff)

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/payments/not-a-uuid"},
		{fiber.MethodPut, "/api/payments/not-a-uuid"},
		{fiber.MethodPatch, "/api/payments/not-a-uuid/status"},
		{fiber.MethodDelete, "/api/payments/not-a-uuid"},
		{fiber.MethodPost, "/api/payments/not-a-uuid/discount"},
		{fiber.MethodDelete, "/api/payments/not-a-uuid/discount"},
	}
	for _, tc := range cases {
		res := doReq(t, app, jsonReq(tc.method, tc.path, `{}`, staff))
		if res.StatusCode != fiber.StatusBadRequest {
			t.Errorf("%s %s: status = %d, want 400", tc.method, tc.path, res.StatusCode)
		}
	}
}

// /payments/emi must be registered before /payments/:id, or the id
// route captures "emi" and the grouped list is unreachable.
func TestEMIListRegisteredBeforePaymentByID(t *testing.T) {
	app := newTestApp()

	emiIdx, idIdx := -1, -1
	for i, r := range app.GetRoutes(true) {
		if r.Method != fiber.MethodGet {
			continue
		}
		if emiIdx == -1 && strings.HasPrefix(r.Path, "/api/payments/emi") {
			emiIdx = i
		}
		if idIdx == -1 && r.Path == "/api/payments/:id" {
			idIdx = i
		}
	}
	if emiIdx == -1 {
		t.Fatal("GET /api/payments/emi is not registered")
	}
	if idIdx == -1 {
		t.Fatal("GET /api/payments/:id is not registered")
	}
	if emiIdx > idIdx {
		t.Fatalf("GET /api/payments/emi (index %d) is registered after /api/payments/:id (index %d)", emiIdx, idIdx)
	}
}
