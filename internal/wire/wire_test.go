package wire_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"wedding-planner/internal/dto/response"
	"wedding-planner/internal/testutil"
	"wedding-planner/internal/wire"
	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

type testApp struct {
	router http.Handler
	store  *testutil.MemStore
	issuer *auth.TokenIssuer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := testutil.NewMemStore()
	issuer := auth.NewTokenIssuer("router-secret", 24*time.Hour)
	config := &utils.Config{
		App:      utils.AppConfig{CORSOrigins: []string{"http://localhost:5173"}},
		Security: utils.SecurityConfig{BcryptCost: 4},
	}

	app := wire.Wiring(store.Repository(), issuer, config, zap.NewNop())

	created, err := app.Service.Seed.SeedAdmin(context.Background(), "Administrator", adminEmail, adminPassword)
	require.NoError(t, err)
	require.True(t, created)

	return &testApp{router: app.Router, store: store, issuer: issuer}
}

func (a *testApp) register(t *testing.T, name, email string) string {
	t.Helper()

	rec := testutil.MakeRequest(t, a.router, http.MethodPost, "/api/auth/register", map[string]string{
		"name": name, "email": email, "password": "secret1",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusCreated)

	return testutil.DecodeJSON[response.AuthResponse](t, rec).Token
}

func (a *testApp) adminToken(t *testing.T) string {
	t.Helper()

	rec := testutil.MakeRequest(t, a.router, http.MethodPost, "/api/admin/login", map[string]string{
		"email": adminEmail, "password": adminPassword,
	}, "")
	testutil.AssertStatus(t, rec, http.StatusOK)

	resp := testutil.DecodeJSON[response.AdminAuthResponse](t, rec)
	assert.Equal(t, "admin", resp.Admin.Role)
	return resp.Token
}

func (a *testApp) createEvent(t *testing.T, token string) string {
	t.Helper()

	rec := testutil.MakeRequest(t, a.router, http.MethodPost, "/api/events", map[string]string{
		"event_name": "Our Wedding", "event_date": "2027-06-12", "event_time": "15:30",
	}, token)
	testutil.AssertStatus(t, rec, http.StatusCreated)

	return testutil.DecodeJSON[response.EventCreated](t, rec).EventID
}

func (a *testApp) createVendor(t *testing.T, adminToken, name, category string) string {
	t.Helper()

	rec := testutil.MakeRequest(t, a.router, http.MethodPost, "/api/admin/vendors", map[string]any{
		"name": name, "category": category, "rating": 4.5,
	}, adminToken)
	testutil.AssertStatus(t, rec, http.StatusCreated)

	return testutil.DecodeJSON[response.VendorCreated](t, rec).VendorID
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/health", nil, "")
	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRegisterTwiceIsRejected(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Alex", "email": "alex@example.com", "password": "secret1",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "User already exists", testutil.DecodeJSON[utils.ErrorBody](t, rec).Error)
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "alex@example.com",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	body := testutil.DecodeJSON[utils.ErrorBody](t, rec)
	assert.Equal(t, "All fields are required", body.Error)
	assert.Contains(t, body.Fields, "name")
}

func TestRegisterAcceptsAnyNonEmptyCredentials(t *testing.T) {
	app := newTestApp(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Alex", "email": "alex", "password": "abc",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusCreated)
}

func TestMalformedBody(t *testing.T) {
	app := newTestApp(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/login", "not an object", "")
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestLoginTokenAuthorizesProfile(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alex@example.com", "password": "secret1",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusOK)
	login := testutil.DecodeJSON[response.AuthResponse](t, rec)
	assert.Equal(t, "Login successful", login.Message)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/user/profile", nil, login.Token)
	testutil.AssertStatus(t, rec, http.StatusOK)

	profile := testutil.DecodeJSON[response.ProfileResponse](t, rec)
	assert.Equal(t, login.User.ID, profile.ID)
	assert.Equal(t, "alex@example.com", profile.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestWrongPasswordIsUnauthorized(t *testing.T) {
	app := newTestApp(t)
	app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "alex@example.com", "password": "wrong",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "Invalid credentials", testutil.DecodeJSON[utils.ErrorBody](t, rec).Error)
}

func TestExpiredTokenIsForbidden(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alex", "alex@example.com")

	p, err := app.issuer.Verify(token)
	require.NoError(t, err)

	// Re-sign for the same couple as if the token had been issued two days ago.
	stale := app.issuer.WithClock(func() time.Time { return time.Now().Add(-48 * time.Hour) })
	expired, _, err := stale.IssueUser(p.Subject(), "alex@example.com")
	require.NoError(t, err)

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/api/user/profile", nil, expired)
	testutil.AssertStatus(t, rec, http.StatusForbidden)
	assert.Equal(t, "Invalid token", testutil.DecodeJSON[utils.ErrorBody](t, rec).Error)
}

func TestAccessControl(t *testing.T) {
	app := newTestApp(t)
	userToken := app.register(t, "Alex", "alex@example.com")
	adminToken := app.adminToken(t)

	tests := []struct {
		name    string
		method  string
		path    string
		token   string
		want    int
		message string
	}{
		{"no token on user route", http.MethodGet, "/api/events", "", http.StatusUnauthorized, "Access token required"},
		{"garbage token", http.MethodGet, "/api/events", "not-a-jwt", http.StatusForbidden, "Invalid token"},
		{"admin token on user route", http.MethodGet, "/api/events", adminToken, http.StatusForbidden, "Invalid token"},
		{"no token on admin route", http.MethodGet, "/api/admin/stats", "", http.StatusUnauthorized, "Access token required"},
		{"user token on admin route", http.MethodGet, "/api/admin/stats", userToken, http.StatusForbidden, "Admin access required"},
		{"admin token on admin route", http.MethodGet, "/api/admin/stats", adminToken, http.StatusOK, ""},
		{"public vendor listing", http.MethodGet, "/api/vendors", "", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testutil.MakeRequest(t, app.router, tt.method, tt.path, nil, tt.token)
			testutil.AssertStatus(t, rec, tt.want)
			if tt.message != "" {
				assert.Equal(t, tt.message, testutil.DecodeJSON[utils.ErrorBody](t, rec).Error)
			}
		})
	}
}

func TestEventsAreOwnerScoped(t *testing.T) {
	app := newTestApp(t)
	owner := app.register(t, "Alex", "alex@example.com")
	other := app.register(t, "Sam", "sam@example.com")
	eventID := app.createEvent(t, owner)
	path := "/api/events/" + eventID

	update := map[string]string{"event_name": "Hijacked", "event_date": "2027-07-01"}

	testutil.AssertStatus(t, testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, other), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.MakeRequest(t, app.router, http.MethodPut, path, update, other), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.MakeRequest(t, app.router, http.MethodPut, path+"/cancel", nil, other), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.MakeRequest(t, app.router, http.MethodDelete, path, nil, other), http.StatusNotFound)

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/api/events", nil, other)
	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Empty(t, testutil.DecodeJSON[[]response.EventResponse](t, rec))

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, owner)
	testutil.AssertStatus(t, rec, http.StatusOK)
	event := testutil.DecodeJSON[response.EventResponse](t, rec)
	assert.Equal(t, "Our Wedding", event.EventName)
	assert.Equal(t, "2027-06-12", event.EventDate)
	assert.Equal(t, "active", event.Status)
}

func TestEventUpdateAndDelete(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alex", "alex@example.com")
	path := "/api/events/" + app.createEvent(t, token)

	rec := testutil.MakeRequest(t, app.router, http.MethodPut, path, map[string]string{
		"event_name": "Reception", "event_date": "2027-06-13", "location": "Garden Hall",
	}, token)
	testutil.AssertStatus(t, rec, http.StatusOK)
	assert.Equal(t, "Event updated successfully", testutil.DecodeJSON[utils.MessageBody](t, rec).Message)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, token)
	event := testutil.DecodeJSON[response.EventResponse](t, rec)
	assert.Equal(t, "Reception", event.EventName)
	require.NotNil(t, event.Location)
	assert.Equal(t, "Garden Hall", *event.Location)

	rec = testutil.MakeRequest(t, app.router, http.MethodDelete, path, nil, token)
	testutil.AssertStatus(t, rec, http.StatusOK)
	testutil.AssertStatus(t, testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, token), http.StatusNotFound)
}

func TestEventBlankOptionalFieldsAreAccepted(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/events", map[string]string{
		"event_name": "Our Wedding", "event_date": "2027-06-12",
		"event_time": "", "location": "", "description": "",
	}, token)
	testutil.AssertStatus(t, rec, http.StatusCreated)
	path := "/api/events/" + testutil.DecodeJSON[response.EventCreated](t, rec).EventID

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, token)
	event := testutil.DecodeJSON[response.EventResponse](t, rec)
	assert.Nil(t, event.EventTime)
	assert.Nil(t, event.Location)
	assert.Nil(t, event.Description)

	rec = testutil.MakeRequest(t, app.router, http.MethodPut, path, map[string]string{
		"event_name": "Our Wedding", "event_date": "2027-06-12", "event_time": "",
	}, token)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = testutil.MakeRequest(t, app.router, http.MethodPost, "/api/events", map[string]string{
		"event_name": "Our Wedding", "event_date": "2027-06-12", "event_time": "3pm",
	}, token)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, testutil.DecodeJSON[utils.ErrorBody](t, rec).Fields, "event_time")
}

func TestApplicationBlankOptionalFieldsAreAccepted(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/vendor-application", map[string]any{
		"name": "Dana", "email": "dana@blooms.example", "category": "Florist", "business_name": "Dana's Blooms",
		"phone": "", "description": "", "portfolio_url": "",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusCreated)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/admin/vendor-applications", nil, admin)
	apps := testutil.DecodeJSON[[]response.ApplicationResponse](t, rec)
	require.Len(t, apps, 1)
	assert.Nil(t, apps[0].Phone)
	assert.Nil(t, apps[0].Description)
	assert.Nil(t, apps[0].PortfolioURL)

	rec = testutil.MakeRequest(t, app.router, http.MethodPost, "/api/vendor-application", map[string]any{
		"name": "Dana", "email": "dana@blooms.example", "category": "Florist", "business_name": "Dana's Blooms",
		"portfolio_url": "not a url",
	}, "")
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestMalformedEventIDIsBadRequest(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/api/events/42", nil, token)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "Invalid id", testutil.DecodeJSON[utils.ErrorBody](t, rec).Error)
}

func TestCancelIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	token := app.register(t, "Alex", "alex@example.com")
	path := "/api/events/" + app.createEvent(t, token)

	for range 2 {
		rec := testutil.MakeRequest(t, app.router, http.MethodPut, path+"/cancel", nil, token)
		testutil.AssertStatus(t, rec, http.StatusOK)
		assert.Equal(t, "Event cancelled successfully", testutil.DecodeJSON[utils.MessageBody](t, rec).Message)
	}

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, path, nil, token)
	assert.Equal(t, "cancelled", testutil.DecodeJSON[response.EventResponse](t, rec).Status)
}

func TestApproveCreatesExactlyOneVendor(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/vendor-application", map[string]any{
		"name": "Dana", "email": "dana@blooms.example", "phone": "555-0101",
		"category": "Florist", "business_name": "Dana's Blooms", "experience_years": 6,
	}, "")
	testutil.AssertStatus(t, rec, http.StatusCreated)
	appPath := "/api/admin/vendor-applications/" + testutil.DecodeJSON[response.ApplicationCreated](t, rec).ApplicationID

	// An empty body is accepted on approve.
	rec = testutil.MakeRequest(t, app.router, http.MethodPost, appPath+"/approve", nil, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)
	created := testutil.DecodeJSON[response.VendorCreated](t, rec)
	assert.Equal(t, "Application approved and vendor created successfully", created.Message)

	rec = testutil.MakeRequest(t, app.router, http.MethodPost, appPath+"/approve", nil, admin)
	testutil.AssertStatus(t, rec, http.StatusConflict)

	rec = testutil.MakeRequest(t, app.router, http.MethodPatch, appPath, map[string]string{"status": "rejected"}, admin)
	testutil.AssertStatus(t, rec, http.StatusConflict)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/vendors", nil, "")
	vendors := testutil.DecodeJSON[[]response.VendorResponse](t, rec)
	require.Len(t, vendors, 1)
	assert.Equal(t, created.VendorID, vendors[0].ID)
	assert.Equal(t, "Dana's Blooms", vendors[0].Name)
	assert.Equal(t, "Florist", vendors[0].Category)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/admin/vendor-applications", nil, admin)
	apps := testutil.DecodeJSON[[]response.ApplicationResponse](t, rec)
	require.Len(t, apps, 1)
	assert.Equal(t, "approved", apps[0].Status)
}

func TestApplicationPatchCannotApprove(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/vendor-application", map[string]any{
		"name": "Dana", "email": "dana@blooms.example", "category": "Florist", "business_name": "Dana's Blooms",
	}, "")
	appPath := "/api/admin/vendor-applications/" + testutil.DecodeJSON[response.ApplicationCreated](t, rec).ApplicationID

	rec = testutil.MakeRequest(t, app.router, http.MethodPatch, appPath, map[string]string{"status": "approved"}, admin)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	rec = testutil.MakeRequest(t, app.router, http.MethodPatch, appPath, map[string]string{
		"status": "rejected", "admin_notes": "Portfolio missing",
	}, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = testutil.MakeRequest(t, app.router, http.MethodPost, "/api/admin/vendor-applications/"+uuid.NewString()+"/approve", nil, admin)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestStatsCountsOnlyUnreadMessages(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)

	var ids []string
	for range 5 {
		rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/contact", map[string]string{
			"name": "Guest", "email": "guest@example.com", "message": "Do you cover destination weddings?",
		}, "")
		testutil.AssertStatus(t, rec, http.StatusCreated)
		ids = append(ids, testutil.DecodeJSON[response.MessageCreated](t, rec).MessageID)
	}
	for _, id := range ids[:2] {
		rec := testutil.MakeRequest(t, app.router, http.MethodPatch, "/api/admin/messages/"+id, map[string]string{"status": "read"}, admin)
		testutil.AssertStatus(t, rec, http.StatusOK)
	}

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/api/admin/stats", nil, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)
	stats := testutil.DecodeJSON[response.StatsResponse](t, rec)
	assert.EqualValues(t, 3, stats.UnreadMessages)
	assert.Zero(t, stats.TotalUsers)
	assert.Contains(t, rec.Body.String(), `"unreadMessages":3`)
}

func TestDeletedVendorDropsOutOfBookingListing(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	user := app.register(t, "Alex", "alex@example.com")

	keep := app.createVendor(t, admin, "Golden Lens", "Photography")
	gone := app.createVendor(t, admin, "Sweet Tiers", "Catering")

	for _, vendorID := range []string{keep, gone} {
		rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/bookings", map[string]string{
			"vendor_id": vendorID, "booking_date": "2027-06-12",
		}, user)
		testutil.AssertStatus(t, rec, http.StatusCreated)
	}

	rec := testutil.MakeRequest(t, app.router, http.MethodDelete, "/api/admin/vendors/"+gone, nil, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/bookings", nil, user)
	testutil.AssertStatus(t, rec, http.StatusOK)
	bookings := testutil.DecodeJSON[[]response.BookingResponse](t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Golden Lens", bookings[0].VendorName)
	assert.Equal(t, "pending", bookings[0].Status)

	assert.Equal(t, 2, app.store.BookingRows())
}

func TestBookingForUnknownVendor(t *testing.T) {
	app := newTestApp(t)
	user := app.register(t, "Alex", "alex@example.com")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/bookings", map[string]string{
		"vendor_id": uuid.NewString(), "booking_date": "2027-06-12",
	}, user)
	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestAdminBookingStatus(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	user := app.register(t, "Alex", "alex@example.com")
	vendorID := app.createVendor(t, admin, "Golden Lens", "Photography")

	rec := testutil.MakeRequest(t, app.router, http.MethodPost, "/api/bookings", map[string]string{
		"vendor_id": vendorID, "booking_date": "2027-06-12",
	}, user)
	bookingID := testutil.DecodeJSON[response.BookingCreated](t, rec).BookingID

	rec = testutil.MakeRequest(t, app.router, http.MethodPatch, "/api/admin/bookings/"+bookingID, map[string]string{"status": "approved"}, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)

	rec = testutil.MakeRequest(t, app.router, http.MethodPatch, "/api/admin/bookings/"+bookingID, map[string]string{"status": "confirmed"}, admin)
	testutil.AssertStatus(t, rec, http.StatusBadRequest)

	rec = testutil.MakeRequest(t, app.router, http.MethodGet, "/api/admin/bookings", nil, admin)
	testutil.AssertStatus(t, rec, http.StatusOK)
	bookings := testutil.DecodeJSON[[]response.BookingResponse](t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, "approved", bookings[0].Status)
	assert.Equal(t, "Alex", bookings[0].UserName)
	assert.Equal(t, "alex@example.com", bookings[0].UserEmail)
}

func TestVendorCategoryFilter(t *testing.T) {
	app := newTestApp(t)
	admin := app.adminToken(t)
	app.createVendor(t, admin, "Golden Lens", "Photography")
	app.createVendor(t, admin, "Sweet Tiers", "Catering")

	rec := testutil.MakeRequest(t, app.router, http.MethodGet, "/api/vendors?category=Catering", nil, "")
	testutil.AssertStatus(t, rec, http.StatusOK)
	vendors := testutil.DecodeJSON[[]response.VendorResponse](t, rec)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Sweet Tiers", vendors[0].Name)
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req, err := http.NewRequest(http.MethodOptions, "/api/events", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := testutil.Serve(app.router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotContains(t, rec.Body.String(), "Access token required")
}
