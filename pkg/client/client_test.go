package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/testutil"
	"wedding-planner/internal/wire"
	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/client"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := testutil.NewMemStore()
	config := &utils.Config{Security: utils.SecurityConfig{BcryptCost: 4}}
	app := wire.Wiring(store.Repository(), auth.NewTokenIssuer("client-secret", time.Hour), config, zap.NewNop())

	_, err := app.Service.Seed.SeedAdmin(context.Background(), "Administrator", "admin@example.com", "admin123")
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func strPtr(s string) *string { return &s }

func TestClient_CoupleFlow(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL + "/api")
	ctx := context.Background()

	reg, err := c.Auth.Register(ctx, request.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", reg.Message)
	assert.True(t, c.Session().IsAuthenticated())
	assert.Equal(t, "alex@example.com", c.Session().State().User.Email)

	profile, err := c.Auth.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, profile.ID)

	created, err := c.Events.Create(ctx, request.EventRequest{EventName: "Our Wedding", EventDate: "2027-06-12", Location: strPtr("Garden Hall")})
	require.NoError(t, err)
	eventID := uuid.MustParse(created.EventID)

	msg, err := c.Events.Cancel(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, "Event cancelled successfully", msg.Message)

	event, err := c.Events.Get(ctx, eventID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", event.Status)

	events, err := c.Events.List(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = c.Events.Delete(ctx, eventID)
	require.NoError(t, err)

	require.NoError(t, c.Auth.Logout())
	assert.False(t, c.Session().IsAuthenticated())

	_, err = c.Auth.Profile(ctx)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Access token required", apiErr.Error())
}

func TestClient_AdminFlowUsesAdminToken(t *testing.T) {
	srv := newServer(t)
	c := client.New(srv.URL + "/api")
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, request.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "secret1"})
	require.NoError(t, err)

	// Only the couple is logged in, so admin calls go out without a token.
	_, err = c.Admin.Stats(ctx)
	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	login, err := c.Admin.Login(ctx, request.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", login.Admin.Role)
	assert.True(t, c.Session().IsAdminAuthenticated())
	assert.True(t, c.Session().IsAuthenticated())

	app, err := c.Applications.Submit(ctx, request.VendorApplicationRequest{
		Name: "Dana", Email: "dana@blooms.example", Category: "Florist", BusinessName: "Dana's Blooms",
	})
	require.NoError(t, err)

	vendor, err := c.Admin.ApproveApplication(ctx, uuid.MustParse(app.ApplicationID), strPtr("Welcome aboard"))
	require.NoError(t, err)
	assert.NotEmpty(t, vendor.VendorID)

	_, err = c.Admin.ApproveApplication(ctx, uuid.MustParse(app.ApplicationID), nil)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)

	vendors, err := c.Vendors.List(ctx, "Florist")
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, "Dana's Blooms", vendors[0].Name)

	_, err = c.Bookings.Create(ctx, request.CreateBookingRequest{VendorID: vendor.VendorID, BookingDate: "2027-06-12"})
	require.NoError(t, err)

	bookings, err := c.Admin.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	_, err = c.Admin.UpdateBookingStatus(ctx, uuid.MustParse(bookings[0].ID), "approved")
	require.NoError(t, err)

	mine, err := c.Bookings.List(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "approved", mine[0].Status)

	sent, err := c.Contact.Send(ctx, request.ContactRequest{Name: "Guest", Email: "guest@example.com", Message: "Hello"})
	require.NoError(t, err)
	_, err = c.Admin.UpdateMessageStatus(ctx, uuid.MustParse(sent.MessageID), "replied")
	require.NoError(t, err)

	stats, err := c.Admin.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalBookings)
	assert.EqualValues(t, 1, stats.TotalVendors)
	assert.Zero(t, stats.UnreadMessages)
	assert.Zero(t, stats.PendingApplications)

	require.NoError(t, c.Admin.Logout())
	assert.False(t, c.Session().IsAdminAuthenticated())
	assert.True(t, c.Session().IsAuthenticated())
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL).Vendors.List(context.Background(), "")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 502", apiErr.Error())
}

func TestClient_TransportErrorIsNotAPIError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url).Vendors.List(context.Background(), "")
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestSession_ObserversAndPersistence(t *testing.T) {
	srv := newServer(t)
	path := filepath.Join(t.TempDir(), "session.json")
	session := client.NewSession(client.NewFileStore(path))
	c := client.New(srv.URL+"/api", client.WithSession(session))
	ctx := context.Background()

	var seen []client.AuthEventKind
	unsubscribe := session.Subscribe(func(ev client.AuthEvent) {
		seen = append(seen, ev.Kind)
	})

	_, err := c.Auth.Register(ctx, request.RegisterRequest{Name: "Alex", Email: "alex@example.com", Password: "secret1"})
	require.NoError(t, err)
	_, err = c.Admin.Login(ctx, request.LoginRequest{Email: "admin@example.com", Password: "admin123"})
	require.NoError(t, err)

	restored, err := client.OpenSession(client.NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, session.UserToken(), restored.UserToken())
	assert.Equal(t, session.AdminToken(), restored.AdminToken())
	require.NotNil(t, restored.State().AdminUser)
	assert.Equal(t, "admin@example.com", restored.State().AdminUser.Email)

	// A restored session authenticates without logging in again.
	profile, err := client.New(srv.URL+"/api", client.WithSession(restored)).Auth.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", profile.Email)

	require.NoError(t, c.Auth.Logout())
	unsubscribe()
	require.NoError(t, c.Admin.Logout())

	assert.Equal(t, []client.AuthEventKind{client.UserLoggedIn, client.AdminLoggedIn, client.UserLoggedOut}, seen)

	empty, err := client.OpenSession(client.NewFileStore(path))
	require.NoError(t, err)
	assert.Equal(t, client.SessionState{}, empty.State())
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	state, err := client.NewFileStore(filepath.Join(t.TempDir(), "nope.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, state.AuthToken)
}
