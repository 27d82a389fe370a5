package client

import (
	"context"
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
)

// AdminAPI authenticates with the admin token slot only.
type AdminAPI struct{ c *Client }

func (a *AdminAPI) Login(ctx context.Context, req request.LoginRequest) (*response.AdminAuthResponse, error) {
	var out response.AdminAuthResponse
	if err := a.c.do(ctx, http.MethodPost, "/admin/login", noToken, req, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := a.c.session.setAdmin(out.Token, out.Admin); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (a *AdminAPI) Logout() error {
	return a.c.session.clearAdmin()
}

func (a *AdminAPI) Stats(ctx context.Context) (*response.StatsResponse, error) {
	var out response.StatsResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/stats", adminToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminAPI) Bookings(ctx context.Context) ([]response.BookingResponse, error) {
	var out []response.BookingResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/bookings", adminToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*utils.MessageBody, error) {
	return a.c.message(ctx, http.MethodPatch, "/admin/bookings/"+id.String(), adminToken,
		request.BookingStatusRequest{Status: status})
}

func (a *AdminAPI) Vendors(ctx context.Context) ([]response.VendorResponse, error) {
	var out []response.VendorResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/vendors", adminToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) CreateVendor(ctx context.Context, req request.VendorRequest) (*response.VendorCreated, error) {
	var out response.VendorCreated
	if err := a.c.do(ctx, http.MethodPost, "/admin/vendors", adminToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AdminAPI) UpdateVendor(ctx context.Context, id uuid.UUID, req request.VendorRequest) (*utils.MessageBody, error) {
	return a.c.message(ctx, http.MethodPatch, "/admin/vendors/"+id.String(), adminToken, req)
}

func (a *AdminAPI) DeleteVendor(ctx context.Context, id uuid.UUID) (*utils.MessageBody, error) {
	return a.c.message(ctx, http.MethodDelete, "/admin/vendors/"+id.String(), adminToken, nil)
}

func (a *AdminAPI) Messages(ctx context.Context) ([]response.MessageResponse, error) {
	var out []response.MessageResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/messages", adminToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status string) (*utils.MessageBody, error) {
	return a.c.message(ctx, http.MethodPatch, "/admin/messages/"+id.String(), adminToken,
		request.MessageStatusRequest{Status: status})
}

func (a *AdminAPI) Applications(ctx context.Context) ([]response.ApplicationResponse, error) {
	var out []response.ApplicationResponse
	if err := a.c.do(ctx, http.MethodGet, "/admin/vendor-applications", adminToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AdminAPI) UpdateApplicationStatus(ctx context.Context, id uuid.UUID, status string, notes *string) (*utils.MessageBody, error) {
	return a.c.message(ctx, http.MethodPatch, "/admin/vendor-applications/"+id.String(), adminToken,
		request.ApplicationStatusRequest{Status: status, AdminNotes: notes})
}

func (a *AdminAPI) ApproveApplication(ctx context.Context, id uuid.UUID, notes *string) (*response.VendorCreated, error) {
	var out response.VendorCreated
	err := a.c.do(ctx, http.MethodPost, "/admin/vendor-applications/"+id.String()+"/approve", adminToken,
		request.ApproveApplicationRequest{AdminNotes: notes}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
