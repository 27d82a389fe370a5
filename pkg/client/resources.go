package client

import (
	"context"
	"net/http"
	"net/url"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
)

// ==================== events ====================

type EventsAPI struct{ c *Client }

func (e *EventsAPI) Create(ctx context.Context, req request.EventRequest) (*response.EventCreated, error) {
	var out response.EventCreated
	if err := e.c.do(ctx, http.MethodPost, "/events", userToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EventsAPI) List(ctx context.Context) ([]response.EventResponse, error) {
	var out []response.EventResponse
	if err := e.c.do(ctx, http.MethodGet, "/events", userToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EventsAPI) Get(ctx context.Context, id uuid.UUID) (*response.EventResponse, error) {
	var out response.EventResponse
	if err := e.c.do(ctx, http.MethodGet, "/events/"+id.String(), userToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EventsAPI) Update(ctx context.Context, id uuid.UUID, req request.EventRequest) (*utils.MessageBody, error) {
	return e.c.message(ctx, http.MethodPut, "/events/"+id.String(), userToken, req)
}

func (e *EventsAPI) Delete(ctx context.Context, id uuid.UUID) (*utils.MessageBody, error) {
	return e.c.message(ctx, http.MethodDelete, "/events/"+id.String(), userToken, nil)
}

func (e *EventsAPI) Cancel(ctx context.Context, id uuid.UUID) (*utils.MessageBody, error) {
	return e.c.message(ctx, http.MethodPut, "/events/"+id.String()+"/cancel", userToken, nil)
}

// ==================== vendors ====================

type VendorsAPI struct{ c *Client }

// List returns the public directory, optionally narrowed to one category.
func (v *VendorsAPI) List(ctx context.Context, category string) ([]response.VendorResponse, error) {
	path := "/vendors"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var out []response.VendorResponse
	if err := v.c.do(ctx, http.MethodGet, path, noToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ==================== bookings ====================

type BookingsAPI struct{ c *Client }

func (b *BookingsAPI) Create(ctx context.Context, req request.CreateBookingRequest) (*response.BookingCreated, error) {
	var out response.BookingCreated
	if err := b.c.do(ctx, http.MethodPost, "/bookings", userToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *BookingsAPI) List(ctx context.Context) ([]response.BookingResponse, error) {
	var out []response.BookingResponse
	if err := b.c.do(ctx, http.MethodGet, "/bookings", userToken, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ==================== contact ====================

type ContactAPI struct{ c *Client }

func (ct *ContactAPI) Send(ctx context.Context, req request.ContactRequest) (*response.MessageCreated, error) {
	var out response.MessageCreated
	if err := ct.c.do(ctx, http.MethodPost, "/contact", noToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ==================== vendor applications ====================

type ApplicationsAPI struct{ c *Client }

func (a *ApplicationsAPI) Submit(ctx context.Context, req request.VendorApplicationRequest) (*response.ApplicationCreated, error) {
	var out response.ApplicationCreated
	if err := a.c.do(ctx, http.MethodPost, "/vendor-application", noToken, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) message(ctx context.Context, method, path string, kind tokenKind, body any) (*utils.MessageBody, error) {
	var out utils.MessageBody
	if err := c.do(ctx, method, path, kind, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
