package dashboard

import (
	"context"

	"servicehub/internal/domain"
)

// MarketplaceAPI is the read side of the backend client the dashboards load
// from. The server scopes each list by the caller's role.
type MarketplaceAPI interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListMyServices(ctx context.Context) ([]domain.Service, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
