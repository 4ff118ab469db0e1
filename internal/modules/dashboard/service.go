package dashboard

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"servicehub/internal/domain"
)

type Service struct {
	api MarketplaceAPI
	log *zap.Logger
}

func NewService(api MarketplaceAPI, log *zap.Logger) *Service {
	return &Service{api: api, log: log}
}

// SeekerDashboard holds everything the seeker view renders from.
type SeekerDashboard struct {
	Services   []domain.Service
	Bookings   []domain.Booking
	Categories []domain.Category
	Complaints []domain.Complaint
}

type ProviderDashboard struct {
	MyServices []domain.Service
	Bookings   []domain.Booking
	Categories []domain.Category
}

type AdminDashboard struct {
	Users      []domain.User
	Services   []domain.Service
	Bookings   []domain.Booking
	Categories []domain.Category
	Complaints []domain.Complaint
}

// LoadSeeker issues the seeker's fetches in parallel and joins them; the
// dashboard stays loading until all settle. A complaints failure is
// tolerated (empty list) — the rest of the dashboard is still useful.
func (s *Service) LoadSeeker(ctx context.Context) (*SeekerDashboard, error) {
	var d SeekerDashboard
	err := parallel(
		func() (err error) { d.Services, err = s.api.ListServices(ctx); return },
		func() (err error) { d.Bookings, err = s.api.ListBookings(ctx); return },
		func() (err error) { d.Categories, err = s.api.ListCategories(ctx); return },
		func() error {
			complaints, err := s.api.ListComplaints(ctx)
			if err != nil {
				s.log.Warn("complaints load failed, continuing without", zap.Error(err))
				return nil
			}
			d.Complaints = complaints
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	SortBookingsNewestFirst(d.Bookings)
	return &d, nil
}

func (s *Service) LoadProvider(ctx context.Context) (*ProviderDashboard, error) {
	var d ProviderDashboard
	err := parallel(
		func() (err error) { d.MyServices, err = s.api.ListMyServices(ctx); return },
		func() (err error) { d.Bookings, err = s.api.ListBookings(ctx); return },
		func() (err error) { d.Categories, err = s.api.ListCategories(ctx); return },
	)
	if err != nil {
		return nil, err
	}
	SortBookingsNewestFirst(d.Bookings)
	return &d, nil
}

func (s *Service) LoadAdmin(ctx context.Context) (*AdminDashboard, error) {
	var d AdminDashboard
	err := parallel(
		func() (err error) { d.Users, err = s.api.ListUsers(ctx); return },
		func() (err error) { d.Services, err = s.api.ListServices(ctx); return },
		func() (err error) { d.Bookings, err = s.api.ListBookings(ctx); return },
		func() (err error) { d.Categories, err = s.api.ListCategories(ctx); return },
		func() (err error) { d.Complaints, err = s.api.ListComplaints(ctx); return },
	)
	if err != nil {
		return nil, err
	}
	SortBookingsNewestFirst(d.Bookings)
	return &d, nil
}

// parallel runs the fetches concurrently and returns the first error, if
// any. Every goroutine finishes before it returns, so a partial failure
// never leaves a write racing the caller.
func parallel(fns ...func() error) error {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	for _, fn := range fns {
		wg.Add(1)
		go func(fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				once.Do(func() { firstErr = err })
			}
		}(fn)
	}
	wg.Wait()
	return firstErr
}

// SortBookingsNewestFirst orders the bookings pane by creation time, most
// recent on top.
func SortBookingsNewestFirst(bookings []domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}

// PrependBooking is the SUBMITTED side effect: the fresh PENDING booking
// goes to the top of the caller's collection.
func PrependBooking(bookings []domain.Booking, b domain.Booking) []domain.Booking {
	return append([]domain.Booking{b}, bookings...)
}

// ApplyBooking mirrors a server-confirmed update into the local collection.
// Unknown ids are ignored (the entity may have been removed server-side).
func ApplyBooking(bookings []domain.Booking, updated domain.Booking) []domain.Booking {
	for i := range bookings {
		if bookings[i].ID == updated.ID {
			bookings[i] = updated
			break
		}
	}
	return bookings
}
