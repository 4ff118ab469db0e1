package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"servicehub/internal/api"
	"servicehub/internal/config"
	"servicehub/internal/database"
	"servicehub/internal/domain"
	"servicehub/internal/modules/complaint"
	"servicehub/internal/modules/dashboard"
	"servicehub/internal/pkg/logger"
	"servicehub/internal/session"
)

// Headless entry point: restores the session, loads the role's dashboard
// once and, for seekers, keeps the complaint list fresh until interrupted.
// The richer flows (booking drafts, moderation) live in the internal
// packages and are driven by the UI layer on top of this module.
func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv)
	defer log.Sync()

	db, err := database.Connect(cfg.StoreDSN)
	if err != nil {
		log.Fatal("store connection failed", zap.Error(err))
	}

	store, err := session.NewStore(db)
	if err != nil {
		log.Fatal("store migration failed", zap.Error(err))
	}

	sessions, err := session.NewManager(store)
	if err != nil {
		log.Fatal("session restore failed", zap.Error(err))
	}

	// A freshly issued token from the identity provider can be handed in
	// through the environment; otherwise the persisted one is used.
	if token := os.Getenv("SESSION_TOKEN"); token != "" {
		if err := sessions.SetToken(token); err != nil {
			log.Fatal("invalid session token", zap.Error(err))
		}
	}
	if !sessions.Authenticated() {
		log.Fatal("no session: set SESSION_TOKEN to a bearer token from the identity provider")
	}

	role, err := sessions.Role()
	if err != nil {
		log.Fatal("session has no role", zap.Error(err))
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sessions, log)
	dashboards := dashboard.NewService(client, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch role {
	case domain.RoleSeeker:
		d, err := dashboards.LoadSeeker(ctx)
		if err != nil {
			log.Fatal("seeker dashboard load failed", zap.Error(err))
		}
		prefs, err := store.LoadPreferences()
		if err != nil {
			log.Fatal("preferences load failed", zap.Error(err))
		}
		browser := dashboard.NewServiceBrowser(d.Services)
		browser.SetPageSize(prefs.PageSize)
		browser.SetQuery(prefs.LastSearchQuery)
		page := browser.Page()

		st := dashboard.ComputeSeekerStats(d.Services, d.Bookings)
		log.Info("seeker dashboard",
			zap.Int("services", st.TotalServices),
			zap.Int("bookings", st.TotalBookings),
			zap.Int("pending", st.PendingBookings),
			zap.Int("confirmed", st.ConfirmedBookings),
			zap.Int("completed", st.CompletedBookings),
			zap.Int("complaints", len(d.Complaints)),
			zap.Int("grid_page_items", len(page.Items)),
			zap.Int("grid_total_pages", page.TotalPages),
		)

		complaints := complaint.NewService(client, log)
		poller := complaint.NewPoller(complaints, cfg.PollInterval, func(cs []domain.Complaint) {
			log.Info("complaints refreshed", zap.Int("count", len(cs)))
		}, log)
		poller.Run(ctx)

	case domain.RoleProvider:
		d, err := dashboards.LoadProvider(ctx)
		if err != nil {
			log.Fatal("provider dashboard load failed", zap.Error(err))
		}
		st := dashboard.ComputeProviderStats(d.MyServices, d.Bookings)
		log.Info("provider dashboard",
			zap.Int("services", st.TotalServices),
			zap.Int("bookings", st.TotalBookings),
			zap.Int("pending", st.PendingBookings),
		)

	case domain.RoleAdmin:
		d, err := dashboards.LoadAdmin(ctx)
		if err != nil {
			log.Fatal("admin dashboard load failed", zap.Error(err))
		}
		st := dashboard.ComputeAdminStats(d.Users, d.Services, d.Bookings, d.Complaints)
		log.Info("admin dashboard",
			zap.Int("users", st.TotalUsers),
			zap.Int("active_users", st.ActiveUsers),
			zap.Int("services", st.TotalServices),
			zap.Int("bookings", st.TotalBookings),
			zap.Int("open_complaints", st.OpenComplaints),
		)

	default:
		log.Fatal("unsupported role", zap.String("role", string(role)))
	}
}
