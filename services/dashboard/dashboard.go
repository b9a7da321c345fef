package dashboard

import (
	"context"
	"time"

	"weddify/api"
	"weddify/models"

	"go.uber.org/zap"
)

// DashboardService reads the shared event-planner dashboard surface.
type DashboardService interface {
	UserStats(ctx context.Context) (UserStats, error)
	Bookings(ctx context.Context, p api.ListParams) ([]models.Booking, int, error)
	Events(ctx context.Context, p api.ListParams) ([]Event, int, error)
	Notifications(ctx context.Context) ([]Notice, error)
}

// UserStats is the headline numbers block.
type UserStats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalVendors  int `json:"totalVendors"`
	TotalBookings int `json:"totalBookings"`
	TotalPayments int `json:"totalPayments"`
}

// Event is a planned wedding event.
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	PlannerID string    `json:"plannerId"`
}

// Notice is a backend-issued notification entry.
type Notice struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultDashboardService implements DashboardService.
type DefaultDashboardService struct {
	API    *api.Client
	Logger *zap.Logger
}

func NewDashboardService(client *api.Client, logger *zap.Logger) *DefaultDashboardService {
	return &DefaultDashboardService{API: client, Logger: logger}
}

func (s *DefaultDashboardService) UserStats(ctx context.Context) (UserStats, error) {
	var stats UserStats
	err := s.API.Get(ctx, api.DashboardStats, nil, &stats)
	return stats, err
}

type bookingList struct {
	Items []models.Booking `json:"items"`
	Total int              `json:"total"`
}

func (s *DefaultDashboardService) Bookings(ctx context.Context, p api.ListParams) ([]models.Booking, int, error) {
	var list bookingList
	if err := s.API.Get(ctx, api.DashboardBookings, p.Query(), &list); err != nil {
		return nil, 0, err
	}
	return list.Items, list.Total, nil
}

type eventList struct {
	Items []Event `json:"items"`
	Total int     `json:"total"`
}

func (s *DefaultDashboardService) Events(ctx context.Context, p api.ListParams) ([]Event, int, error) {
	var list eventList
	if err := s.API.Get(ctx, api.DashboardEvents, p.Query(), &list); err != nil {
		return nil, 0, err
	}
	return list.Items, list.Total, nil
}

func (s *DefaultDashboardService) Notifications(ctx context.Context) ([]Notice, error) {
	var notices []Notice
	err := s.API.Get(ctx, api.DashboardNotifications, nil, &notices)
	return notices, err
}
