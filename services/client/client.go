package client

import (
	"context"

	"weddify/api"
	"weddify/models"

	"go.uber.org/zap"
)

// ClientService is the client-role façade over the /client endpoints:
// browsing services, bookings and payments, and conversations.
type ClientService interface {
	DashboardData(ctx context.Context) (DashboardData, error)
	Bookings(ctx context.Context, p api.ListParams) ([]models.Booking, int, error)
	Payments(ctx context.Context, p api.ListParams) ([]models.Payment, int, error)
	Services(ctx context.Context, p api.ListParams) ([]models.Service, int, error)
	Profile(ctx context.Context) (models.User, error)
	UpdateAccount(ctx context.Context, userID string, input AccountUpdate) (models.User, error)

	CreateBooking(ctx context.Context, input models.BookingInput) (models.Booking, error)
	InitiatePayment(ctx context.Context, req models.PaymentRequest) (models.CheckoutSession, error)
	VerifyPayment(ctx context.Context, txRef, paymentID string) (models.Payment, error)

	Conversations(ctx context.Context) ([]models.Conversation, error)
	StartConversation(ctx context.Context, vendorID string) (models.Conversation, error)
}

// DashboardData is the client dashboard summary.
type DashboardData struct {
	TotalPaymentAmount float64          `json:"totalPaymentAmount"`
	Payments           []models.Payment `json:"payments"`
	Bookings           []models.Booking `json:"bookings"`
}

// AccountUpdate carries profile changes, password included.
type AccountUpdate struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty"`
}

// DefaultClientService implements ClientService.
type DefaultClientService struct {
	API       *api.Client
	Endpoints api.Endpoints
	Logger    *zap.Logger
}

func NewClientService(client *api.Client, logger *zap.Logger) (*DefaultClientService, error) {
	eps, err := api.EndpointsFor(models.RoleClient)
	if err != nil {
		return nil, err
	}
	return &DefaultClientService{API: client, Endpoints: eps, Logger: logger}, nil
}

func (s *DefaultClientService) DashboardData(ctx context.Context) (DashboardData, error) {
	var data DashboardData
	err := s.API.Get(ctx, s.Endpoints.Dashboard, nil, &data)
	return data, err
}

type bookingList struct {
	Items []models.Booking `json:"items"`
	Total int              `json:"total"`
}

func (s *DefaultClientService) Bookings(ctx context.Context, p api.ListParams) ([]models.Booking, int, error) {
	var list bookingList
	if err := s.API.Get(ctx, s.Endpoints.Bookings, p.Query(), &list); err != nil {
		return nil, 0, err
	}
	return list.Items, list.Total, nil
}

type paymentList struct {
	Items []models.Payment `json:"items"`
	Total int              `json:"total"`
}

func (s *DefaultClientService) Payments(ctx context.Context, p api.ListParams) ([]models.Payment, int, error) {
	var list paymentList
	if err := s.API.Get(ctx, s.Endpoints.Payments, p.Query(), &list); err != nil {
		return nil, 0, err
	}
	return list.Items, list.Total, nil
}

type serviceList struct {
	Items []models.Service `json:"items"`
	Total int              `json:"total"`
}

func (s *DefaultClientService) Services(ctx context.Context, p api.ListParams) ([]models.Service, int, error) {
	var list serviceList
	if err := s.API.Get(ctx, s.Endpoints.Services, p.Query(), &list); err != nil {
		return nil, 0, err
	}
	return list.Items, list.Total, nil
}

func (s *DefaultClientService) Profile(ctx context.Context) (models.User, error) {
	var user models.User
	err := s.API.Get(ctx, s.Endpoints.Profile, nil, &user)
	return user, err
}

func (s *DefaultClientService) UpdateAccount(ctx context.Context, userID string, input AccountUpdate) (models.User, error) {
	var user models.User
	err := s.API.Patch(ctx, s.Endpoints.Account(userID), input, &user)
	return user, err
}

type createBookingResponse struct {
	Booking models.Booking `json:"booking"`
}

func (s *DefaultClientService) CreateBooking(ctx context.Context, input models.BookingInput) (models.Booking, error) {
	var resp createBookingResponse
	if err := s.API.Post(ctx, s.Endpoints.Bookings, input, &resp); err != nil {
		return models.Booking{}, err
	}
	return resp.Booking, nil
}

func (s *DefaultClientService) InitiatePayment(ctx context.Context, req models.PaymentRequest) (models.CheckoutSession, error) {
	var cs models.CheckoutSession
	if err := s.API.Post(ctx, s.Endpoints.PaymentInitiate, req, &cs); err != nil {
		return models.CheckoutSession{}, err
	}
	return cs, nil
}

type verifyRequest struct {
	TxRef     string `json:"tx_ref"`
	PaymentID string `json:"paymentId"`
}

func (s *DefaultClientService) VerifyPayment(ctx context.Context, txRef, paymentID string) (models.Payment, error) {
	var payment models.Payment
	err := s.API.Post(ctx, s.Endpoints.PaymentVerify, verifyRequest{TxRef: txRef, PaymentID: paymentID}, &payment)
	return payment, err
}

func (s *DefaultClientService) Conversations(ctx context.Context) ([]models.Conversation, error) {
	var conversations []models.Conversation
	err := s.API.Get(ctx, s.Endpoints.Conversations, nil, &conversations)
	return conversations, err
}

type startConversationRequest struct {
	VendorID string `json:"vendorId"`
}

func (s *DefaultClientService) StartConversation(ctx context.Context, vendorID string) (models.Conversation, error) {
	var conversation models.Conversation
	err := s.API.Post(ctx, s.Endpoints.StartConversation, startConversationRequest{VendorID: vendorID}, &conversation)
	return conversation, err
}
