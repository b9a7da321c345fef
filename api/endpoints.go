package api

import (
	"fmt"
	"strings"

	"weddify/models"
)

// Auth endpoints are role-independent.
const (
	AuthLogin    = "/auth/login"
	AuthRegister = "/auth/register"
	AuthValidate = "/auth/validate"
)

// VendorRegister is role-independent too; vendors sign up before they
// have a role-scoped session.
const VendorRegister = "/vendors/register"

// Dashboard endpoints shared by the event-planner screens.
const (
	DashboardStats         = "/dashboard/stats"
	DashboardBookings      = "/dashboard/bookings"
	DashboardEvents        = "/dashboard/events"
	DashboardNotifications = "/dashboard/notifications"
)

// Endpoints resolves a role to its API paths. Adding a role means
// extending the switch in EndpointsFor; there is no duck-typed lookup
// table to fall through.
type Endpoints struct {
	Dashboard         string
	Bookings          string
	Payments          string
	PaymentInitiate   string
	PaymentVerify     string
	Services          string
	Conversations     string
	StartConversation string
	Profile           string
	account           string
}

// EndpointsFor returns the endpoint set for a role.
func EndpointsFor(role models.Role) (Endpoints, error) {
	prefix := role.PathPrefix()
	switch role {
	case models.RoleClient:
		return Endpoints{
			Dashboard:         prefix + "/dashboard",
			Bookings:          prefix + "/bookings",
			Payments:          prefix + "/payment",
			PaymentInitiate:   prefix + "/payment/initiate",
			PaymentVerify:     prefix + "/payment/verify",
			Services:          prefix + "/services",
			Conversations:     prefix + "/conversations",
			StartConversation: prefix + "/conversation",
			Profile:           prefix + "/account/profile",
			account:           prefix + "/account/:id",
		}, nil
	case models.RoleVendor:
		return Endpoints{
			Dashboard:         prefix + "/dashboard/overview",
			Bookings:          prefix + "/bookings",
			Payments:          prefix + "/payment",
			Services:          prefix + "/services",
			Conversations:     prefix + "/conversations",
			StartConversation: prefix + "/conversations",
			Profile:           prefix + "/account/profile",
			account:           prefix + "/account/:id",
		}, nil
	case models.RoleAdmin, models.RoleEventPlanner:
		// Admin-framework roles reach resources through the data
		// provider; only the shared dashboard surface is fixed here.
		return Endpoints{
			Dashboard: prefix + "/dashboard",
			Bookings:  prefix + "/bookings",
			Payments:  prefix + "/payment",
			Profile:   prefix + "/account/profile",
			account:   prefix + "/account/:id",
		}, nil
	}
	return Endpoints{}, fmt.Errorf("no endpoints for role %s", role)
}

// Account substitutes the account id into the update path.
func (e Endpoints) Account(id string) string {
	return strings.Replace(e.account, ":id", id, 1)
}
