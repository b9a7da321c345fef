// Package registry is the seam between this application and the
// third-party CRUD admin framework: static role-to-resource mappings,
// no business logic.
package registry

import "weddify/models"

// View names a screen the admin framework can render for a resource.
type View string

const (
	ViewList   View = "list"
	ViewEdit   View = "edit"
	ViewCreate View = "create"
	ViewShow   View = "show"
)

// Resource describes one admin-framework resource entry.
type Resource struct {
	Name  string
	Label string
	Icon  string
	Views []View
}

var adminResources = []Resource{
	{Name: "dashboard", Label: "Dashboard", Icon: "dashboard", Views: []View{ViewList}},
	{Name: "event-planner", Label: "Event Planner", Icon: "event", Views: []View{ViewList, ViewEdit, ViewCreate, ViewShow}},
	{Name: "vendor", Label: "Vendor", Icon: "storefront", Views: []View{ViewList, ViewEdit, ViewShow}},
	{Name: "user", Label: "User", Icon: "person", Views: []View{ViewList, ViewEdit}},
	{Name: "feedback", Label: "Feedback", Icon: "feedback", Views: []View{ViewList}},
	{Name: "payment", Label: "Payment", Icon: "payments", Views: []View{ViewList}},
	{Name: "password", Label: "Password", Icon: "password", Views: []View{ViewEdit}},
}

var eventPlannerResources = []Resource{
	{Name: "dashboard", Label: "Dashboard", Icon: "dashboard", Views: []View{ViewList}},
	{Name: "vendor", Label: "Vendor", Icon: "storefront", Views: []View{ViewList}},
	{Name: "user", Label: "User", Icon: "person", Views: []View{ViewList}},
	{Name: "feedback", Label: "Feedback", Icon: "feedback", Views: []View{ViewList}},
	{Name: "payment", Label: "Payment", Icon: "payments", Views: []View{ViewList}},
	{Name: "password", Label: "Password", Icon: "password", Views: []View{ViewEdit}},
}

var vendorResources = []Resource{
	{Name: "dashboard", Label: "Dashboard", Icon: "dashboard", Views: []View{ViewList}},
	{Name: "bookings", Label: "Bookings", Icon: "book_online", Views: []View{ViewList, ViewShow}},
	{Name: "chat", Label: "Chat", Icon: "chat", Views: []View{ViewList}},
	{Name: "manage-services", Label: "Manage Services", Icon: "design_services", Views: []View{ViewList, ViewEdit, ViewCreate}},
	{Name: "payment", Label: "Payment", Icon: "payments", Views: []View{ViewList}},
	{Name: "account", Label: "Account", Icon: "manage_accounts", Views: []View{ViewEdit}},
}

var clientResources = []Resource{
	{Name: "dashboard", Label: "Dashboard", Icon: "dashboard", Views: []View{ViewList}},
	{Name: "services", Label: "Services", Icon: "design_services", Views: []View{ViewList}},
	{Name: "my-bookings", Label: "My Bookings", Icon: "book_online", Views: []View{ViewList}},
	{Name: "payment", Label: "Payment", Icon: "payments", Views: []View{ViewList}},
	{Name: "account", Label: "Account", Icon: "manage_accounts", Views: []View{ViewEdit}},
}

// ForRole returns the resource set rendered for a role.
func ForRole(role models.Role) []Resource {
	switch role {
	case models.RoleAdmin:
		return adminResources
	case models.RoleEventPlanner:
		return eventPlannerResources
	case models.RoleVendor:
		return vendorResources
	case models.RoleClient:
		return clientResources
	}
	return nil
}
