package models

import (
	"encoding/json"
	"fmt"
)

// Role identifies which side of the marketplace a user acts on.
type Role int

const (
	RoleAdmin Role = iota
	RoleEventPlanner
	RoleVendor
	RoleClient
)

var roleNames = map[Role]string{
	RoleAdmin:        "ADMIN",
	RoleEventPlanner: "EVENT_PLANNER",
	RoleVendor:       "VENDOR",
	RoleClient:       "CLIENT",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// PathPrefix returns the API path segment the backend scopes this role under.
func (r Role) PathPrefix() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleEventPlanner:
		return "/eventplanner"
	case RoleVendor:
		return "/vendor"
	case RoleClient:
		return "/client"
	}
	return ""
}

// ParseRole converts the backend's role strings into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "ADMIN":
		return RoleAdmin, nil
	case "EVENT_PLANNER":
		return RoleEventPlanner, nil
	case "VENDOR":
		return RoleVendor, nil
	case "CLIENT":
		return RoleClient, nil
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
