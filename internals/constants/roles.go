package constants

// Admin-panel roles
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleViewer = "viewer"
)

var AllRoles = []string{RoleAdmin, RoleStaff, RoleViewer}
