package auth

// Permissions is an explicit value passed to call sites instead of an
// ambient always-allow context, so permission checks are testable in
// isolation.
type Permissions struct {
	ViewStats       bool
	ManageOrders    bool
	ManageCaptains  bool
	ManageCustomers bool
	ManageMerchants bool
	ManageProducts  bool
}

// Roles known to the dashboard.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)

// PermissionsForRole maps a token role to its permission set. Unknown
// roles get no permissions.
func PermissionsForRole(role string) Permissions {
	switch role {
	case RoleAdmin:
		return Permissions{
			ViewStats:       true,
			ManageOrders:    true,
			ManageCaptains:  true,
			ManageCustomers: true,
			ManageMerchants: true,
			ManageProducts:  true,
		}
	case RoleOperator:
		return Permissions{
			ViewStats:      true,
			ManageOrders:   true,
			ManageCaptains: true,
		}
	case RoleViewer:
		return Permissions{ViewStats: true}
	default:
		return Permissions{}
	}
}
