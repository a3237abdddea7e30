package domain

// UserRole distinguishes the local shop owner from an administrator.
type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// UserProfile is the single local profile for the device/session. It is
// created once at first login and persisted indefinitely; the login flow is
// skipped while one exists.
type UserProfile struct {
	UserID    string   `json:"userID"`
	ShopName  string   `json:"shopName"`
	Phone     string   `json:"phone"`
	Role      UserRole `json:"role"`
	IsBlocked bool     `json:"isBlocked"`
}
