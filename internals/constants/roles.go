package constants

// Role values stored on users.role. An empty role means the user has not been promoted.
const (
	RoleNone       = ""
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

// Class status values stored on classes.status
const (
	ClassStatusPending = "pending"
	ClassStatusApprove = "approve"
	ClassStatusDeny    = "deny"
)

// Collection names inside the flc database
const (
	CollectionUsers        = "users"
	CollectionClasses      = "classes"
	CollectionSavedClasses = "savedClasses"
	CollectionPayments     = "payments"
)

// Response messages shared by controllers and the auth guard
const (
	MsgUnauthorized      = "unauthorized access"
	MsgForbidden         = "forbidden message"
	MsgUserRegistered    = "User already registered"
	MsgSavedClassExists  = "Class  already exists"
	MsgInternalError     = "internal server error"
	MsgInvalidIdentifier = "invalid id"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// Roles a user may claim for themselves at registration time
	SelfAssignableRoles = []string{
		RoleNone,
		RoleStudent,
	}
)
