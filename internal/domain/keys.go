package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserType  CtxKey = "UserType"
	KeyUserPlan  CtxKey = "Plan"
)

// User types carried in the JWT. Authorization gates are role checks against
// these values; the service itself has no user table.
const (
	UserTypeCandidate = "candidate"
	UserTypeVendor    = "vendor"
	UserTypeAdmin     = "admin"
)

// Plan tiers. Free candidates are matched against a reduced set of job types;
// paid tiers see everything and get a higher monthly poke cap.
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// AllowedJobTypesForPlan returns the caller-supplied allowed-type constraint
// for the candidate→jobs ranker. nil means no constraint.
func AllowedJobTypesForPlan(plan string) []string {
	switch plan {
	case PlanPro, PlanEnterprise:
		return nil
	default:
		return []string{JobTypeFullTime, JobTypeContract}
	}
}

// PokeCapForPlan returns the monthly poke cap for a plan. 0 means unlimited.
func PokeCapForPlan(plan string, defaultCap int) int {
	switch plan {
	case PlanPro:
		return defaultCap * 10
	case PlanEnterprise:
		return 0
	default:
		return defaultCap
	}
}
