package rbac

// Permission names, shared by the policy table and the route wiring so the
// two cannot drift apart.
const (
	PermResponsesSubmit  = "responses:submit"
	PermResponsesViewAll = "responses:view-all"
	PermScoreCompute     = "score:compute"
	PermScoreViewAll     = "score:view-all"
	PermRiskView         = "risk:view"
	PermAggregateCompute = "aggregate:compute"
)

// Simple default policy. Respondents reach their own resources through the
// ownership check (RequireOwnerOr), not through a permission; the view-all
// permissions are for staff roles reading across subjects.
var RolePermissions = map[string][]string{
	"respondent": {
		PermResponsesSubmit,
	},
	"practitioner": {
		PermResponsesSubmit,
		PermResponsesViewAll,
		PermScoreCompute,
		PermScoreViewAll,
		PermRiskView,
		PermAggregateCompute,
	},
	"admin": {
		"*", // everything
	},
}
