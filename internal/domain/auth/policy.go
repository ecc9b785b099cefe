package auth

// PolicyKind tags the variant of a per-route access policy.
type PolicyKind string

const (
	// PolicyPublic always allows.
	PolicyPublic PolicyKind = "public"
	// PolicyRequireAuthenticated allows any present identity.
	PolicyRequireAuthenticated PolicyKind = "require_authenticated"
	// PolicyRequireRole allows identities holding at least one allowed role.
	PolicyRequireRole PolicyKind = "require_role"
)

// Policy is a per-route access rule. Evaluation only ever needs the current
// request's identity; there is no cross-request state.
type Policy struct {
	Kind  PolicyKind
	Roles []string // allowed roles, only for PolicyRequireRole
}

// Public returns the always-allow policy.
func Public() Policy { return Policy{Kind: PolicyPublic} }

// RequireAuthenticated returns the authenticated-only policy.
func RequireAuthenticated() Policy { return Policy{Kind: PolicyRequireAuthenticated} }

// RequireRole returns a policy allowing only identities that hold at least
// one of the given roles.
func RequireRole(roles ...string) Policy {
	return Policy{Kind: PolicyRequireRole, Roles: roles}
}

// Decision is the outcome of evaluating a Policy against an identity.
type Decision struct {
	Allowed bool
	// Reason is ErrUnauthenticated or ErrForbidden on deny, nil on allow.
	// The two deny reasons map to distinct response codes (401 vs 403).
	Reason error
}

// Decide evaluates a policy against the identity derived for the current
// request (nil when no identity is present). It is a pure function of its
// two inputs.
func Decide(p Policy, id *Identity) Decision {
	switch p.Kind {
	case PolicyPublic:
		return Decision{Allowed: true}
	case PolicyRequireAuthenticated:
		if id == nil {
			return Decision{Reason: ErrUnauthenticated}
		}
		return Decision{Allowed: true}
	case PolicyRequireRole:
		if id == nil {
			return Decision{Reason: ErrUnauthenticated}
		}
		if !id.HasAnyRole(p.Roles...) {
			return Decision{Reason: ErrForbidden}
		}
		return Decision{Allowed: true}
	default:
		// Unknown policy kinds deny closed.
		return Decision{Reason: ErrUnauthenticated}
	}
}
