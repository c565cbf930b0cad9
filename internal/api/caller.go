package api

import (
	"net/http"

	"github.com/backedfi/fiat-bridge/internal/types"
	"github.com/backedfi/fiat-bridge/internal/utils"
)

// CallerIDHeader carries the authenticated caller id, set by the gateway in
// front of this service. The bridge trusts it and only resolves roles.
const CallerIDHeader = "X-Caller-Id"

// resolveCaller maps the caller id to the roles granted in the access
// config. Unknown callers get an empty capability set: role checks inside
// the service reject them where a role is required.
func (s *Server) resolveCaller(r *http.Request) (types.Caller, *types.Error) {
	id := r.Header.Get(CallerIDHeader)
	if id == "" {
		return types.Caller{}, types.NewErrorWithMsg(
			http.StatusBadRequest, types.ValidationError, "missing caller id header",
		)
	}

	var roles []types.Role
	if utils.Contains(s.cfg.Access.Admins, id) {
		roles = append(roles, types.RoleAdmin)
	}
	if utils.Contains(s.cfg.Access.Approvers, id) {
		roles = append(roles, types.RoleApprover)
	}
	if utils.Contains(s.cfg.Access.Bridgers, id) {
		roles = append(roles, types.RoleBridger)
	}

	return types.NewCaller(id, roles...), nil
}
