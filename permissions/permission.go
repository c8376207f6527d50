package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"rentdesk/shared/constant"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleOperator}

// Permission lists the console roles allowed on one route pattern. An empty
// list admits any authenticated caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions looks up the chi route pattern, not the raw URL path.
// Unknown routes get the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[method+" "+path]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))
	for _, endpoint := range r.Endpoints {
		r.index[endpoint.Method+" "+endpoint.Path] = endpoint
	}
}

func (r *PermissionData) validate() error {
	seen := map[string]bool{}

	for _, endpoint := range r.Endpoints {
		key := endpoint.Method + " " + endpoint.Path
		if seen[key] {
			return fmt.Errorf("duplicate permission entry %q", key)
		}

		seen[key] = true

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("unknown role %q on %q", role, key)
			}
		}
	}

	return nil
}

// Get decodes the embedded route table. A broken table stops the process:
// serving without it would either lock everyone out or let everyone in.
func Get() *PermissionData {
	var permissions PermissionData

	if err := json.Unmarshal(permissionsData, &permissions); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	if err := permissions.validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid embedded permissions")
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
