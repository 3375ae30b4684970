package account

import "github.com/kbukum/accountkit/permission"

// PermissionTree is the full set of permissions effectively granted to a
// token: service name → permission name → resource names.
type PermissionTree map[string]map[string][]string

// ResourceFilter narrows a permission lookup. Nil fields match everything;
// Name and Resource are matched as hierarchical permission paths (see the
// permission package), Service by exact equality.
type ResourceFilter struct {
	Service  *string
	Name     *string
	Resource *string
}

// Resources returns the deduplicated resource names from the tree that
// survive the filter. Order is unspecified.
func (t PermissionTree) Resources(filter ResourceFilter) []string {
	seen := make(map[string]struct{})

	for serviceName, servicePerms := range t {
		if filter.Service != nil && serviceName != *filter.Service {
			continue
		}
		for permName, permResources := range servicePerms {
			if !permission.Matches(filter.Name, permName) {
				continue
			}
			for _, resource := range permResources {
				if permission.Matches(filter.Resource, resource) {
					seen[resource] = struct{}{}
				}
			}
		}
	}

	resources := make([]string, 0, len(seen))
	for resource := range seen {
		resources = append(resources, resource)
	}
	return resources
}

// permissionsResponse is the wire shape of GET /tokens/{token}/permissions.
type permissionsResponse struct {
	Permissions PermissionTree `json:"permissions"`
}

// quotasResponse is the wire shape of GET /organizations/{org}/quotas.
type quotasResponse struct {
	Quotas map[string]float64 `json:"quotas"`
}
