package domain

// GcpResource is the common part of resource descriptions that reference an
// owning project. It is a standalone validation helper for structures built
// elsewhere and is not tied to the environment lifecycle.
type GcpResource struct {
	Project string
	Extra   map[string]interface{}
}

// Validate checks that the resource references a project.
func (r *GcpResource) Validate() error {
	if r.Project == "" {
		return ErrProjectRequired
	}

	return nil
}
