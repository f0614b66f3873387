package common

// Permission flags resolved by the PermissionService collaborator.
const (
	PermissionBase  = "core.base"  // plain group membership
	PermissionOwner = "core.owner" // owner/admin equivalent
)

// HasPermission reports whether the flag is present in the resolved set.
func HasPermission(perms []string, flag string) bool {
	for _, p := range perms {
		if p == flag {
			return true
		}
	}
	return false
}
