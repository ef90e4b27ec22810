package models

// Role defines the account role of a user
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleMember Role = "Member"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleMember:
		return true
	}
	return false
}

// InviteStatus is the read-time status of an invite. It is never stored.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "Pending"
	InviteStatusAccepted InviteStatus = "Accepted"
	InviteStatusExpired  InviteStatus = "Expired"
)

// DefaultAgent is the agent recorded on extractions saved without one
const DefaultAgent = "Unassigned"

// DefaultWorkspaceName is the name of the workspace created with every owner account
const DefaultWorkspaceName = "Default Workspace"
