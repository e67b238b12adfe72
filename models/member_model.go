package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleReader Role = "reader"
	RoleWriter Role = "writer"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleWriter, RoleAdmin:
		return true
	}
	return false
}

// RoleAllowed reports whether role is in the operation's allowed set. Roles
// are flat: the allowed set is the sole source of truth, admin implies
// nothing it does not list.
func RoleAllowed(role Role, allowed ...Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

type Member struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	FullName  string             `bson:"full_name" json:"full_name"`
	Role      Role               `bson:"role" json:"role"`
	Org       Ref[Organization]  `bson:"org_id" json:"org_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// TenantContext is the verified (organization, member) pair established once
// per request. Anything holding one may assume membership was already
// checked.
type TenantContext struct {
	Org    *Organization
	Member *Member
}
