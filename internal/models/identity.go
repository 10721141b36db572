package models

import "fmt"

// IdentityKind distinguishes the two kinds of participant identity
type IdentityKind string

const (
	// IdentityKindMember is a registered member with an account
	IdentityKindMember IdentityKind = "member"

	// IdentityKindGuest is an anonymous guest resolved by phone number
	IdentityKindGuest IdentityKind = "guest"
)

// Identity is a tagged union over registered members and anonymous guests.
// Every authorization and notification call site switches on Kind rather
// than guessing at the shape of a bare ID.
type Identity struct {
	// Kind is the variant tag
	Kind IdentityKind

	// ID is the member ID or guest profile ID, depending on Kind
	ID string
}

// MemberIdentity builds the identity of a registered member
func MemberIdentity(id string) Identity {
	return Identity{Kind: IdentityKindMember, ID: id}
}

// GuestIdentity builds the identity of an anonymous guest
func GuestIdentity(id string) Identity {
	return Identity{Kind: IdentityKindGuest, ID: id}
}

// IsMember reports whether the identity is a registered member
func (i Identity) IsMember() bool {
	return i.Kind == IdentityKindMember
}

// IsGuest reports whether the identity is an anonymous guest
func (i Identity) IsGuest() bool {
	return i.Kind == IdentityKindGuest
}

// IsZero reports whether the identity is unset
func (i Identity) IsZero() bool {
	return i.Kind == "" && i.ID == ""
}

// Equal reports structural equality across the member/guest union
func (i Identity) Equal(other Identity) bool {
	return i.Kind == other.Kind && i.ID == other.ID
}

// Key returns the stable string form used as a storage key, e.g. "member:42"
func (i Identity) Key() string {
	return fmt.Sprintf("%s:%s", i.Kind, i.ID)
}
