package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleParent, RoleTutor, RoleAdmin} {
		assert.True(t, r.Valid(), "role %s", r)
	}
	for _, r := range []Role{"", "Parent", "PARENT", "parents", "guest"} {
		assert.False(t, r.Valid(), "role %q", r)
	}
}

func TestSession_Requester(t *testing.T) {
	s := Session{
		ID:       "sess-1",
		MemberID: "member-1",
		Name:     "Kim Jiyoung",
		Email:    "kim@example.com",
		Role:     RoleTutor,
	}
	assert.Equal(t, Requester{ID: "member-1", Role: RoleTutor}, s.Requester())
}
