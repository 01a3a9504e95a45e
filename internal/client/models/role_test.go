package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_AtLeastIsMonotonic(t *testing.T) {
	roles := []Role{RoleMember, RoleLeader, RolePastor}
	for i, r1 := range roles {
		for j, r2 := range roles {
			assert.Equal(t, i >= j, r1.AtLeast(r2), "%s at least %s", r1, r2)
		}
	}
}

func TestRole_InvalidNeverSatisfies(t *testing.T) {
	assert.False(t, Role(0).AtLeast(RoleMember))
	assert.False(t, RolePastor.AtLeast(Role(9)))
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "member", want: RoleMember},
		{in: "Leader", want: RoleLeader},
		{in: "ministry_leader", want: RoleLeader},
		{in: "pastor", want: RolePastor},
		{in: " admin ", want: RolePastor},
		{in: "bishop", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_JSONUsesCanonicalName(t *testing.T) {
	b, err := json.Marshal(RoleLeader)
	require.NoError(t, err)
	assert.JSONEq(t, `"leader"`, string(b))

	var r Role
	require.NoError(t, json.Unmarshal([]byte(`"admin"`), &r))
	assert.Equal(t, RolePastor, r)

	_, err = json.Marshal(Role(0))
	require.Error(t, err)
}
