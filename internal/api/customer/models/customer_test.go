package customermodels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleCustomer.Valid())
	assert.True(t, RoleAgent.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_Assignable(t *testing.T) {
	assert.True(t, RoleCustomer.Assignable())
	assert.True(t, RoleAgent.Assignable())
	assert.False(t, RoleAdmin.Assignable())
	assert.False(t, Role("superuser").Assignable())
}
