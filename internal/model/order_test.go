package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("Cancelled").Valid())
	assert.False(t, OrderStatus("pending").Valid(), "status values are case sensitive")
	assert.False(t, OrderStatus("").Valid())
}

func TestCanTransitionForwardOnly(t *testing.T) {
	chain := []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered}

	for i, from := range chain {
		for j, to := range chain {
			got := CanTransition(from, to)
			want := j > i
			assert.Equal(t, want, got, "%s → %s", from, to)
		}
	}

	// Skipping states forward is allowed; the machine only forbids going back.
	assert.True(t, CanTransition(OrderPending, OrderDelivered))
	assert.False(t, CanTransition(OrderDelivered, OrderPending))
	assert.False(t, CanTransition(OrderPending, OrderStatus("Cancelled")))
}

func TestParseRole(t *testing.T) {
	for _, r := range []Role{RoleBaseUser, RoleAdmin, RoleSupport, RoleManager, RoleDistributor, RoleBranchManager, RoleStaff} {
		parsed, err := ParseRole(string(r))
		assert.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRole("Superadmin")
	assert.Error(t, err)
	_, err = ParseRole("distributor")
	assert.Error(t, err, "roles are case sensitive")
}
