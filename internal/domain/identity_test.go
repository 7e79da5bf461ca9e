package domain_test

import (
	"testing"

	"go-salary/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestIsAdministrator(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
		want bool
	}{
		{name: "admin", id: domain.Identity{UserID: 1, Role: domain.RoleAdmin}, want: true},
		{name: "admin lowercase", id: domain.Identity{UserID: 1, Role: " admin "}, want: true},
		{name: "user", id: domain.Identity{UserID: 2, Role: domain.RoleUser}, want: false},
		{name: "empty role", id: domain.Identity{UserID: 3}, want: false},
		{name: "anonymous", id: domain.Identity{Role: domain.RoleAdmin}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsAdministrator(tt.id))
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, domain.RoleAdmin, domain.NormalizeRole("Admin"))
	assert.Equal(t, domain.RoleUser, domain.NormalizeRole("EMPLOYEE"))
	assert.Equal(t, domain.RoleUser, domain.NormalizeRole(""))
}
