package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

func TestTenants_UsuarioSoloVeSuTenant(t *testing.T) {
	env := newTestEnv()

	for _, role := range []string{entity.RoleUser, entity.RoleAdmin} {
		resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/tenants?limit=50", nil), role)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		out := decode[dto.TenantListResponse](t, resp)
		resp.Body.Close()

		require.Len(t, out.Items, 1, role)
		assert.Equal(t, testTenantID, out.Items[0].ID)
		for _, item := range out.Items {
			assert.NotEqual(t, otherTenantID, item.ID)
		}
	}
}

func TestTenants_PlatformVeTodos(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, httptest.NewRequest(http.MethodGet, "/api/tenants", nil), entity.RolePlatform)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.TenantListResponse](t, resp)
	assert.Len(t, out.Items, 2)
}

func TestTenants_CrearRequierePlatform(t *testing.T) {
	env := newTestEnv()

	post := func(role string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/tenants", strings.NewReader(`{"name":"Gama"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := env.do(t, req, role)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusForbidden, post(entity.RoleUser))
	assert.Equal(t, http.StatusForbidden, post(entity.RoleAdmin))
	assert.Len(t, env.tenants.items, 2)

	assert.Equal(t, http.StatusCreated, post(entity.RolePlatform))
	assert.Len(t, env.tenants.items, 3)
}
