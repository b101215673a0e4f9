package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

// TenancyHandler tenants, grupos, empresas y filiales.
type TenancyHandler struct {
	uc *usecase.TenancyUseCase
}

// NewTenancyHandler construye el handler.
func NewTenancyHandler(uc *usecase.TenancyUseCase) *TenancyHandler {
	return &TenancyHandler{uc: uc}
}

// CreateTenant godoc
// @Summary      Crear tenant
// @Description  Requiere rol platform.
// @Tags         tenancy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTenantRequest  true  "nombre"
// @Success      201   {object}  dto.TenantResponse
// @Router       /api/tenants [post]
func (h *TenancyHandler) CreateTenant(c *fiber.Ctx) error {
	var in dto.CreateTenantRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.CreateTenant(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTenants godoc
// @Summary      Listar tenants
// @Description  Solo el tenant del usuario; el rol platform ve todos.
// @Tags         tenancy
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.TenantListResponse
// @Router       /api/tenants [get]
func (h *TenancyHandler) ListTenants(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	scope := GetTenantID(c)
	if GetRole(c) == entity.RolePlatform {
		scope = ""
	}
	out, err := h.uc.ListTenants(c.UserContext(), scope, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateGroup POST /api/groups
func (h *TenancyHandler) CreateGroup(c *fiber.Ctx) error {
	var in dto.CreateGroupRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.CreateGroup(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListGroups GET /api/groups
func (h *TenancyHandler) ListGroups(c *fiber.Ctx) error {
	out, err := h.uc.ListGroups(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateCompany godoc
// @Summary      Crear empresa dentro de un grupo del tenant
// @Tags         tenancy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "grupo y nombre"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *TenancyHandler) CreateCompany(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.GroupID == "" {
		return badRequest(c, "VALIDATION", "name y group_id son requeridos")
	}
	out, err := h.uc.CreateCompany(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCompanies GET /api/companies
func (h *TenancyHandler) ListCompanies(c *fiber.Ctx) error {
	out, err := h.uc.ListCompanies(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateBranch godoc
// @Summary      Registrar filial (CNPJ)
// @Tags         tenancy
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBranchRequest  true  "empresa, nombre y CNPJ"
// @Success      201   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/branches [post]
func (h *TenancyHandler) CreateBranch(c *fiber.Ctx) error {
	var in dto.CreateBranchRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.CompanyID == "" || in.CNPJ == "" {
		return badRequest(c, "VALIDATION", "company_id y cnpj son requeridos")
	}
	out, err := h.uc.CreateBranch(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBranches GET /api/branches?company_id=
func (h *TenancyHandler) ListBranches(c *fiber.Ctx) error {
	out, err := h.uc.ListBranches(c.UserContext(), GetTenantID(c), c.Query("company_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
