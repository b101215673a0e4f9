package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/simulation"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SimulationHandler importación de archivos SPED y vistas de la simulación.
type SimulationHandler struct {
	imports *simulation.ImportUseCase
	views   *simulation.ViewsUseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(imports *simulation.ImportUseCase, views *simulation.ViewsUseCase) *SimulationHandler {
	return &SimulationHandler{imports: imports, views: views}
}

// Import godoc
// @Summary      Importar archivo EFD
// @Tags         sped
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo SPED (txt)"
// @Success      201   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sped/import [post]
func (h *SimulationHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "campo file requerido")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo leer el archivo")
	}
	defer f.Close()

	scope := simulation.Scope{TenantID: GetTenantID(c), CompanyID: GetCompanyID(c)}
	out, err := h.imports.Import(c.UserContext(), scope, f)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListImports GET /api/sped/imports: historial de archivos importados por el tenant.
func (h *SimulationHandler) ListImports(c *fiber.Ctx) error {
	out, err := h.imports.ListFiles(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Carga actual frente a proyectada
// @Tags         simulation
// @Produce      json
// @Param        year  query  int  false  "Año del cronograma"
// @Success      200   {object}  dto.DashboardDTO
// @Router       /api/simulation/dashboard [get]
func (h *SimulationHandler) Dashboard(c *fiber.Ctx) error {
	year, err := queryYear(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.views.Dashboard(c.UserContext(), GetTenantID(c), year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Panel godoc
// @Summary      Panel por categoría
// @Tags         simulation
// @Produce      json
// @Param        category  path   string  true   "goods | energy | freight"
// @Param        year      query  int     false  "Año del cronograma"
// @Param        ind_oper  query  string  false  "0 entrada, 1 salida (default), all"
// @Param        cnpj      query  string  false  "CNPJ o all"
// @Success      200       {object}  dto.PanelDTO
// @Router       /api/simulation/panels/{category} [get]
func (h *SimulationHandler) Panel(c *fiber.Ctx) error {
	year, err := queryYear(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	ind, err := parseIndOper(c.Query("ind_oper"))
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	q := simulation.PanelQuery{Year: year, IndOper: ind, CNPJ: c.Query("cnpj")}
	out, err := h.views.Panel(c.UserContext(), GetTenantID(c), c.Params("category"), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Dashboard calculado desde un archivo sin persistirlo
// @Tags         simulation
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true   "Archivo SPED (txt)"
// @Param        year  formData  int   false  "Año del cronograma"
// @Success      200   {object}  dto.DashboardDTO
// @Router       /api/simulation/preview [post]
func (h *SimulationHandler) Preview(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "MISSING_FILE", "campo file requerido")
	}
	year := 0
	if v := strings.TrimSpace(c.FormValue("year")); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			return badRequest(c, "VALIDATION", "year debe ser numérico")
		}
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "INVALID_FILE", "no se pudo leer el archivo")
	}
	defer f.Close()

	out, err := h.views.Preview(c.UserContext(), f, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportExcel GET /api/simulation/export.xlsx
func (h *SimulationHandler) ExportExcel(c *fiber.Ctx) error {
	year, err := queryYear(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.views.ExportExcel(c.UserContext(), GetTenantID(c), year)
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, mimeXLSX, fmt.Sprintf("simulacao-%s.xlsx", effectiveYear(year)), out)
}

// ExportPDF GET /api/simulation/report.pdf
func (h *SimulationHandler) ExportPDF(c *fiber.Ctx) error {
	year, err := queryYear(c)
	if err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.views.ExportPDF(c.UserContext(), GetTenantID(c), year)
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/pdf", fmt.Sprintf("simulacao-%s.pdf", effectiveYear(year)), out)
}

func sendAttachment(c *fiber.Ctx, mime, name string, body []byte) error {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(body)
}

func effectiveYear(y int) string {
	if y == 0 {
		return "atual"
	}
	return strconv.Itoa(y)
}

// queryYear ?year= opcional; 0 significa el año por defecto.
func queryYear(c *fiber.Ctx) (int, error) {
	v := strings.TrimSpace(c.Query("year"))
	if v == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(v)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("year inválido: %q", v)
	}
	return y, nil
}

// parseIndOper vacío = salida (1), "all" = sin filtro.
func parseIndOper(v string) (*int, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "":
		out := entity.IndOperOut
		return &out, nil
	case "all":
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || (n != entity.IndOperIn && n != entity.IndOperOut) {
		return nil, fmt.Errorf("ind_oper inválido: %q (0, 1 o all)", v)
	}
	return &n, nil
}
