package admin

import (
	"net/http"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/gin-gonic/gin"
)

// GetPanel godoc
// @Summary Admin panel descriptor
// @Description Sections, form schemas and affordances for the caller. Visitors get an empty panel.
// @Tags Admin
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=PanelDescriptor}
// @Router /admin/panel [get]
func GetPanel(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "Panel retrieved successfully", Panel(common.IdentityFromContext(c)))
}
