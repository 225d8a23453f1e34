package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/panchayat-backend/internal/http/response"
	"github.com/yungbote/panchayat-backend/internal/platform/apierr"
	"github.com/yungbote/panchayat-backend/internal/platform/logger"
	"github.com/yungbote/panchayat-backend/internal/services"
)

type VillageInfoHandler struct {
	log *logger.Logger
	svc services.VillageInfoService
}

func NewVillageInfoHandler(log *logger.Logger, svc services.VillageInfoService) *VillageInfoHandler {
	return &VillageInfoHandler{log: log.With("handler", "VillageInfoHandler"), svc: svc}
}

// POST /api/village-info
func (h *VillageInfoHandler) Submit(c *gin.Context) {
	var req services.SubmitVillageInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, services.ActionResult{
			Message: "invalid request body",
			Errors:  map[string][]string{"_form": {err.Error()}},
			Code:    services.CodeValidation,
		})
		return
	}
	res := h.svc.Submit(c.Request.Context(), req)
	c.JSON(response.StatusForCode(res.Code), res)
}

// GET /api/village-info/:code?year=2023-24
func (h *VillageInfoHandler) Get(c *gin.Context) {
	code, err := strconv.Atoi(strings.TrimSpace(c.Param("code")))
	if err != nil || code <= 0 {
		response.RespondAPIError(c, apierr.BadRequest("invalid_village_code", "village code must be a positive integer"))
		return
	}
	year := strings.TrimSpace(c.Query("year"))
	if year == "" {
		response.RespondAPIError(c, apierr.BadRequest("missing_year", "year query parameter is required"))
		return
	}
	row := h.svc.Get(c.Request.Context(), code, year)
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	response.RespondOK(c, gin.H{"village_info": row})
}

// GET /api/years
func (h *VillageInfoHandler) ListYears(c *gin.Context) {
	years, err := h.svc.ListYears(c.Request.Context())
	if err != nil {
		h.log.Error("list years failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_years_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"years": years})
}
