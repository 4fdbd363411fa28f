package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/response"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/requisite"
	"github.com/gin-gonic/gin"
)

type RequisiteHandler struct {
	uc requisite.RequisiteUsecase
}

func NewRequisiteHandler(uc requisite.RequisiteUsecase) *RequisiteHandler {
	return &RequisiteHandler{uc: uc}
}

// List serves one page of the filtered requisites table.
func (h *RequisiteHandler) List(c *gin.Context) {
	var filters requisitedto.RequisitesFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Fail(c, http.StatusBadRequest, err)
		return
	}

	output, err := h.uc.ListRequisites(c.Request.Context(), &requisitedto.ListRequisitesInput{
		Filters: filters,
		Page:    pageParam(c),
		User:    CurrentUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, output)
}

func (h *RequisiteHandler) Get(c *gin.Context) {
	output, err := h.uc.GetRequisite(c.Request.Context(), c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, output)
}

// Form returns the edit form prefilled from the stored requisite.
func (h *RequisiteHandler) Form(c *gin.Context) {
	output, err := h.uc.GetRequisite(c.Request.Context(), c.Param("id"), CurrentUser(c).ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, requisite.FormFromRequisite(&output.Requisite))
}

func (h *RequisiteHandler) Create(c *gin.Context) {
	var form requisitedto.RequisiteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	output, err := h.uc.CreateRequisite(c.Request.Context(), &requisitedto.CreateRequisiteInput{
		Form: form,
		User: CurrentUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, output)
}

func (h *RequisiteHandler) Edit(c *gin.Context) {
	var form requisitedto.RequisiteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Fail(c, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	output, err := h.uc.EditRequisite(c.Request.Context(), &requisitedto.EditRequisiteInput{
		ID:   c.Param("id"),
		Form: form,
		User: CurrentUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, output)
}

func (h *RequisiteHandler) ToggleStatus(c *gin.Context) {
	output, err := h.uc.ToggleStatus(c.Request.Context(), &requisitedto.ToggleStatusInput{
		ID:   c.Param("id"),
		User: CurrentUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, output)
}

// Archive deactivates the requisite; nothing is deleted.
func (h *RequisiteHandler) Archive(c *gin.Context) {
	output, err := h.uc.ArchiveRequisite(c.Request.Context(), &requisitedto.ToggleStatusInput{
		ID:   c.Param("id"),
		User: CurrentUser(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, output)
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
