package handlers

import (
	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/response"
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/access"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/reference"
	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	uc reference.ReferenceUsecase
}

func NewReferenceHandler(uc reference.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Traders        []Option `json:"traders"`
	OperationTypes []Option `json:"operation_types"`
	PaymentMethods []Option `json:"payment_methods"`
}

type NavigationResponse struct {
	UserID    string           `json:"user_id"`
	Role      domain.Role      `json:"role"`
	RoleLabel string           `json:"role_label"`
	Items     []access.NavItem `json:"items"`
}

func (h *ReferenceHandler) Navigation(c *gin.Context) {
	user := CurrentUser(c)
	response.OK(c, NavigationResponse{
		UserID:    user.ID,
		Role:      user.Role,
		RoleLabel: access.RoleLabel(user.Role),
		Items:     access.Navigation(user.Role),
	})
}

func (h *ReferenceHandler) Banks(c *gin.Context) {
	response.OK(c, h.uc.ListBanks(pageParam(c)))
}

func (h *ReferenceHandler) Users(c *gin.Context) {
	response.OK(c, h.uc.ListUsers(pageParam(c)))
}

func (h *ReferenceHandler) History(c *gin.Context) {
	response.OK(c, h.uc.ListOrders(CurrentUser(c).Role, pageParam(c)))
}

// RequisiteFilterOptions feeds the dropdowns of the requisites filter form.
// An empty value means "any".
func (h *ReferenceHandler) RequisiteFilterOptions(c *gin.Context) {
	users := h.uc.Users()
	traders := make([]Option, 0, len(users)+1)
	traders = append(traders, Option{Value: "", Label: "Все"})
	for _, u := range users {
		traders = append(traders, Option{Value: u.UserID, Label: u.Login})
	}

	response.OK(c, FilterOptions{
		Traders: traders,
		OperationTypes: []Option{
			{Value: "", Label: "Оба"},
			{Value: string(domain.OperationDebit), Label: "Пополнение"},
			{Value: string(domain.OperationCredit), Label: "Вывод"},
		},
		PaymentMethods: []Option{
			{Value: "", Label: "Все"},
			{Value: string(domain.RequisitesCard2Card), Label: "Номер карты"},
			{Value: string(domain.RequisitesSBP), Label: "СБП"},
			{Value: string(domain.RequisitesAccountTransfer), Label: "Номер счета"},
		},
	})
}
