package httpapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi"
	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/handlers"
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/seed"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/storage"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/reference"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/requisite"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type bankBody struct {
	Name string `json:"name"`
}

type statisticsBody struct {
	TraderID string `json:"trader_id"`
}

type requisiteBody struct {
	ID         string          `json:"id"`
	TraderID   string          `json:"trader_id"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
	Display    string          `json:"requisites_display"`
	Bank       *bankBody       `json:"bank"`
	Statistics *statisticsBody `json:"statistics"`
}

type listBody struct {
	Columns []struct {
		Key string `json:"key"`
	} `json:"columns"`
	Rows []struct {
		Cells []string `json:"cells"`
	} `json:"rows"`
	Pagination struct {
		Page       int `json:"page"`
		TotalPages int `json:"total_pages"`
		TotalItems int `json:"total_items"`
	} `json:"pagination"`
}

type RouterSuite struct {
	suite.Suite
	router *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	catalog, err := seed.Load()
	s.Require().NoError(err)

	registry := prometheus.NewRegistry()
	requisiteUsecase := requisite.NewDefaultRequisiteUsecase(
		storage.NewMemoryStore(),
		catalog.Requisites,
		catalog.Banks,
		nil,
		metrics.NewRequisiteMetrics(registry),
	)
	referenceUsecase := reference.NewDefaultReferenceUsecase(catalog.Banks, catalog.Users, catalog.Orders)

	s.router = httpapi.SetupRouter(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		registry,
		handlers.NewRequisiteHandler(requisiteUsecase),
		handlers.NewReferenceHandler(referenceUsecase),
	)
}

func (s *RouterSuite) do(method, path string, role domain.Role, body any) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(httpapi.HeaderUserRole, string(role))
		req.Header.Set(httpapi.HeaderUserID, string(role)+"-1")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

func (s *RouterSuite) TestHealthAndRequestID() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(httpapi.HeaderRequestID, "req-abc")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("req-abc", rec.Header().Get(httpapi.HeaderRequestID))

	rec, _ = s.do(http.MethodGet, "/health", "", nil)
	s.NotEmpty(rec.Header().Get(httpapi.HeaderRequestID))
}

func (s *RouterSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/api/v1/requisites", domain.RoleAdmin, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "requisites_listed_total")
}

func (s *RouterSuite) TestListRequisites() {
	s.Run("admin sees every column", func() {
		rec, env := s.do(http.MethodGet, "/api/v1/requisites", "", nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var body listBody
		s.Require().NoError(json.Unmarshal(env.Data, &body))
		s.Equal(12, body.Pagination.TotalItems)
		s.Equal(2, body.Pagination.TotalPages)
		s.Len(body.Rows, 10)
		s.Len(body.Columns, len(requisite.Columns))
	})

	s.Run("filters by card digits with spaces", func() {
		rec, env := s.do(http.MethodGet, "/api/v1/requisites?card_number=4111%201111%2011&trader_id=trader-2", domain.RoleTrader, nil)
		s.Require().Equal(http.StatusOK, rec.Code)

		var body listBody
		s.Require().NoError(json.Unmarshal(env.Data, &body))
		s.Equal(2, body.Pagination.TotalItems)
		for _, c := range body.Columns {
			s.NotEqual("trader_id", c.Key)
		}
	})

	s.Run("overflowing page resets", func() {
		_, env := s.do(http.MethodGet, "/api/v1/requisites?page=9", domain.RoleAdmin, nil)
		var body listBody
		s.Require().NoError(json.Unmarshal(env.Data, &body))
		s.Equal(1, body.Pagination.Page)
	})

	s.Run("support cannot open requisites", func() {
		rec, env := s.do(http.MethodGet, "/api/v1/requisites", domain.RoleSupport, nil)
		s.Equal(http.StatusForbidden, rec.Code)
		s.False(env.Success)
	})

	s.Run("unknown role is rejected", func() {
		rec, _ := s.do(http.MethodGet, "/api/v1/requisites", domain.Role("root"), nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *RouterSuite) TestGetRequisite() {
	rec, env := s.do(http.MethodGet, "/api/v1/requisites/req-009", domain.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var body requisiteBody
	s.Require().NoError(json.Unmarshal(env.Data, &body))
	s.Nil(body.Bank, "unknown bank resolves to null")
	s.Require().NotNil(body.Statistics)
	s.Equal("trader-1", body.Statistics.TraderID)

	rec, env = s.do(http.MethodGet, "/api/v1/requisites/missing", domain.RoleAdmin, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.NotEmpty(env.Error)
}

func (s *RouterSuite) TestCreateEditToggleArchive() {
	form := map[string]string{
		"requisites_type": "sbp",
		"operation_type":  "debit",
		"fullname":        "Иванов Иван Иванович",
		"bank_id":         "bank-sber",
		"phone_number":    "+7 (999) 123-45-67",
		"limit_min":       "1000",
	}

	rec, env := s.do(http.MethodPost, "/api/v1/requisites", domain.RoleTrader, form)
	s.Require().Equal(http.StatusCreated, rec.Code, env.Error)

	var created requisiteBody
	s.Require().NoError(json.Unmarshal(env.Data, &created))
	s.NotEmpty(created.ID)
	s.Equal("trader-1", created.TraderID)
	s.Equal(created.CreatedAt, created.UpdatedAt)
	s.Equal("+7 (999) 123-45-67", created.Display)
	s.Require().NotNil(created.Bank)

	rec, env = s.do(http.MethodGet, "/api/v1/requisites/"+created.ID+"/form", domain.RoleTrader, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var prefilled map[string]string
	s.Require().NoError(json.Unmarshal(env.Data, &prefilled))
	s.Equal("1000", prefilled["limit_min"])

	form["fullname"] = "Иванов И.И."
	rec, env = s.do(http.MethodPut, "/api/v1/requisites/"+created.ID, domain.RoleAdmin, form)
	s.Require().Equal(http.StatusOK, rec.Code, env.Error)
	var edited requisiteBody
	s.Require().NoError(json.Unmarshal(env.Data, &edited))
	s.Equal("trader-1", edited.TraderID, "owner survives edits by other operators")

	rec, env = s.do(http.MethodPost, "/api/v1/requisites/"+created.ID+"/toggle-status", domain.RoleTrader, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var toggled requisiteBody
	s.Require().NoError(json.Unmarshal(env.Data, &toggled))
	s.Equal("inactive", toggled.Status)

	rec, env = s.do(http.MethodDelete, "/api/v1/requisites/req-001", domain.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var archived requisiteBody
	s.Require().NoError(json.Unmarshal(env.Data, &archived))
	s.Equal("inactive", archived.Status)
}

func (s *RouterSuite) TestCreateValidation() {
	rec, env := s.do(http.MethodPost, "/api/v1/requisites", domain.RoleTrader, map[string]string{
		"requisites_type": "card2card",
		"fullname":        "Иванов Иван Иванович",
		"bank_id":         "bank-sber",
		"requisites":      "4111",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.False(env.Success)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/requisites", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestReferencePages() {
	rec, _ := s.do(http.MethodGet, "/api/v1/banks", domain.RoleSupport, nil)
	s.Equal(http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/banks", domain.RoleTrader, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/users", domain.RoleMerchant, nil)
	s.Equal(http.StatusForbidden, rec.Code)

	rec, env := s.do(http.MethodGet, "/api/v1/history", domain.RoleMerchant, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var history listBody
	s.Require().NoError(json.Unmarshal(env.Data, &history))
	for _, c := range history.Columns {
		s.NotEqual("trader_id", c.Key)
	}

	rec, env = s.do(http.MethodGet, "/api/v1/navigation", domain.RoleSupport, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var nav handlers.NavigationResponse
	s.Require().NoError(json.Unmarshal(env.Data, &nav))
	s.Equal("Саппорт", nav.RoleLabel)

	rec, env = s.do(http.MethodGet, "/api/v1/requisites/filter-options", domain.RoleAdmin, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var opts handlers.FilterOptions
	s.Require().NoError(json.Unmarshal(env.Data, &opts))
	s.Equal("", opts.Traders[0].Value)
	s.Len(opts.PaymentMethods, 4)
}
