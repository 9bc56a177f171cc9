package handler_test

import (
	"net/http"
	"testing"

	"eventease-booking/internal/handler"
	"eventease-booking/internal/model"
	"eventease-booking/internal/service/mocks"
	apperrors "eventease-booking/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCategoryTestRouter(mockService *mocks.MockTicketCategoryService) *gin.Engine {
	router := newTestRouter()
	handler.NewTicketCategoryHandler(mockService).RegisterRoutes(router)
	return router
}

func TestCreateTicketCategory(t *testing.T) {
	body := map[string]interface{}{
		"name":               "VIP",
		"category_type":      "vip",
		"price":              "85.00",
		"quantity_available": 50,
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketCategoryService(t)
		router := setupCategoryTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, 3, mock.MatchedBy(func(req model.CreateTicketCategoryRequest) bool {
			return req.Name == "VIP" && req.CategoryType == model.CategoryTypeVIP && req.QuantityAvailable == 50
		})).Return(&model.TicketCategory{ID: 1, EventID: 3, Name: "VIP", Price: decimal.RequireFromString("85")}, nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/events/3/categories", body))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - DuplicateName", func(t *testing.T) {
		mockService := mocks.NewMockTicketCategoryService(t)
		router := setupCategoryTestRouter(mockService)

		mockService.EXPECT().Create(mock.Anything, 3, mock.Anything).Return(nil, apperrors.ErrDuplicateCategory).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/events/3/categories", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestListTicketCategories(t *testing.T) {
	mockService := mocks.NewMockTicketCategoryService(t)
	router := setupCategoryTestRouter(mockService)

	category := &model.TicketCategory{ID: 1, EventID: 3, Name: "VIP", QuantityAvailable: 5}
	mockService.EXPECT().ListByEvent(mock.Anything, 3).Return([]model.CategoryAvailability{
		model.NewCategoryAvailability(category, 5),
	}, nil).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/v1/events/3/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_sold_out":true`)
}

func TestGetTicketCategory(t *testing.T) {
	mockService := mocks.NewMockTicketCategoryService(t)
	router := setupCategoryTestRouter(mockService)

	mockService.EXPECT().GetByID(mock.Anything, 4).Return(nil, apperrors.ErrTicketCategoryNotFound).Once()

	w := serve(router, createJSONHTTPRequest("GET", "/api/v1/categories/4", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTicketCategory(t *testing.T) {
	mockService := mocks.NewMockTicketCategoryService(t)
	router := setupCategoryTestRouter(mockService)

	mockService.EXPECT().Update(mock.Anything, 4, mock.MatchedBy(func(req model.UpdateTicketCategoryRequest) bool {
		return req.Price != nil && req.Price.Equal(decimal.RequireFromString("99"))
	})).Return(&model.TicketCategory{ID: 4}, nil).Once()

	w := serve(router, createJSONHTTPRequest("PUT", "/api/v1/categories/4", map[string]string{"price": "99.00"}))

	assert.Equal(t, http.StatusOK, w.Code)
}
