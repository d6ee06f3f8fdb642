package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/internal/models/response_models"
	"kissan/internal/services"
	"kissan/pkg/utils"
)

func marketRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewMarketController(services.NewMarketService())
	r.GET("/api/market", controller.GetQuotes)
	return r
}

func TestGetQuotes(t *testing.T) {
	r := marketRouter()

	t.Run("filters propagate from the query string", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/market?state=Punjab&commodity=Wheat", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)

		raw, err := json.Marshal(body.Data)
		require.NoError(t, err)
		var result response_models.MarketResponse
		require.NoError(t, json.Unmarshal(raw, &result))

		require.Len(t, result.Data, 1)
		assert.Equal(t, "Khanna", result.Data[0].Market)
		assert.Len(t, result.Meta.States, 7)
	})

	t.Run("no params returns the full dataset", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/market", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body utils.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

		raw, err := json.Marshal(body.Data)
		require.NoError(t, err)
		var result response_models.MarketResponse
		require.NoError(t, json.Unmarshal(raw, &result))
		assert.Equal(t, 10, result.Meta.Total)
	})
}
