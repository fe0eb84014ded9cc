package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marcenaria_rampanelli/internal/adapter/http/handlers/mocks"
	"marcenaria_rampanelli/internal/domain/entities"
	"marcenaria_rampanelli/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaterialHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.Material{
		{ID: 1, Name: "Chapa MDF Branco 18mm", UnitPrice: 35000},
		{ID: 4, Name: "Dobradiça caneco 35mm", UnitPrice: 890},
	}, nil)

	r := gin.New()
	r.GET("/v1/materials", h.ListMaterials)

	req := httptest.NewRequest(http.MethodGet, "/v1/materials", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[0]["unit_price"].(float64) != 35000 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"unit_price":1000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		uc.EXPECT().Add(gomock.Any(), "Fita de borda 22mm", int64(4500)).
			Return(entities.Material{ID: 9, Name: "Fita de borda 22mm", UnitPrice: 4500}, nil)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"name":"Fita de borda 22mm","unit_price":4500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestMaterialHandler_UpdateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non-numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.PATCH("/v1/materials/:material_id", h.UpdateMaterial)

		req := httptest.NewRequest(http.MethodPatch, "/v1/materials/abc", bytes.NewBufferString(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		uc.EXPECT().Update(gomock.Any(), 99, gomock.Any()).
			Return(entities.Material{}, usecase.ErrMaterialNotFound)

		r := gin.New()
		r.PATCH("/v1/materials/:material_id", h.UpdateMaterial)

		req := httptest.NewRequest(http.MethodPatch, "/v1/materials/99", bytes.NewBufferString(`{"unit_price":2000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_DeleteMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	h := NewMaterialHandler(uc)

	uc.EXPECT().Remove(gomock.Any(), 4).Return(nil)

	r := gin.New()
	r.DELETE("/v1/materials/:material_id", h.DeleteMaterial)

	req := httptest.NewRequest(http.MethodDelete, "/v1/materials/4", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
