package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mvianna/api-produtos/internal/models"
	"github.com/mvianna/api-produtos/internal/services"
)

func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	productID := uuid.New()

	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name         string
		reqBody      CreateProductRequest
		mockSetup    func(m *MockProductCreator)
		expectedCode int
		rawBody      bool
	}{
		{
			name:    "success",
			reqBody: CreateProductRequest{Nome: "Café", Preco: 9.99},
			mockSetup: func(m *MockProductCreator) {
				// em_estoque omitted defaults to true
				m.EXPECT().
					Create(gomock.Any(), "Café", 9.99, true).
					Return(&models.ProductDB{ID: productID, Name: "Café", Price: 9.99, InStock: true}, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "explicit out of stock",
			reqBody: CreateProductRequest{Nome: "Chá", Preco: 4.5, EmEstoque: boolPtr(false)},
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Chá", 4.5, false).
					Return(&models.ProductDB{ID: productID, Name: "Chá", Price: 4.5, InStock: false}, nil)
			},
			expectedCode: 200,
		},
		{
			name:    "validation error",
			reqBody: CreateProductRequest{Nome: "", Preco: -1},
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), "", -1.0, true).
					Return(nil, services.ErrValidation)
			},
			expectedCode: 400,
		},
		{
			name:    "internal server error",
			reqBody: CreateProductRequest{Nome: "Café", Preco: 9.99},
			mockSetup: func(m *MockProductCreator) {
				m.EXPECT().
					Create(gomock.Any(), "Café", 9.99, true).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProductCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateProductHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/produtos/", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/produtos/", bytes.NewBuffer(bodyBytes))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var got models.ProductDB
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, productID, got.ID)
			}
		})
	}
}

func TestCreateProductHandler_ResponseFieldNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProductCreator(ctrl)
	mockSvc.EXPECT().
		Create(gomock.Any(), "Café", 9.99, true).
		Return(&models.ProductDB{ID: uuid.New(), Name: "Café", Price: 9.99, InStock: true}, nil)

	handler := NewCreateProductHandler(mockSvc)

	bodyBytes, _ := json.Marshal(CreateProductRequest{Nome: "Café", Preco: 9.99})
	req := httptest.NewRequest(http.MethodPost, "/produtos/", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "nome")
	assert.Contains(t, raw, "preco")
	assert.Contains(t, raw, "em_estoque")
}
