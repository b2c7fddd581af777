package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gautam-Jha-13/ewallet-simulator/internal/domain"
	"github.com/Gautam-Jha-13/ewallet-simulator/internal/dto"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/auth"
	"github.com/Gautam-Jha-13/ewallet-simulator/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authorizedRequest(method, target string, body []byte, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestTransferHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful transfer",
			body: `{"to_wallet_id":2,"amount":200}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, 200.00).Return(&domain.Transaction{
					ID:           101,
					FromWalletID: 1,
					ToWalletID:   2,
					Amount:       200.00,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"to_wallet_id":2,"amount":5000}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, 5000.00).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: domain.ErrInsufficientBalance.Error(),
		},
		{
			name: "Recipient wallet not found",
			body: `{"to_wallet_id":99,"amount":200}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 99, 200.00).Return(nil, domain.ErrWalletNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrWalletNotFound.Error(),
		},
		{
			name: "Transfer to own wallet",
			body: `{"to_wallet_id":1,"amount":200}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 1, 200.00).Return(nil, domain.ErrSameWallet)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrSameWallet.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:         "Validation rejects negative amount",
			body:         `{"to_wallet_id":2,"amount":-5}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "Validation rejects sub-cent precision",
			body:         `{"to_wallet_id":2,"amount":0.004}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal error",
			body: `{"to_wallet_id":2,"amount":200}`,
			prepareMock: func() {
				service.EXPECT().Transfer(gomock.Any(), 1, 2, 200.00).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("POST", "/api/wallet/transfer", []byte(tt.body), 1)
			rr := httptest.NewRecorder()

			handler.Transfer(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.TransferResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, 101, resp.TransactionID)
				assert.Equal(t, 200.00, resp.Amount)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedBody  *dto.BalanceResponseDTO
		expectedError string
	}{
		{
			name: "Balance returned",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.Wallet{ID: 1, UserID: 1, Balance: 800.00}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.BalanceResponseDTO{WalletID: 1, Balance: 800.00},
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, domain.ErrWalletNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrWalletNotFound.Error(),
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", "/api/wallet/balance", nil, 1)
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp dto.BalanceResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedLen   int
		expectedError string
	}{
		{
			name: "History returned with direction labels",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return([]domain.TransactionView{
					{Transaction: domain.Transaction{ID: 102, FromWalletID: 2, ToWalletID: 1, Amount: 50.00, CreatedAt: now}, Type: domain.TransactionTypeCredit},
					{Transaction: domain.Transaction{ID: 101, FromWalletID: 1, ToWalletID: 2, Amount: 200.00, CreatedAt: now.Add(-time.Hour)}, Type: domain.TransactionTypeDebit},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Empty history",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 1).Return(nil, domain.ErrWalletNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: domain.ErrWalletNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authorizedRequest("GET", "/api/wallet/transactions", nil, 1)
			rr := httptest.NewRecorder()

			handler.GetTransactions(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp []dto.TransactionResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Len(t, resp, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, domain.TransactionTypeCredit, resp[0].Type)
					assert.Equal(t, domain.TransactionTypeDebit, resp[1].Type)
				}
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
