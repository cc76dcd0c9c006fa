package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"reconviewer/internal/domain"
	"reconviewer/internal/usecase"
	mock_usecase "reconviewer/internal/usecase/mocks"
)

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	bankDoc := domain.Document{Name: "statement.csv", MediaType: "text/csv", Content: []byte("bank")}
	ledgerDoc := domain.Document{Name: "ledger.csv", MediaType: "text/csv", Content: []byte("ledger")}

	tests := []struct {
		name            string
		mode            domain.Mode
		raw             map[string]any
		classifierError error
		wantMatched     int
		wantBankCount   int
		wantErr         bool
	}{
		{
			name: "successful classification is sanitized",
			mode: domain.ModeFast,
			raw: map[string]any{
				"matchedTransactions": []any{
					map[string]any{
						"bankTransaction":   map[string]any{"date": "2024-03-05", "description": "Acme", "amount": "3500.00", "type": "credit"},
						"ledgerTransaction": map[string]any{"date": "2024-03-05", "description": "Acme Corp", "amount": float64(-3500), "type": "debit"},
					},
				},
				"unmatchedBankTransactions": []any{
					map[string]any{"date": "2024-03-10", "description": "Fee", "amount": float64(25), "type": "debit"},
				},
				"summary": map[string]any{"asAtDate": "2024-03-31"},
			},
			wantMatched:   1,
			wantBankCount: 1,
		},
		{
			name:          "malformed response shape still yields a result",
			mode:          domain.ModePrecise,
			raw:           map[string]any{"matchedTransactions": "garbage"},
			wantMatched:   0,
			wantBankCount: 0,
		},
		{
			name:            "classifier failure is fatal to the attempt",
			mode:            domain.ModeFast,
			classifierError: errors.New("connection refused"),
			wantErr:         true,
		},
		{
			name:    "unknown mode is rejected before the call",
			mode:    domain.Mode("turbo"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			classifier := mock_usecase.NewMockClassifier(ctrl)
			if tt.mode.IsValid() {
				classifier.EXPECT().
					Classify(gomock.Any(), bankDoc, ledgerDoc, "2024-03-31", tt.mode).
					Return(tt.raw, tt.classifierError)
			}

			uc := usecase.NewReconciliationUseCase(classifier, zap.NewNop())
			result, err := uc.Reconcile(context.Background(), bankDoc, ledgerDoc, "2024-03-31", tt.mode)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, usecase.ErrReconciliationFailed)
				assert.Nil(t, result, "no partial result on failure")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantMatched, result.Summary.MatchedCount)
			assert.Equal(t, tt.wantBankCount, result.Summary.UnmatchedBankCount)
		})
	}
}

func TestReconciliationUseCase_SingleCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classifier := mock_usecase.NewMockClassifier(ctrl)
	// Exactly one invocation per attempt: a failure is never retried.
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("boom")).
		Times(1)

	uc := usecase.NewReconciliationUseCase(classifier, zap.NewNop())
	_, err := uc.Reconcile(context.Background(), domain.Document{}, domain.Document{}, "2024-03-31", domain.ModeFast)

	assert.ErrorIs(t, err, usecase.ErrReconciliationFailed)
}
