package collector_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Hasitha-J/tea-management/internal/collector"
)

func TestService_SetRate(t *testing.T) {
	collectorID := uuid.New()

	type args struct {
		month int
		year  int
		rate  decimal.Decimal
	}

	type testCase struct {
		name         string
		args         args
		setupMock    func(m *collector.MockRepository)
		wantRepriced int64
		wantErr      bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{month: 6, year: 2024, rate: decimal.NewFromInt(55)},
			setupMock: func(m *collector.MockRepository) {
				m.EXPECT().
					SetRate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *collector.Rate) (int64, error) {
						r.ID = uuid.New()
						return 3, nil
					})
			},
			wantRepriced: 3,
			wantErr:      false,
		},
		{
			name: "ZeroRateAllowed",
			args: args{month: 1, year: 2024, rate: decimal.Zero},
			setupMock: func(m *collector.MockRepository) {
				m.EXPECT().
					SetRate(gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantRepriced: 0,
			wantErr:      false,
		},
		{
			name:    "MonthTooLow",
			args:    args{month: 0, year: 2024, rate: decimal.NewFromInt(55)},
			wantErr: true,
		},
		{
			name:    "MonthTooHigh",
			args:    args{month: 13, year: 2024, rate: decimal.NewFromInt(55)},
			wantErr: true,
		},
		{
			name:    "NegativeRate",
			args:    args{month: 6, year: 2024, rate: decimal.NewFromInt(-1)},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{month: 6, year: 2024, rate: decimal.NewFromInt(55)},
			setupMock: func(m *collector.MockRepository) {
				m.EXPECT().
					SetRate(gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := collector.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := collector.NewService(repo)
			got, repriced, err := svc.SetRate(context.Background(), collectorID, tt.args.month, tt.args.year, tt.args.rate)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantRepriced, repriced)
			assert.Equal(t, collectorID, got.CollectorID)
			assert.Equal(t, tt.args.month, got.Month)
			assert.Equal(t, tt.args.year, got.Year)
			assert.True(t, got.Rate.Equal(tt.args.rate))
		})
	}
}

func TestService_RecordAdvance(t *testing.T) {
	collectorID := uuid.New()
	advanceDate := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	type args struct {
		amount      decimal.Decimal
		description string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *collector.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{amount: decimal.NewFromInt(5000), description: "festival advance"},
			setupMock: func(m *collector.MockRepository) {
				m.EXPECT().
					CreateAdvance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *collector.Advance) error {
						a.ID = uuid.New()
						return nil
					})
			},
			wantErr: false,
		},
		{
			name:    "ZeroAmount",
			args:    args{amount: decimal.Zero},
			wantErr: true,
		},
		{
			name:    "NegativeAmount",
			args:    args{amount: decimal.NewFromInt(-100)},
			wantErr: true,
		},
		{
			name: "RepoError",
			args: args{amount: decimal.NewFromInt(100)},
			setupMock: func(m *collector.MockRepository) {
				m.EXPECT().
					CreateAdvance(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := collector.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := collector.NewService(repo)
			got, err := svc.RecordAdvance(context.Background(), collectorID, advanceDate, tt.args.amount, tt.args.description)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, collectorID, got.CollectorID)
			assert.True(t, got.Amount.Equal(tt.args.amount))
			assert.Equal(t, tt.args.description, got.Description)
		})
	}
}

func TestService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := collector.NewMockRepository(ctrl)
	svc := collector.NewService(repo)

	repo.EXPECT().
		CreateCollector(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *collector.Collector) error {
			c.ID = uuid.New()
			return nil
		})

	got, err := svc.Add(context.Background(), "Silva", "077-1234567")
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Silva", got.Name)
	assert.Equal(t, "077-1234567", got.Contact)
}

func TestService_Rates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := collector.NewMockRepository(ctrl)
	svc := collector.NewService(repo)

	year := 2024
	filter := collector.RateFilter{Year: &year}

	repo.EXPECT().
		ListRates(gomock.Any(), filter).
		Return([]*collector.Rate{{ID: uuid.New()}}, nil)

	got, err := svc.Rates(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
