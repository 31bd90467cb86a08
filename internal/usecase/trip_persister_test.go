package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gabrieltaylor/qpx/internal/domain"
	"github.com/gabrieltaylor/qpx/internal/infrastructure/logger"
)

func TestTripPersister_Persist(t *testing.T) {
	tests := []struct {
		name        string
		insertErr   error
		wantOutcome domain.PersistOutcome
		wantErr     bool
	}{
		{name: "inserted", wantOutcome: domain.PersistInserted},
		{name: "duplicate", insertErr: domain.ErrDuplicateTrip, wantOutcome: domain.PersistDuplicate},
		{name: "wrapped duplicate", insertErr: fmt.Errorf("%w: JFK-LHR", domain.ErrDuplicateTrip), wantOutcome: domain.PersistDuplicate},
		{name: "store failure", insertErr: errors.New("disk full"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			trips := domain.NewMockTripRepository(ctrl)
			trips.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.insertErr)

			outcome, err := NewTripPersister(trips, logger.Nop()).Persist(context.Background(), &domain.NormalizedTrip{
				StartAirportCode: "JFK",
				EndAirportCode:   "LHR",
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, domain.IsDuplicateTrip(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutcome, outcome)
		})
	}
}
