package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomReservationService/pkg/ptr"
)

func TestValidateRequest(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "valid request",
			req: &Request{
				UserID:    1,
				StartTime: start,
				EndTime:   end,
			},
			wantErr: nil,
		},
		{
			name: "valid request with note",
			req: &Request{
				UserID:    1,
				StartTime: start,
				EndTime:   end,
				Note:      ptr.Ptr("встреча команды"),
			},
			wantErr: nil,
		},
		{
			name: "zero user id",
			req: &Request{
				UserID:    0,
				StartTime: start,
				EndTime:   end,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "negative user id",
			req: &Request{
				UserID:    -5,
				StartTime: start,
				EndTime:   end,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "zero start time",
			req: &Request{
				UserID:  1,
				EndTime: end,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "zero end time",
			req: &Request{
				UserID:    1,
				StartTime: start,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "note too long",
			req: &Request{
				UserID:    1,
				StartTime: start,
				EndTime:   end,
				Note:      ptr.Ptr(strings.Repeat("a", 501)),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInterval(t *testing.T) {
	start := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:    "start before end",
			start:   start,
			end:     start.Add(time.Hour),
			wantErr: nil,
		},
		{
			name:    "start equals end",
			start:   start,
			end:     start,
			wantErr: ErrInvalidRange,
		},
		{
			name:    "start after end",
			start:   start.Add(time.Hour),
			end:     start,
			wantErr: ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInterval(tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNotInPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		wantErr error
	}{
		{
			name:    "start in the future",
			start:   now.Add(time.Hour),
			wantErr: nil,
		},
		{
			name:    "start exactly now",
			start:   now,
			wantErr: nil,
		},
		{
			name:    "start in the past",
			start:   now.Add(-time.Minute),
			wantErr: ErrPastStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateNotInPast(tt.start, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
