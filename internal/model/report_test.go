package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseReportType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		want      ReportType
		wantError error
	}{
		{
			name: "exact value",
			raw:  "united-orders",
			want: ReportUnitedOrders,
		},
		{
			name: "upper case value",
			raw:  "PRICES",
			want: ReportPrices,
		},
		{
			name:      "unknown value",
			raw:       "weekly-digest",
			want:      "",
			wantError: ErrUnknownReportType,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			typ, err := ParseReportType(test.raw)
			assert.Equal(t, test.want, typ)
			assert.ErrorIs(t, err, test.wantError)
		})
	}
}

func TestReportStatus_Terminal(t *testing.T) {
	t.Parallel()

	assert.True(t, ReportStatusDone.Terminal())
	assert.True(t, ReportStatusFailed.Terminal())
	assert.False(t, ReportStatusPending.Terminal())
	assert.False(t, ReportStatusProcessing.Terminal())
}
