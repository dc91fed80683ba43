package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyroom/shared/model"
)

func TestDay_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    model.Day
		wantErr bool
	}{
		{name: "driver time", src: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), want: "2025-03-14"},
		{name: "text", src: "2025-03-14", want: "2025-03-14"},
		{name: "timestamp text", src: []byte("2025-03-14T00:00:00Z"), want: "2025-03-14"},
		{name: "null", src: nil, want: ""},
		{name: "unsupported", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var day model.Day

			err := day.Scan(tt.src)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, day)
		})
	}
}

func TestDay_Value(t *testing.T) {
	value, err := model.Day("2025-03-14").Value()

	assert.NoError(t, err)
	assert.Equal(t, "2025-03-14", value)
}
