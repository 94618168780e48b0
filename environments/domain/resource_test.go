package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGcpResource_Validate(t *testing.T) {
	tests := []struct {
		name     string
		resource GcpResource
		wantErr  error
	}{
		{
			name:     "Resource with a project is valid",
			resource: GcpResource{Project: "proj-a"},
		},
		{
			name: "Resource without a project is invalid",
			resource: GcpResource{
				Extra: map[string]interface{}{"region": "us-east1"},
			},
			wantErr: ErrProjectRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resource.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}
