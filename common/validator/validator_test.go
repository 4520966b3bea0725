package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/narender/product-console/common/apierrors"
)

type priced struct {
	Name  string `validate:"required"`
	Price string `validate:"positive_decimal"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload priced
		wantErr bool
		tag     string
	}{
		{name: "valid", payload: priced{Name: "Widget", Price: "9.99"}},
		{name: "integer price", payload: priced{Name: "Widget", Price: "12"}},
		{name: "empty name", payload: priced{Name: "", Price: "1"}, wantErr: true, tag: "required"},
		{name: "spaces are a name", payload: priced{Name: "   ", Price: "1"}},
		{name: "zero price", payload: priced{Name: "Widget", Price: "0"}, wantErr: true, tag: "positive_decimal"},
		{name: "negative price", payload: priced{Name: "Widget", Price: "-3.5"}, wantErr: true, tag: "positive_decimal"},
		{name: "not a number", payload: priced{Name: "Widget", Price: "abc"}, wantErr: true, tag: "positive_decimal"},
		{name: "empty price", payload: priced{Name: "Widget", Price: ""}, wantErr: true, tag: "positive_decimal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ValidateRequest(tt.payload)
			if !tt.wantErr {
				assert.Nil(t, appErr)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, apierrors.ErrCodeRequestValidation, appErr.Code)
			assert.Contains(t, appErr.Message, tt.tag)
		})
	}
}
