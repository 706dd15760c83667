package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockmaster-api/pkg/search"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tornillería", "tornilleria"},
		{"CAMIÓN", "camion"},
		{"Ñandú", "nandu"},
		{"sku-123", "sku-123"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, search.Fold(tt.in), tt.in)
	}
}
