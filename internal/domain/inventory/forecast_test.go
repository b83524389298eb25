package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-inventory/internal/domain"
	"github.com/jhoicas/smart-inventory/internal/domain/inventory"
)

func TestForecastDemand(t *testing.T) {
	cases := []struct {
		name  string
		sales []int
		want  int
	}{
		{"media 4.75 redondea a 5", []int{5, 3, 4, 7}, 5},
		{"media exacta 12", []int{15, 20, 5, 8}, 12},
		{"media 2.5 redondea hacia arriba", []int{2, 1, 3, 4}, 3},
		{"media 1.33 redondea a 1", []int{1, 1, 2}, 1},
		{"un solo periodo", []int{9}, 9},
		{"todo cero", []int{0, 0, 0}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := inventory.ForecastDemand(c.sales)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestForecastDemand_SinHistorial(t *testing.T) {
	_, err := inventory.ForecastDemand(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = inventory.ForecastDemand([]int{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
