package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadhlanhapp/tokocalc-backend/repository"
)

func TestSalesService_MonthlySeries(t *testing.T) {
	service := NewSalesService(repository.NewSalesRepository())

	series := service.MonthlySeries()

	require.Len(t, series, 6)
	labels := make([]string, len(series))
	for i, point := range series {
		labels[i] = point.Label
	}
	assert.Equal(t, []string{"Januari", "Februari", "Maret", "April", "Mei", "Juni"}, labels)
	assertDecimal(t, "4500000", series[0].Value)
	assertDecimal(t, "5900000", series[5].Value)
}
