package volume

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/evdnx/gotalib/indicator/core"
)

func TestVolumeIndicators_NotImplemented(t *testing.T) {
	prices := []float64{10, 11, 12, 11, 10}
	vol := []float64{100, 120, 90, 80, 150}

	out, err := AD(prices, prices, prices, vol)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, core.ErrNotImplemented), "%v", err)
	assert.Contains(t, err.Error(), "AD")

	out, err = OBV(prices, vol)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, core.ErrNotImplemented), "%v", err)
	assert.Contains(t, err.Error(), "OBV")
}
