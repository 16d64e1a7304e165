package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackingQRGenerator(t *testing.T) {
	gen := TrackingQRGenerator{BaseURL: "http://localhost:8080"}

	data, err := gen.Generate("5f0c2e7a")
	assert.NoError(t, err)
	assert.NotEmpty(t, data)
}
