package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVIN(t *testing.T) {
	text := "VEHICLE IDENTIFICATION NUMBER 2HGFC2F59JH512345 MAKE HONDA"
	assert.Equal(t, "2HGFC2F59JH512345", ExtractVIN(text))
}

func TestExtractVINLowercaseInput(t *testing.T) {
	assert.Equal(t, "2HGFC2F59JH512345", ExtractVIN("vin: 2hgfc2f59jh512345"))
}

func TestExtractVINNoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractVIN(""))
	assert.Equal(t, "", ExtractVIN("no vin in this text"))
	// I, O and Q never appear in a VIN
	assert.Equal(t, "", ExtractVIN("IOQFC2F59JH512345"))
	// too short
	assert.Equal(t, "", ExtractVIN("2HGFC2F59JH51234"))
}
