package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "necessaire", NormalizeText("Nécessaire"))
	assert.Equal(t, "bolsa termica", NormalizeText("Bolsa Térmica"))
	assert.Equal(t, "escritorio", NormalizeText("ESCRITÓRIO"))
	assert.Equal(t, "caneca", NormalizeText("caneca"))
	assert.Equal(t, "", NormalizeText(""))
}
