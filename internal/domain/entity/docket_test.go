package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones del remito: NEW → PROCESSING → COMPLETED, sin retroceso.
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_Tabla(t *testing.T) {
	cases := []struct {
		name string
		from entity.DocketStatus
		to   entity.DocketStatus
		want bool
	}{
		{"NEW a PROCESSING", entity.DocketStatusNew, entity.DocketStatusProcessing, true},
		{"NEW a COMPLETED (salto hacia adelante)", entity.DocketStatusNew, entity.DocketStatusCompleted, true},
		{"PROCESSING a COMPLETED", entity.DocketStatusProcessing, entity.DocketStatusCompleted, true},
		{"PROCESSING a NEW (retroceso)", entity.DocketStatusProcessing, entity.DocketStatusNew, false},
		{"COMPLETED a NEW (retroceso)", entity.DocketStatusCompleted, entity.DocketStatusNew, false},
		{"COMPLETED a PROCESSING (retroceso)", entity.DocketStatusCompleted, entity.DocketStatusProcessing, false},
		{"COMPLETED a COMPLETED (terminal)", entity.DocketStatusCompleted, entity.DocketStatusCompleted, false},
		{"NEW a NEW (sin cambio)", entity.DocketStatusNew, entity.DocketStatusNew, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.CanTransition(tc.from, tc.to))
		})
	}
}

func TestParseDocketStatus(t *testing.T) {
	for _, valid := range []string{"NEW", "PROCESSING", "COMPLETED"} {
		s, ok := entity.ParseDocketStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, entity.DocketStatus(valid), s)
	}
	_, ok := entity.ParseDocketStatus("CANCELLED")
	assert.False(t, ok, "estados fuera del conjunto cerrado se rechazan")
	_, ok = entity.ParseDocketStatus("new")
	assert.False(t, ok, "los estados distinguen mayúsculas")
}

func TestParseDocketType(t *testing.T) {
	_, ok := entity.ParseDocketType("IMPORT")
	assert.True(t, ok)
	_, ok = entity.ParseDocketType("EXPORT")
	assert.True(t, ok)
	_, ok = entity.ParseDocketType("ADJUST")
	assert.False(t, ok)
}

func TestInFlight(t *testing.T) {
	assert.True(t, entity.DocketStatusNew.InFlight())
	assert.True(t, entity.DocketStatusProcessing.InFlight())
	assert.False(t, entity.DocketStatusCompleted.InFlight())
}
