package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

func transferWith(exp, imp entity.DocketStatus) *entity.Transfer {
	return &entity.Transfer{
		ID:   "t1",
		Code: "TR-001",
		ExportDocket: &entity.Docket{
			ID: "d-exp", Type: entity.DocketTypeExport, Status: exp,
		},
		ImportDocket: &entity.Docket{
			ID: "d-imp", Type: entity.DocketTypeImport, Status: imp,
		},
	}
}

// El estado compuesto solo es COMPLETED cuando ambos remitos lo son;
// en cualquier otro caso gobierna el miembro más atrasado.
func TestTransferStatus_Compuesto(t *testing.T) {
	cases := []struct {
		name     string
		exp, imp entity.DocketStatus
		want     entity.DocketStatus
	}{
		{"ambos NEW", entity.DocketStatusNew, entity.DocketStatusNew, entity.DocketStatusNew},
		{"ambos PROCESSING", entity.DocketStatusProcessing, entity.DocketStatusProcessing, entity.DocketStatusProcessing},
		{"ambos COMPLETED", entity.DocketStatusCompleted, entity.DocketStatusCompleted, entity.DocketStatusCompleted},
		{"export COMPLETED, import PROCESSING", entity.DocketStatusCompleted, entity.DocketStatusProcessing, entity.DocketStatusProcessing},
		{"export NEW, import COMPLETED", entity.DocketStatusNew, entity.DocketStatusCompleted, entity.DocketStatusNew},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, transferWith(tc.exp, tc.imp).Status())
		})
	}
}
