package simulation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/pkg/logger"
)

const sampleFile = "|0000|006|0|01012027|31012027|EMPRESA TESTE|11222333000181|\n" +
	"|C010|11222333000181|\n" +
	"|C100|1|0|P1||||||15012027||1000,00|||||||||1000,00|100,00||10,00|20,00||\n" +
	"|C500|||||||||05012027|||800,00|||||800,00|144,00|||13,20|60,80||\n" +
	"|C010|99888777000166|\n" +
	"|C100|0|0|P2||||||16012027||500,00|||||||||500,00|50,00||5,00|10,00||\n" +
	"|C600||||01012027||950,40||\n" +
	"|D010|33444555000122|\n" +
	"|D100|1|0|P3||||||20012027|||300,00|||||300,00|36,00||4,95|22,80||\n" +
	"|9999|10|\n"

func newImport(branches *fakeBranches, tx *fakeTx) *ImportUseCase {
	return NewImportUseCase(branches, tx.repo, tx, logger.Nop(), "auto")
}

func scope() Scope { return Scope{TenantID: "t1", CompanyID: "c1"} }

func TestImport_AgrupaPorCNPJYBloque(t *testing.T) {
	branch := &entity.Branch{ID: "b1", TenantID: "t1", CompanyID: "c1", CNPJ: "11222333000181"}
	branches := &fakeBranches{byCNPJ: map[string]*entity.Branch{"11222333000181": branch}}
	tx := &fakeTx{repo: newFakeEfd()}

	out, err := newImport(branches, tx).Import(context.Background(), scope(), strings.NewReader(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, "b1", out.BranchID)
	assert.Equal(t, "11222333000181", out.CNPJ)
	assert.Equal(t, 2, out.Goods)
	assert.Equal(t, 1, out.EnergyCredits)
	assert.Equal(t, 1, out.EnergyDebits)
	assert.Equal(t, 1, out.Freight)
	assert.Equal(t, 1, out.Ignored)
	require.NotNil(t, out.PeriodStart)
	assert.Equal(t, "2027-01-01", out.PeriodStart.Format("2006-01-02"))

	repo := tx.repo
	require.Len(t, repo.files, 1)
	assert.Equal(t, "b1", repo.files[0].BranchID)

	require.Len(t, repo.blocks, 3)
	assert.Equal(t, entity.BlockGoods, repo.blocks[0].Block)
	assert.Equal(t, "11222333000181", repo.blocks[0].CNPJ)
	assert.Equal(t, entity.BlockGoods, repo.blocks[1].Block)
	assert.Equal(t, "99888777000166", repo.blocks[1].CNPJ)
	assert.Equal(t, entity.BlockFreight, repo.blocks[2].Block)
	assert.Equal(t, "33444555000122", repo.blocks[2].CNPJ)
	assert.Equal(t, []int{0, 1, 0}, []int{repo.blocks[0].Seq, repo.blocks[1].Seq, repo.blocks[2].Seq})
	for _, b := range repo.blocks {
		assert.Equal(t, out.FileID, b.FileID)
		assert.Equal(t, "t1", b.TenantID)
	}

	assert.Len(t, repo.records[repo.blocks[0].ID], 2) // C100 + C500
	assert.Len(t, repo.records[repo.blocks[1].ID], 2) // C100 + C600
	assert.Len(t, repo.records[repo.blocks[2].ID], 1)
}

func TestImport_SinFilialDelCNPJUsaPrimeraDeLaEmpresa(t *testing.T) {
	branches := &fakeBranches{byCompany: map[string]*entity.Branch{
		"c1": {ID: "b9", TenantID: "t1", CompanyID: "c1", CNPJ: "12345678000195"},
	}}
	tx := &fakeTx{repo: newFakeEfd()}

	out, err := newImport(branches, tx).Import(context.Background(), scope(), strings.NewReader(sampleFile))
	require.NoError(t, err)
	assert.Equal(t, "b9", out.BranchID)
}

func TestImport_FilialDeOtroTenantNoCuenta(t *testing.T) {
	branches := &fakeBranches{byCNPJ: map[string]*entity.Branch{
		"11222333000181": {ID: "b1", TenantID: "otro", CNPJ: "11222333000181"},
	}}
	tx := &fakeTx{repo: newFakeEfd()}

	_, err := newImport(branches, tx).Import(context.Background(), scope(), strings.NewReader(sampleFile))
	assert.ErrorIs(t, err, domain.ErrNoBranch)
	assert.Zero(t, tx.calls)
}

func TestImport_ArchivoSinRegistros(t *testing.T) {
	tx := &fakeTx{repo: newFakeEfd()}
	_, err := newImport(&fakeBranches{}, tx).Import(context.Background(), scope(), strings.NewReader("hola\nmundo\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.calls)
}

func TestImport_ErrorEnLaTransaccion(t *testing.T) {
	branches := &fakeBranches{byCNPJ: map[string]*entity.Branch{
		"11222333000181": {ID: "b1", TenantID: "t1", CNPJ: "11222333000181"},
	}}
	repo := newFakeEfd()
	repo.failOn = entity.BlockFreight
	tx := &fakeTx{repo: repo}

	out, err := newImport(branches, tx).Import(context.Background(), scope(), strings.NewReader(sampleFile))
	assert.Error(t, err)
	assert.Nil(t, out)
}

func TestGroupByEntity_OrdenDePrimeraAparicion(t *testing.T) {
	a := entity.SpedRecord{CNPJ: "11.222.333/0001-81", VlDoc: 1}
	b := entity.SpedRecord{CNPJ: "99888777000166", VlDoc: 2}
	c := entity.SpedRecord{CNPJ: "11222333000181", VlDoc: 3}

	groups := groupByEntity([]entity.SpedRecord{a, b}, []entity.SpedRecord{c})

	require.Len(t, groups, 2)
	assert.Equal(t, "11222333000181", groups[0].cnpj)
	assert.Equal(t, []entity.SpedRecord{a, c}, groups[0].records)
	assert.Equal(t, "99888777000166", groups[1].cnpj)
}
