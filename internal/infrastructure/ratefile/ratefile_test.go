package ratefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-reforma/internal/domain"
	"github.com/jhoicas/simulador-reforma/internal/domain/entity"
	"github.com/jhoicas/simulador-reforma/internal/domain/projection"
	"github.com/jhoicas/simulador-reforma/internal/infrastructure/ratefile"
)

const sample = `aliquotas:
  - ano: 2029
    ibs: 0.3
    cbs: 2.7
    reduc_icms: 40
  - ano: 2027
    ibs: 0.1
    cbs: 0.9
    reduc_icms: 10
`

func TestParse_ConservaOrden(t *testing.T) {
	rates, err := ratefile.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, entity.TaxRateYear{Year: 2029, PercIBS: 0.3, PercCBS: 2.7, PercReducICMS: 40}, rates[0])
	assert.Equal(t, 2027, rates[1].Year)
}

func TestParse_Invalidos(t *testing.T) {
	_, err := ratefile.Parse([]byte("aliquotas:\n  - ano: 2027\n    reduc_icms: 120\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = ratefile.Parse([]byte("aliquotas:\n  - ano: 2027\n  - ano: 2027\n"))
	assert.Error(t, err)

	_, err = ratefile.Parse([]byte("aliquotas:\n  - anio: 2027\n"))
	assert.Error(t, err, "campos desconocidos")
}

func TestMarshal_IdaYVuelta(t *testing.T) {
	b, err := ratefile.Marshal(projection.DefaultSchedule())
	require.NoError(t, err)
	back, err := ratefile.Parse(b)
	require.NoError(t, err)
	assert.Equal(t, projection.DefaultSchedule(), back)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	rates, err := ratefile.Load(path)
	require.NoError(t, err)
	assert.Len(t, rates, 2)

	_, err = ratefile.Load(filepath.Join(t.TempDir(), "no-existe.yaml"))
	assert.Error(t, err)
}

func TestWriteSeedSQL(t *testing.T) {
	rates, err := ratefile.Parse([]byte(sample))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, ratefile.WriteSeedSQL(&sb, rates))
	out := sb.String()

	assert.Contains(t, out, "INSERT INTO tabela_aliquota")
	assert.Less(t, strings.Index(out, "(2027, 0.10, 0.90, 10.00),"), strings.Index(out, "(2029, 0.30, 2.70, 40.00)\n"))
	assert.True(t, strings.HasSuffix(out, "perc_reduc_icms = EXCLUDED.perc_reduc_icms;\n"))
}
