package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizar_MassaEmKg(t *testing.T) {
	n, err := Normalizar(dec("10.00"), dec("2"), CompraKg)
	require.NoError(t, err)

	assert.True(t, n.CustoBase.Equal(dec("5")), "custo base = %s", n.CustoBase)
	assert.Equal(t, UnidadeKg, n.UnidadeBase)
	assert.EqualValues(t, 1000, n.FatorConversao)
}

func TestNormalizar_MassaEmGramasEquivaleAKg(t *testing.T) {
	// mesmo pacote: R$ 10,00 por 2 kg == R$ 10,00 por 2000 g
	emKg, err := Normalizar(dec("10.00"), dec("2"), CompraKg)
	require.NoError(t, err)
	emG, err := Normalizar(dec("10.00"), dec("2000"), CompraG)
	require.NoError(t, err)

	assert.True(t, emKg.CustoBase.Equal(emG.CustoBase), "%s != %s", emKg.CustoBase, emG.CustoBase)
	assert.Equal(t, emKg.UnidadeBase, emG.UnidadeBase)
	assert.Equal(t, emKg.FatorConversao, emG.FatorConversao)
}

func TestNormalizar_VolumeEmMililitros(t *testing.T) {
	// R$ 12,00 por 2000 ml → R$ 6,00 por litro
	n, err := Normalizar(dec("12.00"), dec("2000"), CompraMl)
	require.NoError(t, err)

	assert.True(t, n.CustoBase.Equal(dec("6")), "custo base = %s", n.CustoBase)
	assert.Equal(t, UnidadeLitro, n.UnidadeBase)
	assert.EqualValues(t, 1000, n.FatorConversao)
}

func TestNormalizar_Contavel(t *testing.T) {
	// embalagens: R$ 25,00 por 10 unidades
	n, err := Normalizar(dec("25.00"), dec("10"), CompraUn)
	require.NoError(t, err)

	assert.True(t, n.CustoBase.Equal(dec("2.5")))
	assert.Equal(t, UnidadeUnidade, n.UnidadeBase)
	assert.EqualValues(t, 1, n.FatorConversao)
}

func TestNormalizar_PrecoZeroProduzCustoZero(t *testing.T) {
	n, err := Normalizar(dec("0"), dec("5"), CompraL)
	require.NoError(t, err)

	assert.True(t, n.CustoBase.IsZero())
}

func TestNormalizar_UnidadeDesconhecida(t *testing.T) {
	_, err := Normalizar(dec("10.00"), dec("1"), UnidadeCompra("arroba"))
	assert.Error(t, err)
}
