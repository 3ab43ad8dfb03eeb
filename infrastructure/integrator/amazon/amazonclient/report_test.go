package amazonclient

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipLines(t *testing.T, lines ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	for _, line := range lines {
		_, err := gz.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func TestDecodeReportRows(t *testing.T) {
	raw := gzipLines(t,
		`{"targetId":111,"impressions":400,"clicks":12,"cost":5.0,"purchases14d":2,"sales14d":20.0}`,
		``,
		`{"targetId":222,"impressions":30,"clicks":1,"cost":0.4,"attributedConversions14d":1,"attributedSales14d":8.0}`,
	)

	rows, err := decodeReportRows(raw)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "111", rows[0].TargetID.String())
	assert.Equal(t, 12, rows[0].Clicks)
	assert.Equal(t, 5.0, rows[0].Cost)

	// Colunas no formato antigo também são aceitas
	assert.Equal(t, "222", rows[1].TargetID.String())
	require.NotNil(t, rows[1].AttributedSales14d)
	assert.Equal(t, 8.0, *rows[1].AttributedSales14d)
}

func TestDecodeReportRows_GzipInvalido(t *testing.T) {
	_, err := decodeReportRows([]byte("não é gzip"))
	assert.Error(t, err)
}

func TestMetricsByTarget(t *testing.T) {
	raw := gzipLines(t,
		`{"targetId":111,"impressions":400,"clicks":12,"cost":5.0,"purchases14d":2,"sales14d":20.0}`,
		`{"targetId":222,"impressions":30,"clicks":1,"cost":0.4}`,
		`{"impressions":10,"clicks":1,"cost":0.1}`,
	)

	rows, err := decodeReportRows(raw)
	require.NoError(t, err)

	metrics := metricsByTarget(rows)
	require.Len(t, metrics, 2)

	// ACOS em percentual: custo / vendas * 100
	first := metrics["111"]
	assert.Equal(t, 400, first.Impressions)
	assert.Equal(t, 12, first.Clicks)
	assert.Equal(t, 2, first.Orders)
	assert.Equal(t, 20.0, first.Sales)
	require.NotNil(t, first.Acos)
	assert.Equal(t, 25.0, *first.Acos)

	// Sem venda no período o ACOS não é calculável
	second := metrics["222"]
	assert.Equal(t, 1, second.Clicks)
	assert.Nil(t, second.Acos)
}
