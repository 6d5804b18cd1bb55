package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRecords = `seqA
ATGAAATAACCCCCCCCG
seqB
ggcc
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(twoRecords), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "seqA", records[0].Name)
	assert.Len(t, records[0].ORFs, 1)
	require.Len(t, records[0].Homopolymers, 1)
	assert.Equal(t, "Cx8", records[0].Homopolymers[0].Label())
	assert.Equal(t, "GGCC", records[1].Seq)
	assert.Equal(t, 100.0, records[1].GC)
}

func TestReadRecordsMissingSeq(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("lonely\n"), 0)
	assert.Error(t, err)
}

func TestWriteTable(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(twoRecords), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTable(records, bufio.NewWriter(&buf)))
	assert.Equal(t,
		"seqA\t18\t55.56\t1\t9\tCx8\n"+
			"seqB\t4\t100.00\t0\t0\t.\n",
		buf.String())
}

func TestGCHist(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(twoRecords+twoRecords), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeHist(GCHist(records), bufio.NewWriter(&buf)))
	assert.Equal(t, "55.56\t2\n100.00\t2\n", buf.String())
}

func BenchmarkSprintf(b *testing.B) {
	var f float64 = 123.456
	for i := 0; i < b.N; i++ {
		_ = fmt.Sprintf("%.2f", f)
	}
}

func BenchmarkFormatFloat(b *testing.B) {
	var f float64 = 123.456
	for i := 0; i < b.N; i++ {
		_ = strconv.FormatFloat(f, 'f', 2, 64)
	}
}
