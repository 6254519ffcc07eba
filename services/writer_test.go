package services

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	converter "github.com/fxcache/converter"
)

func TestResultWriterSave(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	path := filepath.Join(t.TempDir(), "output.json")
	writer := ResultWriter{Path: path}

	err := writer.Save(converter.ConversionResult{
		Input:  converter.ConversionInput{Amount: 300.0, Currency: "USD"},
		Output: map[string]float64{"CZK": 5000.0},
	})

	assert.NoError(err)

	data, err := ioutil.ReadFile(path)
	assert.NoError(err)
	assert.JSONEq(`{"input":{"amount":300,"currency":"USD"},"output":{"CZK":5000}}`, string(data))
}

func TestResultWriterUnwritablePath(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	writer := ResultWriter{Path: filepath.Join(t.TempDir(), "no-such-dir", "output.json")}

	err := writer.Save(converter.ConversionResult{})

	assert.Error(err)
}
