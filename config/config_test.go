package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Hasini", cfg.Owner)
	assert.Equal(t, "10000.00", cfg.Balance.StringFixed(2))
	require.Len(t, cfg.Instruments, 4)

	assert.Equal(t, "AAPL", cfg.Instruments[0].Symbol)
	assert.Equal(t, "Apple Inc.", cfg.Instruments[0].Name)
	assert.Equal(t, "175.20", cfg.Instruments[0].Price.StringFixed(2))
	assert.Equal(t, "TSLA", cfg.Instruments[3].Symbol)
	assert.Equal(t, "920.00", cfg.Instruments[3].Price.StringFixed(2))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
owner: Vera
balance: "2500.50"
instruments:
  - symbol: nvda
    name: NVIDIA Corp.
    price: "455.70"
  - symbol: AMD
    name: Advanced Micro Devices
    price: "102.30"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Vera", cfg.Owner)
	assert.Equal(t, "2500.50", cfg.Balance.StringFixed(2))
	require.Len(t, cfg.Instruments, 2)
	// symbols are normalized to upper case
	assert.Equal(t, "NVDA", cfg.Instruments[0].Symbol)
	assert.Equal(t, "455.70", cfg.Instruments[0].Price.StringFixed(2))
}

func TestLoad_EmptyFieldsKeepDefaults(t *testing.T) {
	path := writeConfig(t, "owner: Vera\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Vera", cfg.Owner)
	assert.Equal(t, "10000.00", cfg.Balance.StringFixed(2))
	assert.Len(t, cfg.Instruments, 4)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad balance":      "balance: lots\n",
		"negative balance": "balance: \"-5\"\n",
		"bad price":        "instruments:\n  - symbol: AAPL\n    price: cheap\n",
		"negative price":   "instruments:\n  - symbol: AAPL\n    price: \"-1\"\n",
		"empty symbol":     "instruments:\n  - symbol: \"\"\n    price: \"1.00\"\n",
		"duplicate symbol": "instruments:\n  - symbol: AAPL\n    price: \"1.00\"\n  - symbol: aapl\n    price: \"2.00\"\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestFileConfig_RoundTrip(t *testing.T) {
	fc := FileConfig{
		Owner:   "Hasini",
		Balance: "10000.00",
		Instruments: []InstrumentConfig{
			{Symbol: "AAPL", Name: "Apple Inc.", Price: "175.20"},
		},
	}

	data, err := yaml.Marshal(fc)
	require.NoError(t, err)

	cfg, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)

	assert.Equal(t, "Hasini", cfg.Owner)
	assert.Equal(t, "10000.00", cfg.Balance.StringFixed(2))
	require.Len(t, cfg.Instruments, 1)
	assert.Equal(t, "AAPL", cfg.Instruments[0].Symbol)
}
