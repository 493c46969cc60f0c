package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	name  string
	count int
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.name = "x" }),
		New(func(c *testConfig) error {
			c.count = 3
			return nil
		}),
	)
	require.NoError(t, err)
	require.Equal(t, "x", cfg.name)
	require.Equal(t, 3, cfg.count)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	boom := errors.New("bad option")
	cfg := &testConfig{}
	err := Apply(cfg,
		NoError(func(c *testConfig) { c.count = 1 }),
		New(func(*testConfig) error { return boom }),
		NoError(func(c *testConfig) { c.count = 2 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, cfg.count, "later options must not run")
}

func TestApply_NoOptions(t *testing.T) {
	require.NoError(t, Apply(&testConfig{}))
}
