package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calebcase/bigint/integer"
	"github.com/calebcase/oops"
)

func TestParseFlags(t *testing.T) {
	type TC struct {
		args []string
		op   string
		err  bool
		Mark error
	}

	tcs := []TC{
		{args: []string{"1", "2"}, op: "all", Mark: oops.New("unexpected")},
		{args: []string{"-op", "mul", "1", "2"}, op: "mul", Mark: oops.New("unexpected")},
		{args: []string{"-op", "cmp", "--", "-1", "-2"}, op: "cmp", Mark: oops.New("unexpected")},
		{args: []string{"-op", "mod", "1", "2"}, err: true, Mark: oops.New("unexpected")},
		{args: []string{"1"}, err: true, Mark: oops.New("unexpected")},
		{args: []string{"1", "2", "3"}, err: true, Mark: oops.New("unexpected")},
		{args: []string{"-nope", "1", "2"}, err: true, Mark: oops.New("unexpected")},
	}

	for _, tc := range tcs {
		cfg, err := parseFlags(tc.args)
		if tc.err {
			require.Error(t, err, tc.Mark)
			require.True(t, Error.Has(err), tc.Mark)

			continue
		}

		require.NoError(t, err, tc.Mark)
		require.Equal(t, tc.op, cfg.op, tc.Mark)
		require.Len(t, cfg.args, 2, tc.Mark)
	}
}

func TestRun(t *testing.T) {
	cfg, err := parseFlags([]string{"--", "99999999", "-900009"})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	err = run(cfg, buf, zap.NewNop())
	require.NoError(t, err)

	out := buf.String()
	t.Logf("Output:\n%s", out)

	for _, want := range []string{"add", "99099990", "100900008", "-90000899099991", "-111", ">"} {
		require.Contains(t, out, want)
	}
}

func TestRunBinary(t *testing.T) {
	cfg, err := parseFlags([]string{"-op", "add", "-binary", "5", "2"})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, run(cfg, buf, zap.NewNop()))
	require.Contains(t, buf.String(), "111")
	require.NotContains(t, buf.String(), "mul")
}

func TestRunErrors(t *testing.T) {
	cfg, err := parseFlags([]string{"-op", "quo", "1", "0"})
	require.NoError(t, err)

	err = run(cfg, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	require.True(t, integer.ErrDivisionByZero.Has(err))

	cfg, err = parseFlags([]string{"1x", "0"})
	require.NoError(t, err)

	err = run(cfg, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	require.True(t, integer.ErrInvalidDigit.Has(err))
}

func TestEvaluateCmp(t *testing.T) {
	for _, tc := range []struct{ a, b, want string }{
		{"90", "45", ">"},
		{"45", "90", "<"},
		{"0", "-0", "=="},
	} {
		got, err := evaluate("cmp", integer.MustParse(tc.a), integer.MustParse(tc.b), false)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := evaluate("pow", integer.Int{}, integer.Int{}, false)
	require.Error(t, err)
}
