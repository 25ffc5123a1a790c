package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatGoAddsMissingImports(t *testing.T) {
	src := "package dtos\n\n" +
		"type Pet struct {\n" +
		"\tCreatedAt time.Time `json:\"createdAt\"`\n" +
		"\tID int64 `json:\"id\"`\n" +
		"}\n"

	got, err := FormatGo([]byte(src))
	require.NoError(t, err)
	require.Contains(t, string(got), `"time"`)
	require.Contains(t, string(got), "CreatedAt time.Time")
}

func TestFormatGoRejectsBrokenSource(t *testing.T) {
	_, err := FormatGo([]byte("package\n"))
	require.Error(t, err)
}
