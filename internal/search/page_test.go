package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaultLimit(t *testing.T) {
	page := PageRequest{Mode: ModeOffset}.Normalize(20)
	require.Equal(t, int64(20), page.Limit)

	page = PageRequest{Mode: ModeOffset, Limit: 5}.Normalize(20)
	require.Equal(t, int64(5), page.Limit)
}

func TestValidateLimitBounds(t *testing.T) {
	require.Error(t, PageRequest{Mode: ModeOffset, Limit: 0}.Validate(100))
	require.Error(t, PageRequest{Mode: ModeOffset, Limit: -1}.Validate(100))
	require.Error(t, PageRequest{Mode: ModeOffset, Limit: 101}.Validate(100))
	require.NoError(t, PageRequest{Mode: ModeOffset, Limit: 1}.Validate(100))
	require.NoError(t, PageRequest{Mode: ModeOffset, Limit: 100}.Validate(100))
}

func TestValidateOffset(t *testing.T) {
	require.Error(t, PageRequest{Mode: ModeOffset, Limit: 20, Offset: -1}.Validate(100))
	require.NoError(t, PageRequest{Mode: ModeOffset, Limit: 20, Offset: 0}.Validate(100))
}

func TestValidateCursor(t *testing.T) {
	negative := int64(-5)
	cursor := int64(17)
	require.Error(t, PageRequest{Mode: ModeCursor, Limit: 20, Cursor: &negative}.Validate(100))
	require.NoError(t, PageRequest{Mode: ModeCursor, Limit: 20, Cursor: nil}.Validate(100))
	require.NoError(t, PageRequest{Mode: ModeCursor, Limit: 20, Cursor: &cursor}.Validate(100))
}

func TestValidateUnknownMode(t *testing.T) {
	require.Error(t, PageRequest{Mode: "page", Limit: 20}.Validate(100))
}
