package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneta-app/moneta_backend/internal/utils/pagination"
)

func TestEncodeDecodeTokenRoundTrip(t *testing.T) {
	entryDate := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 14, 18, 30, 1, 123456789, time.UTC)

	token := pagination.EncodeToken(entryDate, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, entryDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!")
	assert.Error(t, err)

	// Valid base64 but not a cursor.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
