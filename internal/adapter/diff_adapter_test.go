package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDiffAdapter_Unified(t *testing.T) {
	original := []byte("<?php\n$user_id = 1;\necho 'user_id';\n")
	rewritten := []byte("<?php\n$userId = 1;\necho 'user_id';\n")

	diff, err := NewLocalDiffAdapter().Unified("src/index.php", original, rewritten)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- a/src/index.php\n")
	assert.Contains(t, diff, "+++ b/src/index.php\n")
	assert.Contains(t, diff, "-$user_id = 1;\n")
	assert.Contains(t, diff, "+$userId = 1;\n")
	assert.Contains(t, diff, " echo 'user_id';\n")
}

func TestLocalDiffAdapter_UnifiedNoChange(t *testing.T) {
	src := []byte("<?php $userId = 1;\n")

	diff, err := NewLocalDiffAdapter().Unified("index.php", src, src)
	require.NoError(t, err)
	assert.Empty(t, diff)
}
