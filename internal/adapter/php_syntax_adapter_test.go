package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "camelize.dev/pkg/camelize/internal/model"
)

const variablePattern = `(variable_name (name) @name)`

func TestLocalPHPSyntaxAdapter_ParseAndQuery(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()
	src := []byte("<?php\n$first = 1;\n$second_one = $first;\n")

	tree, err := a.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	defer tree.Close()

	assert.False(t, a.HasSyntaxErrors(tree))

	occurrences, err := a.Query(context.Background(), tree, src, []byte(variablePattern))
	require.NoError(t, err)
	require.Len(t, occurrences, 3)

	assert.Equal(t, m.Occurrence{
		StartByte: 7,
		EndByte:   12,
		Start:     m.Point{Row: 1, Column: 1},
		End:       m.Point{Row: 1, Column: 6},
		Text:      "first",
	}, occurrences[0])
	assert.Equal(t, "second_one", occurrences[1].Text)
	assert.Equal(t, "first", occurrences[2].Text)
	assert.Less(t, occurrences[1].StartByte, occurrences[2].StartByte)
}

func TestLocalPHPSyntaxAdapter_QueryPredicates(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()
	src := []byte("<?php $a_b = $ab + $a_b;")

	tree, err := a.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	defer tree.Close()

	occurrences, err := a.Query(context.Background(), tree, src,
		[]byte(`((variable_name (name) @name) (#match? @name "^a_b$"))`))
	require.NoError(t, err)
	require.Len(t, occurrences, 2)

	for _, occ := range occurrences {
		assert.Equal(t, "a_b", occ.Text)
	}
}

func TestLocalPHPSyntaxAdapter_InvalidQuery(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()
	src := []byte("<?php $a = 1;")

	tree, err := a.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	defer tree.Close()

	_, err = a.Query(context.Background(), tree, src, []byte(`(variable_name (name) @name`))
	require.Error(t, err)

	_, err = a.Query(context.Background(), tree, src, []byte(`(no_such_node) @x`))
	require.Error(t, err)
}

func TestLocalPHPSyntaxAdapter_QueryNilTree(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()

	_, err := a.Query(context.Background(), nil, nil, []byte(variablePattern))

	require.ErrorIs(t, err, ErrNilTree)
	assert.True(t, a.HasSyntaxErrors(nil))
}

func TestLocalPHPSyntaxAdapter_IncrementalParse(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()
	src := []byte("<?php $user_id = 1; echo $other;")

	tree, err := a.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	defer tree.Close()

	edited := []byte("<?php $userId = 1; echo $other;")
	tree.Edit(editFor(7, 14, 13))

	newTree, err := a.Parse(context.Background(), edited, tree)
	require.NoError(t, err)
	defer newTree.Close()

	occurrences, err := a.Query(context.Background(), newTree, edited, []byte(variablePattern))
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	assert.Equal(t, "userId", occurrences[0].Text)
	assert.Equal(t, "other", occurrences[1].Text)
	assert.Equal(t, 25, occurrences[1].StartByte)
}

func TestLocalPHPSyntaxAdapter_SyntaxErrors(t *testing.T) {
	a := NewLocalPHPSyntaxAdapter()
	src := []byte("<?php $a = ;")

	tree, err := a.Parse(context.Background(), src, nil)
	require.NoError(t, err)
	defer tree.Close()

	assert.True(t, a.HasSyntaxErrors(tree))
}
