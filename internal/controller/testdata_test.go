package controller

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"

	m "camelize.dev/pkg/camelize/internal/model"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

func sampleResults() []m.FileResult {
	return []m.FileResult{
		{
			Source:    m.Source{Origin: &m.File{FullPath: "/tmp/project/src/index.php", ShortPath: "src/index.php"}},
			Original:  []byte("<?php $user_id = 1;\n"),
			Rewritten: []byte("<?php $userId = 1;\n"),
			Renames: []m.Rename{
				{Old: "user_id", New: "userId", Delta: -1, Occurrences: 1},
			},
			Diff: "--- a/src/index.php\n+++ b/src/index.php\n@@ -1 +1 @@\n-<?php $user_id = 1;\n+<?php $userId = 1;\n",
		},
		{
			Source:    m.Source{Origin: &m.File{FullPath: "/tmp/project/src/plain.php", ShortPath: "src/plain.php"}},
			Original:  []byte("<?php $plain = 1;\n"),
			Rewritten: []byte("<?php $plain = 1;\n"),
		},
		{
			Source: m.Source{Origin: &m.File{FullPath: "/tmp/project/src/broken.php", ShortPath: "src/broken.php"}},
			Err:    errors.New("syntax errors in source"),
		},
	}
}
