package yaml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/probset"
	"github.com/fwojciec/probset/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFolders(t *testing.T) {
	t.Parallel()

	t.Run("decodes a full table", func(t *testing.T) {
		t.Parallel()

		input := `
folders:
  - name: math_tasks
    behavior: default
    overrides:
      10th_task.html: table
    exclude:
      - field: text
        contains: [рисунок, рисунк]
  - name: yes_no_math_tasks
    behavior: yesno
`
		folders, err := yaml.LoadFolders(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, folders, 2)

		assert.Equal(t, "math_tasks", folders[0].Name)
		assert.Equal(t, probset.BehaviorDefault, folders[0].Behavior)
		assert.Equal(t, probset.BehaviorTable, folders[0].BehaviorFor("10th_task.html"))
		assert.Equal(t, []probset.Exclusion{
			{Field: probset.FieldText, Contains: []string{"рисунок", "рисунк"}},
		}, folders[0].Exclusions)

		assert.Equal(t, "yes_no_math_tasks", folders[1].Name)
		assert.Equal(t, probset.BehaviorYesNo, folders[1].Behavior)
		assert.Empty(t, folders[1].Exclusions)
	})

	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty document",
			input: "",
		},
		{
			name:  "no folders",
			input: "folders: []\n",
		},
		{
			name:  "unknown key",
			input: "folders:\n  - name: a\n    behavior: default\n    color: red\n",
		},
		{
			name:  "unknown behavior",
			input: "folders:\n  - name: a\n    behavior: essay\n",
		},
		{
			name:  "missing name",
			input: "folders:\n  - behavior: default\n",
		},
		{
			name:  "unknown override behavior",
			input: "folders:\n  - name: a\n    behavior: default\n    overrides:\n      1.html: essay\n",
		},
		{
			name:  "exclusion without substrings",
			input: "folders:\n  - name: a\n    behavior: default\n    exclude:\n      - field: text\n",
		},
		{
			name:  "duplicate folder",
			input: "folders:\n  - name: a\n    behavior: default\n  - name: a\n    behavior: yesno\n",
		},
		{
			name:  "not yaml",
			input: "folders: [\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := yaml.LoadFolders(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Equal(t, probset.EINVALID, probset.ErrorCode(err))
		})
	}
}

func TestWriteFolders(t *testing.T) {
	t.Parallel()

	t.Run("default table survives a round trip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, yaml.WriteFolders(&buf, probset.DefaultFolders()))

		folders, err := yaml.LoadFolders(&buf)
		require.NoError(t, err)
		assert.Equal(t, probset.DefaultFolders(), folders)
	})

	t.Run("writes the documented schema", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := yaml.WriteFolders(&buf, []probset.Folder{
			{Name: "russian_basis_tasks", Behavior: probset.BehaviorBasis},
		})
		require.NoError(t, err)

		assert.Equal(t, "folders:\n  - name: russian_basis_tasks\n    behavior: basis\n", buf.String())
	})
}
