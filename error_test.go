package probset_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/probset"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := probset.Errorf(probset.ENOTFOUND, "folder %q not found", "math_tasks")

	assert.Equal(t, probset.ENOTFOUND, probset.ErrorCode(err))
	assert.Equal(t, "folder \"math_tasks\" not found", probset.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, probset.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, probset.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	inner := probset.Errorf(probset.ESTRUCTURE, "block 2: missing .answer")
	err := fmt.Errorf("math_tasks/1st_task.html: %w", inner)

	assert.Equal(t, probset.ESTRUCTURE, probset.ErrorCode(err))
	assert.Equal(t, "block 2: missing .answer", probset.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, probset.EINTERNAL, probset.ErrorCode(err))
	assert.Equal(t, "Internal error.", probset.ErrorMessage(err))
}
