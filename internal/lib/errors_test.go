package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapErrorMatchesBoth(t *testing.T) {
	parent := errors.New("parent")
	child := fmt.Errorf("child")

	err := WrapError(parent, child)

	require.ErrorIs(t, err, parent)
	require.ErrorIs(t, err, child)
	require.Equal(t, "parent: child", err.Error())
}
