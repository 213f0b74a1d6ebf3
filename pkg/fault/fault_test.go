package fault_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/adrianliechti/voicegate/pkg/fault"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, fault.KindValidation, fault.KindOf(fault.Validation("no text provided")))
	require.Equal(t, fault.KindUpstream, fault.KindOf(fault.Upstream("backend failed", nil)))
	require.Equal(t, fault.KindResource, fault.KindOf(fault.Resource("disk full", nil)))

	require.Equal(t, fault.Kind(""), fault.KindOf(errors.New("something else")))
	require.Equal(t, fault.Kind(""), fault.KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", fault.Upstream("backend failed", nil))
	require.Equal(t, fault.KindUpstream, fault.KindOf(err))
}

func TestStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, fault.Status(fault.Validation("empty file")))
	require.Equal(t, http.StatusInternalServerError, fault.Status(fault.Upstream("timeout", context.DeadlineExceeded)))
	require.Equal(t, http.StatusInternalServerError, fault.Status(fault.Resource("unwritable", nil)))
	require.Equal(t, http.StatusInternalServerError, fault.Status(errors.New("panic recovered")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fault.Upstream("transcription failed", cause)

	require.ErrorIs(t, err, cause)
	require.Equal(t, "transcription failed", err.Error())
}
