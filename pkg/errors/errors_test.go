package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/podmerge/pkg/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.New(errors.ErrFragmentRead, "cannot read fragment")
	assert.Equal(t, "[FRAGMENT_READ] cannot read fragment", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("permission denied"), errors.ErrManifestWrite, "cannot write manifest")
	assert.Equal(t, "[MANIFEST_WRITE] cannot write manifest: permission denied", wrapped.Error())
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrManifestWrite, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrManifestWrite, "ignored %s", "too"))
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := errors.Wrap(inner, errors.ErrManifestWrite, "write failed")

	assert.True(t, stderrors.Is(err, inner))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Newf(errors.ErrPodInstall, "pod install failed in %q", "/app")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrPodInstall, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrPodNotFound, "other code")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetCode(errors.New(errors.ErrConfigParse, "bad toml")))
	assert.Equal(t, errors.ErrUnknown, errors.GetCode(fmt.Errorf("plain error")))

	chained := fmt.Errorf("outer: %w", errors.New(errors.ErrNotFound, "gone"))
	assert.Equal(t, errors.ErrNotFound, errors.GetCode(chained))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFragmentRead, "boom").
		WithDetail("fragment", "plugins/a/Podfile").
		WithDetail("owner", "a")

	assert.Equal(t, "plugins/a/Podfile", err.Details["fragment"])
	assert.Equal(t, "a", err.Details["owner"])
}
