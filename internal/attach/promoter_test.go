package attach

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
)

func stageBatch(t *testing.T, s *Stager, names ...string) []model.StagedFile {
	t.Helper()
	staged := make([]model.StagedFile, 0, len(names))
	for i, name := range names {
		f, err := s.Stage(name, strings.NewReader(fmt.Sprintf("content-%d", i)))
		require.NoError(t, err)
		staged = append(staged, f)
	}
	return staged
}

func TestPromoteNumbersFilesInUploadOrder(t *testing.T) {
	tempRoot := filepath.Join(t.TempDir(), "staging")
	attachRoot := filepath.Join(t.TempDir(), "images")
	s := NewStager(tempRoot, discardLogger())
	p := NewPromoter(attachRoot, 2, discardLogger())

	staged := stageBatch(t, s, "front.png", "back.png", "side.png")

	paths, err := p.Promote(context.Background(), 7, staged, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"7/Image-1-front.png",
		"7/Image-2-back.png",
		"7/Image-3-side.png",
	}, paths)

	for i, rel := range paths {
		content, err := os.ReadFile(filepath.Join(attachRoot, filepath.FromSlash(rel)))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("content-%d", i), string(content))
	}

	// temp originals were consumed
	for _, f := range staged {
		_, err := os.Stat(f.TempPath)
		assert.True(t, os.IsNotExist(err))
	}
}

func TestPromoteContinuesNumberingFromOffset(t *testing.T) {
	s := NewStager(filepath.Join(t.TempDir(), "staging"), discardLogger())
	p := NewPromoter(t.TempDir(), 1, discardLogger())

	staged := stageBatch(t, s, "extra.png")

	paths, err := p.Promote(context.Background(), 3, staged, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"3/Image-3-extra.png"}, paths)
}

func TestPromoteEmptyBatchIsANoop(t *testing.T) {
	attachRoot := filepath.Join(t.TempDir(), "images")
	p := NewPromoter(attachRoot, 4, discardLogger())

	paths, err := p.Promote(context.Background(), 1, nil, 0)
	require.NoError(t, err)
	assert.Nil(t, paths)

	_, statErr := os.Stat(filepath.Join(attachRoot, "1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPromoteRollsBackBatchOnFailure(t *testing.T) {
	tempRoot := filepath.Join(t.TempDir(), "staging")
	attachRoot := filepath.Join(t.TempDir(), "images")
	s := NewStager(tempRoot, discardLogger())
	p := NewPromoter(attachRoot, 1, discardLogger())

	staged := stageBatch(t, s, "ok.png", "broken.png")
	require.NoError(t, os.Remove(staged[1].TempPath))

	_, err := p.Promote(context.Background(), 9, staged, 0)
	require.Error(t, err)

	var pe *domainErrors.PromoteError
	require.True(t, errors.As(err, &pe), "expected PromoteError, got %v", err)
	assert.Equal(t, "broken.png", pe.File)

	// nothing from the batch survives under the order directory
	entries, readErr := os.ReadDir(filepath.Join(attachRoot, "9"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestPromoteHonorsCancelledContext(t *testing.T) {
	s := NewStager(filepath.Join(t.TempDir(), "staging"), discardLogger())
	p := NewPromoter(t.TempDir(), 1, discardLogger())

	staged := stageBatch(t, s, "a.png", "b.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Promote(ctx, 5, staged, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscardRemovesOrderDirectory(t *testing.T) {
	attachRoot := t.TempDir()
	s := NewStager(filepath.Join(t.TempDir(), "staging"), discardLogger())
	p := NewPromoter(attachRoot, 2, discardLogger())

	staged := stageBatch(t, s, "a.png")
	_, err := p.Promote(context.Background(), 4, staged, 0)
	require.NoError(t, err)

	require.NoError(t, p.Discard(4))
	_, statErr := os.Stat(filepath.Join(attachRoot, "4"))
	assert.True(t, os.IsNotExist(statErr))

	// discarding an order without attachments is not an error
	assert.NoError(t, p.Discard(4))
}

func TestRemoveBatchLeavesOtherAttachmentsAlone(t *testing.T) {
	attachRoot := t.TempDir()
	s := NewStager(filepath.Join(t.TempDir(), "staging"), discardLogger())
	p := NewPromoter(attachRoot, 2, discardLogger())

	first := stageBatch(t, s, "old.png")
	_, err := p.Promote(context.Background(), 6, first, 0)
	require.NoError(t, err)

	second := stageBatch(t, s, "new.png")
	newPaths, err := p.Promote(context.Background(), 6, second, 1)
	require.NoError(t, err)

	p.RemoveBatch(newPaths)

	_, err = os.Stat(filepath.Join(attachRoot, "6", "Image-1-old.png"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(attachRoot, "6", "Image-2-new.png"))
	assert.True(t, os.IsNotExist(err))
}
