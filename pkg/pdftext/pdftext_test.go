package pdftext

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromBytesRejectsEmptyInput(t *testing.T) {
	_, err := FromBytes(context.Background(), nil)
	assert.Error(t, err)
}

func TestFromBytesRejectsGarbage(t *testing.T) {
	_, err := FromBytes(context.Background(), []byte("this is not a pdf document"))
	assert.Error(t, err)
}

func TestFromReaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromReader(ctx, strings.NewReader("%PDF-1.4"))
	assert.ErrorIs(t, err, context.Canceled)
}
