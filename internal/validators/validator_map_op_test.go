// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dumpman/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func op(name string, start, end uint32) models.MapOp {
	return models.MapOp{Type: models.OpCopy, Name: name, Start: start, End: end}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewMapOpValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("MapOp value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, op("beach", 1, 5)))
	})

	t.Run("MapOp pointer", func(t *testing.T) {
		o := op("beach", 1, 5)
		require.NoError(t, v.Validate(ctx, &o))
	})

	t.Run("MapOp slice", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, []models.MapOp{op("a", 1, 5), op("b", 5, 9)}))
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, op("beach", 1, 5), "nope")
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_MapOp
// ---------------------------------------------------------------------------

func TestValidate_MapOp(t *testing.T) {
	v := NewMapOpValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		op      models.MapOp
		wantErr error
	}{
		{name: "valid", op: op("beach", 10, 20)},
		{name: "single file range", op: op("beach", 10, 11)},
		{name: "empty range", op: op("beach", 10, 10), wantErr: ErrInvalidRange},
		{name: "reversed range", op: op("beach", 20, 10), wantErr: ErrInvalidRange},
		{name: "empty name", op: op("", 1, 2), wantErr: ErrInvalidName},
		{name: "blank name", op: op("   ", 1, 2), wantErr: ErrInvalidName},
		{name: "dot", op: op(".", 1, 2), wantErr: ErrInvalidName},
		{name: "dot dot", op: op("..", 1, 2), wantErr: ErrInvalidName},
		{name: "slash", op: op("a/b", 1, 2), wantErr: ErrInvalidName},
		{name: "backslash", op: op(`a\b`, 1, 2), wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.op)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("unknown type", func(t *testing.T) {
		o := op("beach", 1, 2)
		o.Type = "link"
		assert.Error(t, v.Validate(ctx, o))
	})

	t.Run("only range field", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, op("", 1, 2), FieldRange))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_MapOps
// ---------------------------------------------------------------------------

func TestValidate_MapOps_Empty(t *testing.T) {
	err := NewMapOpValidator().Validate(context.Background(), []models.MapOp{})
	require.ErrorIs(t, err, ErrNoOperations)
	assert.Equal(t, "No operations defined! Exiting.", err.Error())
}

func TestValidate_MapOps_Overlaps(t *testing.T) {
	v := NewMapOpValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		ops     []models.MapOp
		overlap bool
	}{
		{name: "adjacent", ops: []models.MapOp{op("a", 1, 5), op("b", 5, 9)}},
		{name: "disjoint out of order", ops: []models.MapOp{op("a", 20, 30), op("b", 1, 5)}},
		{name: "equal starts", ops: []models.MapOp{op("a", 1, 5), op("b", 1, 3)}, overlap: true},
		{name: "contained", ops: []models.MapOp{op("a", 1, 10), op("b", 3, 4)}, overlap: true},
		{name: "partial", ops: []models.MapOp{op("a", 5, 10), op("b", 1, 6)}, overlap: true},
		{name: "identical", ops: []models.MapOp{op("a", 1, 5), op("b", 1, 5)}, overlap: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.ops)
			if !tt.overlap {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrOverlappingRange)
		})
	}
}

func TestValidate_MapOps_OverlapMessage(t *testing.T) {
	err := NewMapOpValidator().Validate(context.Background(),
		[]models.MapOp{op("a", 1, 5), op("b", 4, 8)})

	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, "a (1..5) overlaps b (4..8)", err.Error())
	assert.Equal(t, "a", overlap.A.Name)
	assert.Equal(t, "b", overlap.B.Name)
}

func TestValidate_MapOps_DuplicateNames(t *testing.T) {
	err := NewMapOpValidator().Validate(context.Background(),
		[]models.MapOp{op("Beach", 1, 5), op("beach", 5, 9)})

	var nameErr *NameError
	require.True(t, errors.As(err, &nameErr))
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, "beach", nameErr.Op.Name)
}

func TestValidate_MapOps_InvalidMember(t *testing.T) {
	err := NewMapOpValidator().Validate(context.Background(),
		[]models.MapOp{op("a", 1, 5), op("b", 9, 9)})

	var rangeErr *RangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "b", rangeErr.Op.Name)
}
