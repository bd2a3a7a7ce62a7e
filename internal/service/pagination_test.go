package service

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestProperty_NormalizePage(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("normalized page and size are positive", prop.ForAll(
		func(page, pageSize int) bool {
			p, s := normalizePage(page, pageSize)
			return p >= 1 && s >= 1
		},
		gen.Int(),
		gen.Int(),
	))

	properties.Property("positive values are kept", prop.ForAll(
		func(page, pageSize int) bool {
			p, s := normalizePage(page, pageSize)
			return p == page && s == pageSize
		},
		gen.IntRange(1, math.MaxInt32),
		gen.IntRange(1, MaxPageSize),
	))

	properties.TestingRun(t)
}

func TestProperty_PageOffset(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("offset skips every previous page", prop.ForAll(
		func(page, pageSize int) bool {
			return pageOffset(page, pageSize) == (page-1)*pageSize
		},
		gen.IntRange(1, 100000),
		gen.IntRange(1, MaxPageSize),
	))

	properties.Property("offset stays within int32", prop.ForAll(
		func(page, pageSize int) bool {
			offset := pageOffset(page, pageSize)
			return offset >= 0 && offset <= math.MaxInt32
		},
		gen.IntRange(1, math.MaxInt64),
		gen.IntRange(1, MaxPageSize),
	))

	properties.Property("consecutive pages do not overlap", prop.ForAll(
		func(page, pageSize int) bool {
			return pageOffset(page+1, pageSize)-pageOffset(page, pageSize) == pageSize
		},
		gen.IntRange(1, 100000),
		gen.IntRange(1, MaxPageSize),
	))

	properties.TestingRun(t)
}

func TestPageOffsetFivePages(t *testing.T) {
	// 5 rows, page size 2: pages start at 0, 2, 4
	for page, want := range map[int]int{1: 0, 2: 2, 3: 4} {
		assert.Equal(t, want, pageOffset(page, 2), "page %d", page)
	}
}
