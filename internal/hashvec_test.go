package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVec(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	symtable := NewHashVec[string]()

	symtable.Put("jovana", "jankovic")
	symtable.At(0).Value = "milankovic"

	entry, ok := symtable.Get("jovana")
	require.True(ok)
	assert.Equal("milankovic", entry.Value)
	assert.Equal("jovana", entry.Key)
	assert.Equal(0, entry.Index)
	assert.Equal(0, symtable.At(0).Index)

	symtable.Put("milenko", "milenkovic")

	assert.Equal("milenko", symtable.At(1).Key)
	entry, ok = symtable.Get("milenko")
	require.True(ok)
	assert.Equal(1, entry.Index)

	// overwriting keeps the insertion index
	symtable.Put("jovana", "petrovic")
	assert.Equal(2, symtable.Len())
	assert.Equal("petrovic", symtable.At(0).Value)
}

func TestHashVecFolded(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	table := NewFoldedHashVec[int]()
	table.Put("mov", 3)

	entry, ok := table.Get("MOV")
	require.True(ok)
	assert.Equal(3, entry.Value)
	assert.Equal("mov", entry.Key, "entries keep their first spelling")
	assert.True(table.Has("Mov"))
}

func TestHashVecOrder(t *testing.T) {
	assert := assert.New(t)

	table := NewHashVec[int]()
	for n, key := range []string{"halt", "xchg", "int", "mov"} {
		table.Put(key, n)
	}

	assert.Equal([]string{"halt", "xchg", "int", "mov"},
		slices.Collect(table.Keys()))

	var values []int
	for entry := range table.All() {
		values = append(values, entry.Value)
	}
	assert.Equal([]int{0, 1, 2, 3}, values)
}

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	first := NewHashVec[int]()
	first.Put("a", 1)
	second := NewHashVec[int]()
	second.Put("b", 2)
	second.Put("c", 3)

	assert.Equal([]string{"a", "b", "c"},
		slices.Collect(IterSeqConcat(first.Keys(), second.Keys())))
}
